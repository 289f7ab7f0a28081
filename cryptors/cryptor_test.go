package cryptors_test

import (
	"errors"
	"testing"

	"github.com/bgallie/hill/cryptors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shift adds a per-position offset to each symbol of a block.
type shift struct {
	offsets []int
}

func (s shift) Size() int { return len(s.offsets) }

func (s shift) ApplyF(blk cryptors.CypherBlock) cryptors.CypherBlock {
	out := make(cryptors.CypherBlock, len(blk))
	for i, v := range blk {
		out[i] = cryptors.Mod(v+s.offsets[i], cryptors.Modulus)
	}
	return out
}

func (s shift) ApplyG(blk cryptors.CypherBlock) cryptors.CypherBlock {
	out := make(cryptors.CypherBlock, len(blk))
	for i, v := range blk {
		out[i] = cryptors.Mod(v-s.offsets[i], cryptors.Modulus)
	}
	return out
}

// swap exchanges the two symbols of a block; it only commutes with shift
// when both offsets are equal, which makes order mistakes visible.
type swap struct{}

func (swap) Size() int { return 2 }

func (swap) ApplyF(blk cryptors.CypherBlock) cryptors.CypherBlock {
	return cryptors.CypherBlock{blk[1], blk[0]}
}

func (s swap) ApplyG(blk cryptors.CypherBlock) cryptors.CypherBlock {
	return s.ApplyF(blk)
}

func TestMod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, m, want int
	}{
		{0, 26, 0},
		{27, 26, 1},
		{-1, 26, 25},
		{-52, 26, 0},
		{-53, 26, 25},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, cryptors.Mod(tc.a, tc.m), "Mod(%d, %d)", tc.a, tc.m)
	}
}

func TestSymbolLetterMapping(t *testing.T) {
	t.Parallel()

	for c := byte('A'); c <= 'Z'; c++ {
		assert.Equal(t, c, cryptors.LetterOf(cryptors.SymbolOf(c)))
	}
	assert.Equal(t, 23, int(cryptors.PadSymbol))
	assert.Equal(t, byte('X'), cryptors.LetterOf(cryptors.PadSymbol))
}

func TestNewProductValidation(t *testing.T) {
	t.Parallel()

	_, err := cryptors.NewProduct()
	require.True(t, errors.Is(err, cryptors.ErrNoCrypters))

	_, err = cryptors.NewProduct(shift{[]int{1, 2}}, shift{[]int{1, 2, 3}})
	require.True(t, errors.Is(err, cryptors.ErrSizeMismatch))

	p, err := cryptors.NewProduct(shift{[]int{1, 2}}, swap{})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Size())
}

func TestProductOrdering(t *testing.T) {
	t.Parallel()

	p, err := cryptors.NewProduct(shift{[]int{1, 5}}, swap{})
	require.NoError(t, err)

	blk := cryptors.CypherBlock{0, 0}
	enc := cryptors.Encrypt(p, blk)
	// shift first gives {1,5}, then swap gives {5,1}.
	assert.Equal(t, cryptors.CypherBlock{5, 1}, enc)
	assert.Equal(t, blk, cryptors.Decrypt(p, enc))
}

func TestApplyBlocksSerialMatchesParallel(t *testing.T) {
	t.Parallel()

	ecm := shift{[]int{3, 7, 11}}
	symbols := make([]int, 3*1000)
	for i := range symbols {
		symbols[i] = (i * 7) % cryptors.Modulus
	}
	orig := append([]int(nil), symbols...)

	serial := cryptors.ApplyBlocks(ecm, symbols, true, 1)
	parallel := cryptors.ApplyBlocks(ecm, symbols, true, 4)
	require.Equal(t, serial, parallel)
	require.Equal(t, orig, symbols, "input must not be modified")

	assert.Equal(t, symbols, cryptors.ApplyBlocks(ecm, parallel, false, 8))
}

func TestApplyBlocksEmptyAndPartial(t *testing.T) {
	t.Parallel()

	ecm := shift{[]int{1, 1}}
	assert.Empty(t, cryptors.ApplyBlocks(ecm, nil, true, 4))
	assert.Panics(t, func() { cryptors.ApplyBlocks(ecm, []int{1, 2, 3}, true, 1) })
}
