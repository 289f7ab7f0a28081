package hillengine_test

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/bgallie/hill/cryptors"
	"github.com/bgallie/hill/cryptors/keymatrix"
	"github.com/bgallie/hill/hillengine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	key2 = [][]int{{11, 8}, {3, 7}}
	key3 = [][]int{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}
)

func mustEngine(t *testing.T, key [][]int, opts ...hillengine.Option) *hillengine.HillEngine {
	t.Helper()
	e, err := hillengine.New(key, opts...)
	require.NoError(t, err)
	return e
}

// casePattern maps letters to 'U' or 'l' and drops everything else.
func casePattern(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case 'A' <= r && r <= 'Z':
			sb.WriteByte('U')
		case 'a' <= r && r <= 'z':
			sb.WriteByte('l')
		}
	}
	return sb.String()
}

func randomText(rng *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		c := byte('A' + rng.Intn(26))
		// Keep the last letter off 'X' so padding removal cannot eat it.
		for i == length-1 && c == 'X' {
			c = byte('A' + rng.Intn(26))
		}
		if rng.Intn(2) == 0 {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

func TestWorkedExample(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, key2)
	assert.Equal(t, 2, e.Size())

	nt := hillengine.Normalize("HELP", e.Size())
	assert.Equal(t, []int{7, 4, 11, 15}, nt.Symbols)

	ct := e.Encrypt("HELP")
	assert.Equal(t, "LGKL", ct)
	assert.Equal(t, "HELP", e.Decrypt(ct))
}

func TestCasePreservation(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, key2)
	ct := e.Encrypt("HeLp")
	assert.Equal(t, "LgKl", ct)
	assert.Equal(t, casePattern("HeLp"), casePattern(ct))
	assert.Equal(t, "HeLp", e.Decrypt(ct))
}

func TestCaseFollowsRetainedLetters(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, key2)
	// Case flags belong to letters, not to character positions.
	ct := e.Encrypt("h-E l.P!")
	assert.Equal(t, "lUlU", casePattern(ct))
	assert.Equal(t, "hElP", e.Decrypt(ct))
}

func TestPadding(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, key2)
	ct := e.Encrypt("HELLO")
	assert.Equal(t, "LGYJPN", ct)
	assert.Equal(t, "HELLO", e.Decrypt(ct))

	tests := []struct {
		n, want int
	}{
		{2, 6}, {3, 6}, {4, 8}, {5, 5}, {6, 6}, {7, 7},
	}
	for _, tc := range tests {
		nt := hillengine.Normalize("HELLO", tc.n)
		require.Lenf(t, nt.Symbols, tc.want, "n=%d", tc.n)
		assert.Equal(t, 5, nt.Lower.Len(), "padding has no case flag")
		for _, s := range nt.Symbols[5:] {
			assert.Equal(t, int(cryptors.PadSymbol), s)
		}
	}
}

func TestCaseFlagsWrapAround(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, key3)
	// Four flags U l l l cover six output letters as U l l l U l.
	ct := e.Encrypt("Help")
	assert.Equal(t, "UlllUl", casePattern(ct))

	e2 := mustEngine(t, key2)
	ct = e2.Encrypt("Hello")
	assert.Equal(t, "LgyjpN", ct)
	assert.Equal(t, "Hello", e2.Decrypt(ct))
}

func TestDecryptStripsOnlyUpperCasePadding(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, key2)
	ct := e.Encrypt("hello")
	assert.Equal(t, "lgyjpn", ct)
	// The padding letter took a lower case flag and survives.
	assert.Equal(t, "hellox", e.Decrypt(ct))
}

func TestDecryptDropsGenuineTrailingX(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, key3)
	assert.Equal(t, "MA", e.Decrypt(e.Encrypt("MAX")))
	assert.Equal(t, "BO", e.Decrypt(e.Encrypt("BOXXXX")))
}

func TestEmptyAndLetterlessInput(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, key2)
	for _, in := range []string{"", "   ", "12345", "!?.,;:", "ñé"} {
		assert.Equalf(t, "", e.Encrypt(in), "Encrypt(%q)", in)
		assert.Equalf(t, "", e.Decrypt(in), "Decrypt(%q)", in)
	}
}

func TestNonLettersAreDropped(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, key2)
	ct := e.Encrypt("Hello, World! 123")
	assert.Len(t, ct, 10)
	assert.Equal(t, ct, e.Encrypt("HelloWorld"))
	assert.Equal(t, "HelloWorld", e.Decrypt(ct))
}

func TestRoundTripProperty(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1929))
	for n := 2; n <= 5; n++ {
		k, err := keymatrix.Generate(rng, n)
		require.NoError(t, err)
		e := hillengine.NewFromKey(k)

		for trial := 0; trial < 25; trial++ {
			pt := randomText(rng, n*(1+rng.Intn(20)))
			ct := e.Encrypt(pt)
			require.Len(t, ct, len(pt))
			require.Equal(t, casePattern(pt), casePattern(ct))
			require.Equalf(t, pt, e.Decrypt(ct), "key %s", k)
		}
	}
}

func TestDeterministic(t *testing.T) {
	t.Parallel()

	a := mustEngine(t, key3)
	b := mustEngine(t, key3)
	pt := "The quick brown fox jumps over the lazy dog"
	assert.Equal(t, a.Encrypt(pt), a.Encrypt(pt))
	assert.Equal(t, a.Encrypt(pt), b.Encrypt(pt))
}

func TestNewRejectsInvalidKey(t *testing.T) {
	t.Parallel()

	e, err := hillengine.New([][]int{{2, 4}, {4, 8}})
	require.Nil(t, e)
	require.True(t, errors.Is(err, keymatrix.ErrInvalidKey))

	var ike *keymatrix.InvalidKeyError
	require.True(t, errors.As(err, &ike))
	assert.Equal(t, 0, ike.Residue)
	assert.Equal(t, 26, ike.Modulus)

	_, err = hillengine.New([][]int{{1, 2, 3}, {4, 5, 6}})
	assert.True(t, errors.Is(err, keymatrix.ErrInvalidKey))
}

func TestParallelMatchesSerial(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	pt := randomText(rng, 3*5000)
	serial := mustEngine(t, key3)
	parallel := mustEngine(t, key3, hillengine.WithParallelism(8))

	ct := serial.Encrypt(pt)
	require.Equal(t, ct, parallel.Encrypt(pt))
	require.Equal(t, pt, parallel.Decrypt(ct))
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	e := mustEngine(t, key3)
	ct := e.Encrypt("ConcurrentDecrypt")
	want := e.Decrypt(ct)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Decrypt(ct)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestProductEqualsSingleKey(t *testing.T) {
	t.Parallel()

	b := [][]int{{3, 3}, {2, 5}}
	product, err := hillengine.NewProduct([][][]int{key2, b})
	require.NoError(t, err)
	require.Len(t, product.Keys(), 2)

	combined, err := keymatrix.MustNew(key2).Mul(keymatrix.MustNew(b))
	require.NoError(t, err)
	single := mustEngine(t, combined)

	pt := "Attack at dawn"
	ct := product.Encrypt(pt)
	assert.Equal(t, single.Encrypt(pt), ct)
	assert.Equal(t, "Attackatdawn", product.Decrypt(ct))
}

func TestNewProductErrors(t *testing.T) {
	t.Parallel()

	_, err := hillengine.NewProduct(nil)
	assert.True(t, errors.Is(err, cryptors.ErrNoCrypters))

	_, err = hillengine.NewProduct([][][]int{key2, key3})
	assert.True(t, errors.Is(err, cryptors.ErrSizeMismatch))

	_, err = hillengine.NewProduct([][][]int{key2, {{2, 4}, {4, 8}}})
	assert.True(t, errors.Is(err, keymatrix.ErrInvalidKey))

	single, err := hillengine.NewProduct([][][]int{key2})
	require.NoError(t, err)
	assert.Equal(t, "LGKL", single.Encrypt("HELP"))
}
