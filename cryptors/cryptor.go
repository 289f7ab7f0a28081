// cyptor
package cryptors

import (
	"errors"
	"fmt"
	"sync"
)

const (
	Modulus        = 26  // Size of the alphabet; all arithmetic is mod Modulus.
	PadLetter      = 'X' // Letter used to fill the final block.
	PadSymbol      = PadLetter - 'A'
	MinimumKeySize = 2

	// minBlocksPerWorker keeps ApplyBlocks from starting goroutines for
	// inputs too small to benefit from them.
	minBlocksPerWorker = 64
)

var (
	ErrNoCrypters   = errors.New("cryptors: at least one crypter is required")
	ErrSizeMismatch = errors.New("cryptors: crypters differ in block size")
)

// CypherBlock is the data processed by the crypters. It holds Size()
// symbol indices, each in [0, Modulus).
type CypherBlock []int

// Crypter transforms one CypherBlock at a time. ApplyF enciphers and ApplyG
// deciphers; ApplyG(ApplyF(b)) == b for every block b. Neither may modify
// its argument, and both must be safe for concurrent use.
type Crypter interface {
	Size() int
	ApplyF(CypherBlock) CypherBlock
	ApplyG(CypherBlock) CypherBlock
}

func Encrypt(ecm Crypter, blk CypherBlock) CypherBlock {
	return ecm.ApplyF(blk)
}

func Decrypt(ecm Crypter, blk CypherBlock) CypherBlock {
	return ecm.ApplyG(blk)
}

// Mod returns a reduced into [0, m). m must be positive.
func Mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}
	return a
}

// SymbolOf maps an upper case ASCII letter to its index ('A' = 0).
func SymbolOf(letter byte) int {
	return int(letter - 'A')
}

// LetterOf maps a symbol index back to its upper case ASCII letter.
func LetterOf(symbol int) byte {
	return byte('A' + Mod(symbol, Modulus))
}

// Product chains several crypters of the same block size into one.
// Encryption runs them first to last, decryption last to first.
type Product struct {
	size int
	ecms []Crypter
}

func NewProduct(ecms ...Crypter) (*Product, error) {
	if len(ecms) == 0 {
		return nil, ErrNoCrypters
	}

	size := ecms[0].Size()
	for idx, ecm := range ecms[1:] {
		if ecm.Size() != size {
			return nil, fmt.Errorf("crypter %d has size %d, want %d: %w", idx+1, ecm.Size(), size, ErrSizeMismatch)
		}
	}

	p := &Product{size: size, ecms: make([]Crypter, len(ecms))}
	copy(p.ecms, ecms)
	return p, nil
}

func (p *Product) Size() int {
	return p.size
}

func (p *Product) ApplyF(blk CypherBlock) CypherBlock {
	for _, ecm := range p.ecms {
		blk = ecm.ApplyF(blk)
	}
	return blk
}

func (p *Product) ApplyG(blk CypherBlock) CypherBlock {
	for idx := len(p.ecms) - 1; idx >= 0; idx-- {
		blk = p.ecms[idx].ApplyG(blk)
	}
	return blk
}

// ApplyBlocks partitions symbols into consecutive blocks of ecm.Size()
// symbols and enciphers (encrypt == true) or deciphers each of them. The
// result has the same length as symbols and keeps the block order.
//
// Blocks are independent, so with workers > 1 and enough input the blocks
// are split into contiguous ranges handled by separate goroutines.
//
// len(symbols) must be a multiple of ecm.Size().
func ApplyBlocks(ecm Crypter, symbols []int, encrypt bool, workers int) []int {
	n := ecm.Size()
	if len(symbols)%n != 0 {
		panic(fmt.Sprintf("cryptors: %d symbols do not fill blocks of %d", len(symbols), n))
	}

	out := make([]int, len(symbols))
	blocks := len(symbols) / n
	apply := func(lo, hi int) {
		for b := lo; b < hi; b++ {
			blk := CypherBlock(symbols[b*n : (b+1)*n])
			if encrypt {
				copy(out[b*n:], ecm.ApplyF(blk))
			} else {
				copy(out[b*n:], ecm.ApplyG(blk))
			}
		}
	}

	if workers <= 1 || blocks < workers*minBlocksPerWorker {
		apply(0, blocks)
		return out
	}

	var wg sync.WaitGroup
	chunk := (blocks + workers - 1) / workers
	for lo := 0; lo < blocks; lo += chunk {
		hi := lo + chunk
		if hi > blocks {
			hi = blocks
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			apply(lo, hi)
		}(lo, hi)
	}

	wg.Wait()
	return out
}
