package hillengine

import (
	"fmt"
	"strings"

	"github.com/bgallie/hill/cryptors"
	"github.com/bgallie/hill/cryptors/keymatrix"
)

// HillEngine enciphers and deciphers text with one validated key, or with
// a product of several keys of the same size.
type HillEngine struct {
	keys    []*keymatrix.KeyMatrix
	ecm     cryptors.Crypter
	workers int
}

// Option configures a HillEngine.
type Option func(*HillEngine)

// WithParallelism lets Encrypt and Decrypt spread large inputs over the
// given number of goroutines. Values below 2 keep the engine sequential,
// which is the default.
func WithParallelism(workers int) Option {
	return func(e *HillEngine) {
		if workers < 1 {
			workers = 1
		}
		e.workers = workers
	}
}

// New validates key and returns an engine for it. The error matches
// keymatrix.ErrInvalidKey when key is not a usable Hill cipher key.
func New(key [][]int, opts ...Option) (*HillEngine, error) {
	k, err := keymatrix.New(key)
	if err != nil {
		return nil, err
	}
	return NewFromKey(k, opts...), nil
}

// NewFromKey returns an engine for an already validated key.
func NewFromKey(k *keymatrix.KeyMatrix, opts ...Option) *HillEngine {
	return build([]*keymatrix.KeyMatrix{k}, k, opts)
}

// NewProduct returns an engine that enciphers with each key in turn and
// deciphers in the reverse order. The result is equivalent to a single key
// equal to the product of the keys. All keys must have the same size.
func NewProduct(keys [][][]int, opts ...Option) (*HillEngine, error) {
	kms := make([]*keymatrix.KeyMatrix, len(keys))
	ecms := make([]cryptors.Crypter, len(keys))
	for i, rows := range keys {
		k, err := keymatrix.New(rows)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i+1, err)
		}
		kms[i], ecms[i] = k, k
	}

	if len(kms) == 1 {
		return NewFromKey(kms[0], opts...), nil
	}

	p, err := cryptors.NewProduct(ecms...)
	if err != nil {
		return nil, err
	}
	return build(kms, p, opts), nil
}

func build(keys []*keymatrix.KeyMatrix, ecm cryptors.Crypter, opts []Option) *HillEngine {
	e := &HillEngine{keys: keys, ecm: ecm, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Size returns the block size n of the engine's key.
func (e *HillEngine) Size() int {
	return e.ecm.Size()
}

// Key returns the engine's first (for a single key engine, its only) key.
func (e *HillEngine) Key() *keymatrix.KeyMatrix {
	return e.keys[0]
}

// Keys returns the keys in the order they are applied by Encrypt.
func (e *HillEngine) Keys() []*keymatrix.KeyMatrix {
	return append([]*keymatrix.KeyMatrix(nil), e.keys...)
}

// Encrypt normalizes text, enciphers it block by block and restores the
// case of the input letters. It never computes the inverse key.
func (e *HillEngine) Encrypt(text string) string {
	nt := Normalize(text, e.Size())
	out := cryptors.ApplyBlocks(e.ecm, nt.Symbols, true, e.workers)
	return RestoreCase(lettersOf(out), nt.Lower)
}

// Decrypt normalizes text, deciphers it block by block, restores the case
// of the input letters and removes trailing 'X' padding.
func (e *HillEngine) Decrypt(text string) string {
	nt := Normalize(text, e.Size())
	out := cryptors.ApplyBlocks(e.ecm, nt.Symbols, false, e.workers)
	return strings.TrimRight(RestoreCase(lettersOf(out), nt.Lower), string(rune(cryptors.PadLetter)))
}
