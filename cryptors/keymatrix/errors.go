// keymatrix errors
package keymatrix

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidKey is matched by every *InvalidKeyError.
	ErrInvalidKey = errors.New("keymatrix: invalid key")

	// ErrNoModularInverse is returned by ModInverse when a and m share a factor.
	ErrNoModularInverse = errors.New("keymatrix: no modular inverse")

	// ErrBadKeyFormat is returned by Parse for text that is not a matrix of integers.
	ErrBadKeyFormat = errors.New("keymatrix: malformed key")

	// ErrDimensionMismatch is returned when two keys of different sizes are combined.
	ErrDimensionMismatch = errors.New("keymatrix: dimension mismatch")
)

// InvalidKeyError describes a key rejected by New.
type InvalidKeyError struct {
	Determinant *big.Int // exact determinant; nil when the shape was rejected first
	Residue     int      // Determinant mod Modulus, or -1 when Determinant is nil
	Modulus     int
	Reason      string
}

func (e *InvalidKeyError) Error() string {
	if e.Determinant == nil {
		return fmt.Sprintf("keymatrix: invalid key: %s", e.Reason)
	}
	return fmt.Sprintf("keymatrix: invalid key: %s (determinant %s, %d mod %d)",
		e.Reason, e.Determinant, e.Residue, e.Modulus)
}

func (e *InvalidKeyError) Unwrap() error {
	return ErrInvalidKey
}
