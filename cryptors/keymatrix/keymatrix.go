// keymatrix
package keymatrix

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/bgallie/hill/cryptors"
)

// KeyMatrix is a validated, immutable n x n Hill cipher key. Its
// determinant is coprime with cryptors.Modulus, so it has an inverse
// modulo cryptors.Modulus. A KeyMatrix is safe for concurrent use.
type KeyMatrix struct {
	n       int
	entries []int    // entries as given, row-major
	a       []int    // entries reduced into [0, Modulus), row-major
	det     *big.Int // exact determinant of entries
	once    sync.Once
	inv     *KeyMatrix
}

// New validates rows as a Hill cipher key. The rows must form a square
// matrix of dimension at least cryptors.MinimumKeySize whose exact integer
// determinant is coprime with cryptors.Modulus. Any other input is rejected
// with an *InvalidKeyError.
func New(rows [][]int) (*KeyMatrix, error) {
	n, err := checkShape(rows)
	if err != nil {
		return nil, err
	}

	det := determinant(toBig(rows))
	res := residue(det)
	if gcd(res, cryptors.Modulus) != 1 {
		return nil, &InvalidKeyError{
			Determinant: det,
			Residue:     res,
			Modulus:     cryptors.Modulus,
			Reason:      fmt.Sprintf("matrix is not invertible modulo %d", cryptors.Modulus),
		}
	}

	k := &KeyMatrix{
		n:       n,
		entries: make([]int, n*n),
		a:       make([]int, n*n),
		det:     det,
	}
	for i, row := range rows {
		for j, v := range row {
			k.entries[i*n+j] = v
			k.a[i*n+j] = cryptors.Mod(v, cryptors.Modulus)
		}
	}
	return k, nil
}

// MustNew is like New but panics if rows is not a valid key.
func MustNew(rows [][]int) *KeyMatrix {
	k, err := New(rows)
	if err != nil {
		panic(err)
	}
	return k
}

func checkShape(rows [][]int) (int, error) {
	n := len(rows)
	if n == 0 {
		return 0, &InvalidKeyError{Residue: -1, Modulus: cryptors.Modulus, Reason: "matrix is empty"}
	}
	for i, row := range rows {
		if len(row) != n {
			return 0, &InvalidKeyError{
				Residue: -1,
				Modulus: cryptors.Modulus,
				Reason:  fmt.Sprintf("matrix is not square: row %d has %d entries, want %d", i+1, len(row), n),
			}
		}
	}
	if n < cryptors.MinimumKeySize {
		return 0, &InvalidKeyError{
			Residue: -1,
			Modulus: cryptors.Modulus,
			Reason:  fmt.Sprintf("dimension %d is below the minimum of %d", n, cryptors.MinimumKeySize),
		}
	}
	return n, nil
}

func residue(x *big.Int) int {
	r := new(big.Int).Mod(x, big.NewInt(cryptors.Modulus))
	return int(r.Int64())
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// ModInverse returns x in [1, m) with a*x = 1 (mod m). The modulus is small
// enough that trying every candidate is as fast as the extended Euclidean
// algorithm.
func ModInverse(a, m int) (int, error) {
	a = cryptors.Mod(a, m)
	for x := 1; x < m; x++ {
		if (a*x)%m == 1 {
			return x, nil
		}
	}
	return 0, fmt.Errorf("%w: %d mod %d", ErrNoModularInverse, a, m)
}

func (k *KeyMatrix) Size() int {
	return k.n
}

// At returns the entry at row i, column j reduced into [0, Modulus).
func (k *KeyMatrix) At(i, j int) int {
	return k.a[i*k.n+j]
}

// Rows returns a copy of the entries as they were given to New.
func (k *KeyMatrix) Rows() [][]int {
	return split(k.entries, k.n)
}

// Residues returns a copy of the entries reduced into [0, Modulus).
func (k *KeyMatrix) Residues() [][]int {
	return split(k.a, k.n)
}

func split(flat []int, n int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = append([]int(nil), flat[i*n:(i+1)*n]...)
	}
	return rows
}

// Determinant returns the exact integer determinant of the key.
func (k *KeyMatrix) Determinant() *big.Int {
	return new(big.Int).Set(k.det)
}

// Residue returns the determinant reduced into [0, Modulus).
func (k *KeyMatrix) Residue() int {
	return residue(k.det)
}

// Cofactors returns the cofactor matrix of the key's entries.
func (k *KeyMatrix) Cofactors() [][]*big.Int {
	return cofactors(toBig(k.Rows()))
}

// Adjugate returns the transpose of the cofactor matrix.
func (k *KeyMatrix) Adjugate() [][]*big.Int {
	return transpose(k.Cofactors())
}

// DetInverse returns the inverse of the determinant modulo Modulus.
func (k *KeyMatrix) DetInverse() int {
	detInv, err := ModInverse(k.Residue(), cryptors.Modulus)
	if err != nil {
		// New only accepts keys whose determinant is a unit.
		panic(fmt.Sprintf("keymatrix: validated key %s: %v", k, err))
	}
	return detInv
}

// Inverse returns the key's inverse modulo Modulus,
// (det⁻¹ · adj(K)) mod Modulus. It is computed on first use and cached.
// The inverse of the returned key is k.
func (k *KeyMatrix) Inverse() *KeyMatrix {
	k.once.Do(func() {
		detInv := k.DetInverse()
		n := k.n
		adj := k.Adjugate()
		mod := big.NewInt(cryptors.Modulus)
		f := big.NewInt(int64(detInv))
		t := new(big.Int)
		inv := &KeyMatrix{n: n, a: make([]int, n*n)}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				t.Mul(adj[i][j], f)
				t.Mod(t, mod)
				inv.a[i*n+j] = int(t.Int64())
			}
		}
		inv.entries = append([]int(nil), inv.a...)
		inv.det = determinant(toBig(inv.Rows()))
		inv.inv = k
		inv.once.Do(func() {})
		k.inv = inv
	})
	return k.inv
}

// Mul returns the product k × other reduced into [0, Modulus).
func (k *KeyMatrix) Mul(other *KeyMatrix) ([][]int, error) {
	if k.n != other.n {
		return nil, fmt.Errorf("%dx%d times %dx%d: %w", k.n, k.n, other.n, other.n, ErrDimensionMismatch)
	}

	n := k.n
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int, n)
		for j := 0; j < n; j++ {
			sum := 0
			for l := 0; l < n; l++ {
				sum += k.a[i*n+l] * other.a[l*n+j]
			}
			out[i][j] = sum % cryptors.Modulus
		}
	}
	return out, nil
}

// IsIdentity reports whether rows is the identity matrix modulo Modulus.
func IsIdentity(rows [][]int) bool {
	for i, row := range rows {
		if len(row) != len(rows) {
			return false
		}
		for j, v := range row {
			want := 0
			if i == j {
				want = 1
			}
			if cryptors.Mod(v, cryptors.Modulus) != want {
				return false
			}
		}
	}
	return true
}

// ApplyF enciphers blk as the row vector blk × K mod Modulus.
func (k *KeyMatrix) ApplyF(blk cryptors.CypherBlock) cryptors.CypherBlock {
	return mulVec(blk, k.a, k.n)
}

// ApplyG deciphers blk as the row vector blk × K⁻¹ mod Modulus.
func (k *KeyMatrix) ApplyG(blk cryptors.CypherBlock) cryptors.CypherBlock {
	return mulVec(blk, k.Inverse().a, k.n)
}

func mulVec(blk cryptors.CypherBlock, a []int, n int) cryptors.CypherBlock {
	if len(blk) != n {
		panic(fmt.Sprintf("keymatrix: block of %d symbols for a %dx%d key", len(blk), n, n))
	}

	out := make(cryptors.CypherBlock, n)
	for j := 0; j < n; j++ {
		sum := 0
		for i, v := range blk {
			sum += v * a[i*n+j]
		}
		out[j] = cryptors.Mod(sum, cryptors.Modulus)
	}
	return out
}

// String formats the key as accepted by Parse, e.g. "11,8;3,7".
func (k *KeyMatrix) String() string {
	return Format(k.Rows())
}
