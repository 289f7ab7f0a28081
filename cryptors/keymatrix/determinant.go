// keymatrix determinant
package keymatrix

import "math/big"

// toBig converts rows of machine integers to big integers.
func toBig(rows [][]int) [][]*big.Int {
	m := make([][]*big.Int, len(rows))
	for i, row := range rows {
		m[i] = make([]*big.Int, len(row))
		for j, v := range row {
			m[i][j] = big.NewInt(int64(v))
		}
	}
	return m
}

// clone deep copies m so the copy can be modified in place.
func clone(m [][]*big.Int) [][]*big.Int {
	c := make([][]*big.Int, len(m))
	for i, row := range m {
		c[i] = make([]*big.Int, len(row))
		for j, v := range row {
			c[i][j] = new(big.Int).Set(v)
		}
	}
	return c
}

// minor returns m without row r and column c. The entries are shared with m.
func minor(m [][]*big.Int, r, c int) [][]*big.Int {
	out := make([][]*big.Int, 0, len(m)-1)
	for i, row := range m {
		if i == r {
			continue
		}
		nrow := make([]*big.Int, 0, len(row)-1)
		nrow = append(nrow, row[:c]...)
		nrow = append(nrow, row[c+1:]...)
		out = append(out, nrow)
	}
	return out
}

// determinant returns the exact determinant of the square matrix m using
// Bareiss fraction-free elimination. Every division is exact, so no
// rational or floating point values appear. The determinant of a 0x0
// matrix is 1.
func determinant(m [][]*big.Int) *big.Int {
	n := len(m)
	if n == 0 {
		return big.NewInt(1)
	}

	a := clone(m)
	negate := false
	prev := big.NewInt(1)
	t1, t2 := new(big.Int), new(big.Int)

	for k := 0; k < n-1; k++ {
		if a[k][k].Sign() == 0 {
			p := -1
			for i := k + 1; i < n; i++ {
				if a[i][k].Sign() != 0 {
					p = i
					break
				}
			}
			if p < 0 {
				return new(big.Int)
			}
			a[k], a[p] = a[p], a[k]
			negate = !negate
		}

		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				t1.Mul(a[i][j], a[k][k])
				t2.Mul(a[i][k], a[k][j])
				t1.Sub(t1, t2)
				a[i][j].Quo(t1, prev)
			}
		}
		prev = a[k][k]
	}

	det := new(big.Int).Set(a[n-1][n-1])
	if negate {
		det.Neg(det)
	}
	return det
}

// cofactors returns the matrix of signed minors (-1)^(i+j) * det(minor(i, j)).
func cofactors(m [][]*big.Int) [][]*big.Int {
	n := len(m)
	c := make([][]*big.Int, n)
	for i := 0; i < n; i++ {
		c[i] = make([]*big.Int, n)
		for j := 0; j < n; j++ {
			d := determinant(minor(m, i, j))
			if (i+j)%2 == 1 {
				d.Neg(d)
			}
			c[i][j] = d
		}
	}
	return c
}

// transpose returns the transpose of the square matrix m, sharing entries.
func transpose(m [][]*big.Int) [][]*big.Int {
	n := len(m)
	t := make([][]*big.Int, n)
	for i := 0; i < n; i++ {
		t[i] = make([]*big.Int, n)
		for j := 0; j < n; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}
