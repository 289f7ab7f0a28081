// keymatrix parse
package keymatrix

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"unicode"

	"github.com/bgallie/hill/cryptors"
)

// Parse reads a matrix of integers from text. Rows are separated by ';'
// or new lines and entries by commas and/or white space, so "11,8;3,7",
// "11 8\n3 7" and "[[11, 8], [3, 7]]" all describe the same matrix.
// Parse does not check that the result is a valid key; pass it to New.
func Parse(text string) ([][]int, error) {
	s := strings.Map(func(r rune) rune {
		switch r {
		case '[':
			return ' '
		case ']', '\n', '\r':
			return ';'
		}
		return r
	}, text)

	var rows [][]int
	for _, line := range strings.Split(s, ";") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) == 0 {
			continue
		}

		row := make([]int, len(fields))
		for j, fld := range fields {
			v, err := strconv.Atoi(fld)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %q in row %d", ErrBadKeyFormat, fld, len(rows)+1)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no entries in %q", ErrBadKeyFormat, text)
	}
	return rows, nil
}

// Format is the inverse of Parse: rows joined by ';', entries by ','.
func Format(rows [][]int) string {
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte(';')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

// Generate draws random n x n matrices with entries in [0, Modulus) from rng
// until one is a valid key. The random source is the caller's so that keys
// can be reproduced from a seed.
func Generate(rng *rand.Rand, n int) (*KeyMatrix, error) {
	if n < cryptors.MinimumKeySize {
		return nil, &InvalidKeyError{
			Residue: -1,
			Modulus: cryptors.Modulus,
			Reason:  fmt.Sprintf("dimension %d is below the minimum of %d", n, cryptors.MinimumKeySize),
		}
	}

	for {
		rows := make([][]int, n)
		for i := range rows {
			rows[i] = make([]int, n)
			for j := range rows[i] {
				rows[i][j] = rng.Intn(cryptors.Modulus)
			}
		}
		if k, err := New(rows); err == nil {
			return k, nil
		}
	}
}
