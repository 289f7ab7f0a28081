// bitops
package bitops

func SetBit(ary []byte, bit uint) []byte {
	ary[bit>>3] |= (1 << (bit & 7))
	return ary
}

func ClrBit(ary []byte, bit uint) []byte {
	ary[bit>>3] &= ^(1 << (bit & 7))
	return ary
}

func GetBit(ary []byte, bit uint) bool {
	return (ary[bit>>3]&(1<<(bit&7)) != 0)
}

// Flags is an append-only sequence of booleans packed eight to a byte.
// The zero value is an empty sequence ready to use.
type Flags struct {
	length int
	bits   []byte
}

// FlagsOf returns the packed form of vals.
func FlagsOf(vals ...bool) Flags {
	var f Flags
	for _, v := range vals {
		f.Append(v)
	}
	return f
}

// Append adds v to the end of the sequence.
func (f *Flags) Append(v bool) {
	if f.length>>3 >= len(f.bits) {
		f.bits = append(f.bits, 0)
	}

	if v {
		SetBit(f.bits, uint(f.length))
	} else {
		ClrBit(f.bits, uint(f.length))
	}

	f.length++
}

// Get returns the flag at position i. It panics if i is out of range.
func (f Flags) Get(i int) bool {
	if i < 0 || i >= f.length {
		panic("bitops: flag index out of range")
	}
	return GetBit(f.bits, uint(i))
}

// Len returns the number of flags appended so far.
func (f Flags) Len() int {
	return f.length
}

// All reports whether every flag equals v. An empty sequence reports true.
func (f Flags) All(v bool) bool {
	for i := 0; i < f.length; i++ {
		if GetBit(f.bits, uint(i)) != v {
			return false
		}
	}
	return true
}

// Bools unpacks the sequence.
func (f Flags) Bools() []bool {
	out := make([]bool, f.length)
	for i := range out {
		out[i] = GetBit(f.bits, uint(i))
	}
	return out
}
