package huffman

import (
	"fmt"
	"strconv"
)

// maxBitsPerCode is the longest code a Code can hold.  A tree whose total
// weight fits in 32 bits is never deeper than about 46 levels, so this bound
// is unreachable for valid frequency tables.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the code
	// is the most significant of the Size low bits of Bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one bit.
func (hc Code) Append(bit bool) Code {
	out := Code{Size: hc.Size + 1, Bits: hc.Bits << 1}
	if bit {
		out.Bits |= 1
	}
	return out
}

// Bit returns the i'th bit of the code, counting from the first.
func (hc Code) Bit(i byte) bool {
	return (hc.Bits>>(hc.Size-1-i))&1 != 0
}

// HasPrefix returns true iff other is a prefix of hc.
func (hc Code) HasPrefix(other Code) bool {
	if other.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-other.Size) == other.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
