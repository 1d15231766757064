package huffman

// Symbol represents one value of the byte alphabet.  Negative symbols are not
// valid.
type Symbol int16

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// InvalidSymbol marks internal tree nodes, and is returned by some functions
// to clearly indicate that no symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff the symbol is a byte value.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}
