// Package huffman implements a lossless compressor built on static Huffman
// codes over the byte alphabet.
//
// A container holds a fixed 1028-byte header followed by the packed codes:
//
//     [0, 4)       total symbol count, uint32 little-endian
//     [4, 1028)    256 occurrence counts, uint32 little-endian, by byte value
//     [1028, ...)  codes, most significant bit first, zero-padded last byte
//
// The codes themselves are never stored.  The decoder rebuilds the same tree
// from the stored counts, and stops after the stated number of symbols, so
// padding bits are never read as data.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
