// Package grin reads and writes .grin files: a 32-bit magic number, a
// serialized Huffman tree, and the Huffman-coded body terminated by the code
// for huffman.EOF, padded with zero bits to a whole byte.
//
// See package huffman for the tree format and the codes themselves.
//
package grin
