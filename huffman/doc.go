// Package huffman implements static Huffman codes over bytes plus an
// end-of-stream symbol.  A Tree is built from byte frequencies, written to and
// read from a bitstream in a compact pre-order form, and drives an Encoder and
// a Decoder that turn bytes into a prefix-coded bitstream and back.
//
// Tree shapes are deterministic: building twice from the same Frequencies
// always yields the same Tree, and therefore the same codes.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
