// Package huffcode implements a binary prefix-code codec: a symbol table
// mapping characters to bit sequences, and a code tree that decodes bit
// streams produced from that table.
//
// # Overview
//
// A prefix code assigns each symbol a variable-length bit sequence such
// that no sequence is a prefix of another, so a bit stream can be decoded
// unambiguously without delimiters. This package does not compute codes
// from frequencies; the mapping is assumed given (for example, produced by
// a Huffman construction elsewhere) and is stored in a [CodeBook].
//
// Encoding goes directly through the book: each character's bit sequence
// is appended to the output. Decoding goes through a [CodeTree] built from
// the book: the decoder walks the tree one bit at a time and emits a
// symbol whenever it reaches a leaf.
//
// # Basic Usage
//
//	book := huffcode.NewCodeBook()
//	a, _ := huffcode.ParseBitSequence("0")
//	b, _ := huffcode.ParseBitSequence("10")
//	c, _ := huffcode.ParseBitSequence("11")
//	book.Add('a', a)
//	book.Add('b', b)
//	book.Add('c', c)
//
//	bits := book.Encode("abc") // 01011
//
//	tree := huffcode.NewCodeTreeFromBook(book)
//	text, ok := tree.Decode(bits) // "abc", true
//
// # Contracts
//
// The codec is deliberately lenient. Encode skips characters the book does
// not know; call [CodeBook.ContainsAll] first when strict encoding is
// required. CodeTree construction never fails, even for malformed
// (non-prefix-free) codebooks; [CodeTree.IsValid] is the authority on
// whether the tree is usable, and [CodeTree.Decode] reports no result for
// an invalid tree. Trailing bits that do not complete a code are dropped.
//
// # Performance Characteristics
//
// The book is an open-hashing table whose buckets are short sorted arrays.
// The resize policy (load factor 0.6, per-bucket cap of 4 entries) keeps
// buckets small enough that the binary search inside a bucket is constant
// time in practice. Lookup and insert are O(1) amortized; a resize is an
// O(n) replay of all entries and is part of insertion's cost.
//
// All types are single-threaded; callers needing concurrent access must
// serialize externally.
package huffcode
