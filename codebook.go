package huffcode

import (
	"iter"
	"strings"
)

// Tuning constants for the code book's open-hashing layout.
const (
	bookInitialBuckets = 16 // bucket slots in a fresh book
	bucketInitialCap   = 2  // entry capacity of a fresh bucket

	// The table resizes when occupied buckets exceed 6/10 of the slots,
	// or when any single bucket grows past bucketMaxEntries.
	loadFactorNum    = 6
	loadFactorDen    = 10
	bucketMaxEntries = 4
)

// grownCap is the growth schedule shared by bucket arrays and the table.
func grownCap(n int) int { return n*3/2 + 1 }

// entry is an immutable (symbol, bit sequence) pair. Each entry is owned
// by exactly one bucket.
type entry struct {
	key rune
	seq *BitSequence
}

// codeSet is a bucket: a duplicate-free list of entries in strictly
// ascending key order. Inserting an existing key replaces the entry in
// place, so order never changes on overwrite.
type codeSet struct {
	entries []entry
}

func newCodeSet() *codeSet {
	return &codeSet{entries: make([]entry, 0, bucketInitialCap)}
}

// search binary-searches for key. It returns either the index holding key
// and true, or the position where key belongs and false.
func (s *codeSet) search(key rune) (int, bool) {
	lo, hi := 0, len(s.entries)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case s.entries[mid].key < key:
			lo = mid + 1
		case s.entries[mid].key > key:
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}

// add inserts e preserving sort order, overwriting an existing entry with
// the same key. Capacity grows on the shared schedule only when the
// backing array would overflow.
func (s *codeSet) add(e entry) {
	i, found := s.search(e.key)
	if found {
		s.entries[i] = e
		return
	}
	if len(s.entries) == cap(s.entries) {
		grown := make([]entry, len(s.entries), grownCap(cap(s.entries)))
		copy(grown, s.entries)
		s.entries = grown
	}
	s.entries = append(s.entries, entry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = e
}

func (s *codeSet) get(key rune) (*BitSequence, bool) {
	if i, found := s.search(key); found {
		return s.entries[i].seq, true
	}
	return nil, false
}

func (s *codeSet) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range s.entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteRune(e.key)
		b.WriteByte('=')
		b.WriteString(e.seq.String())
	}
	b.WriteByte(']')
	return b.String()
}

// CodeBook maps symbols to the bit sequences that encode them.
//
// It is an open-hashing table: an array of optional buckets indexed by
// symbol mod table length, each bucket a short sorted array searched by
// binary search. There is no deletion and the table never shrinks.
type CodeBook struct {
	buckets  []*codeSet
	occupied int // buckets holding at least one entry
	size     int // distinct symbols across all buckets
}

// NewCodeBook returns an empty book.
func NewCodeBook() *CodeBook {
	return &CodeBook{buckets: make([]*codeSet, bookInitialBuckets)}
}

func (b *CodeBook) bucketIndex(c rune) int { return int(c) % len(b.buckets) }

// Add stores the bit sequence for symbol c. A previous mapping for c is
// overwritten. Add transparently resizes the table when the load factor
// or the touched bucket's size crosses its threshold; the O(n) replay is
// part of insertion's cost.
func (b *CodeBook) Add(c rune, seq *BitSequence) {
	idx := b.add(c, seq)
	if b.occupied*loadFactorDen > len(b.buckets)*loadFactorNum ||
		len(b.buckets[idx].entries) > bucketMaxEntries {
		b.resize()
	}
}

// add inserts without the resize check and returns the bucket index
// touched. Resize replays entries through add, so a resize may grow
// buckets but can never trigger a second table resize.
func (b *CodeBook) add(c rune, seq *BitSequence) int {
	idx := b.bucketIndex(c)
	set := b.buckets[idx]
	if set == nil {
		set = newCodeSet()
		b.buckets[idx] = set
		b.occupied++
	}
	before := len(set.entries)
	set.add(entry{key: c, seq: seq})
	if len(set.entries) > before {
		b.size++
	}
	return idx
}

// resize rebuilds the table at the next capacity, replaying every entry
// in iteration order. Bucket assignments may change; no entry is lost or
// duplicated.
func (b *CodeBook) resize() {
	old := b.buckets
	b.buckets = make([]*codeSet, grownCap(len(old)))
	b.occupied = 0
	b.size = 0
	for _, set := range old {
		if set == nil {
			continue
		}
		for _, e := range set.entries {
			b.add(e.key, e.seq)
		}
	}
}

// Contains reports whether c has a mapping.
func (b *CodeBook) Contains(c rune) bool {
	set := b.buckets[b.bucketIndex(c)]
	if set == nil {
		return false
	}
	_, found := set.search(c)
	return found
}

// ContainsAll reports whether every rune of s has a mapping.
func (b *CodeBook) ContainsAll(s string) bool {
	for _, c := range s {
		if !b.Contains(c) {
			return false
		}
	}
	return true
}

// Sequence returns the bit sequence mapped to c, or false if c has none.
// The returned sequence is the stored one; callers must not mutate it.
func (b *CodeBook) Sequence(c rune) (*BitSequence, bool) {
	set := b.buckets[b.bucketIndex(c)]
	if set == nil {
		return nil, false
	}
	return set.get(c)
}

// Len returns the number of distinct symbols in the book.
func (b *CodeBook) Len() int { return b.size }

// Encode translates s into the concatenation of its runes' bit sequences.
// Runes with no mapping are silently skipped; use ContainsAll first when
// strict encoding is required.
func (b *CodeBook) Encode(s string) *BitSequence {
	out := NewBitSequence()
	for _, c := range s {
		if seq, ok := b.Sequence(c); ok {
			out.Append(seq)
		}
	}
	return out
}

// Symbols iterates over the stored symbols: bucket-index order, ascending
// within each bucket. The order reflects the internal layout and is not
// stable across resizes. The book must not be mutated while iterating.
func (b *CodeBook) Symbols() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, set := range b.buckets {
			if set == nil {
				continue
			}
			for _, e := range set.entries {
				if !yield(e.key) {
					return
				}
			}
		}
	}
}

// String renders the non-empty buckets for debugging: one bracketed
// entry list per bucket, comma-and-newline separated, inside an outer
// bracket pair.
func (b *CodeBook) String() string {
	var sb strings.Builder
	sb.WriteString("[\n")
	first := true
	for _, set := range b.buckets {
		if set == nil {
			continue
		}
		if !first {
			sb.WriteString(",\n")
		}
		first = false
		sb.WriteString(set.String())
	}
	sb.WriteString("\n]")
	return sb.String()
}
