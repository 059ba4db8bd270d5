package huffcode

import (
	"errors"
	"iter"
	"strings"
)

const bitsPerWord = 64

// ErrBadBit indicates a bit-sequence literal contained a character other
// than '0' or '1'.
var ErrBadBit = errors.New("huffcode: bit sequence literal may contain only '0' and '1'")

// BitSequence is an ordered, appendable sequence of bits.
//
// Bits are packed LSB-first into uint64 words; sequence order is append
// order. The zero value is an empty sequence ready for use. Operations on
// a BitSequence never mutate another sequence passed to them.
type BitSequence struct {
	words []uint64
	n     int // number of bits
}

// NewBitSequence returns an empty bit sequence.
func NewBitSequence() *BitSequence { return &BitSequence{} }

// ParseBitSequence builds a sequence from a literal like "01011".
func ParseBitSequence(s string) (*BitSequence, error) {
	seq := &BitSequence{words: make([]uint64, 0, (len(s)+bitsPerWord-1)/bitsPerWord)}
	for i := range len(s) {
		switch s[i] {
		case '0':
			seq.AppendBit(false)
		case '1':
			seq.AppendBit(true)
		default:
			return nil, ErrBadBit
		}
	}
	return seq, nil
}

// Len returns the number of bits in the sequence.
func (s *BitSequence) Len() int { return s.n }

// AppendBit appends a single bit.
func (s *BitSequence) AppendBit(bit bool) {
	if s.n%bitsPerWord == 0 {
		s.words = append(s.words, 0)
	}
	if bit {
		s.words[s.n/bitsPerWord] |= 1 << (s.n % bitsPerWord)
	}
	s.n++
}

// Append appends every bit of other to s in order. other is left
// unchanged; s.Append(s) doubles s.
func (s *BitSequence) Append(other *BitSequence) {
	n := other.n // snapshot so self-append terminates
	for i := range n {
		s.AppendBit(other.bit(i))
	}
}

func (s *BitSequence) bit(i int) bool {
	return s.words[i/bitsPerWord]>>(i%bitsPerWord)&1 == 1
}

// Bits returns a restartable iterator over the bits in sequence order.
// The sequence must not be mutated while iterating.
func (s *BitSequence) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := range s.n {
			if !yield(s.bit(i)) {
				return
			}
		}
	}
}

// Equal reports whether s and other hold the same bits in the same order.
func (s *BitSequence) Equal(other *BitSequence) bool {
	if s.n != other.n {
		return false
	}
	full := s.n / bitsPerWord
	for i := range full {
		if s.words[i] != other.words[i] {
			return false
		}
	}
	if rem := s.n % bitsPerWord; rem != 0 {
		mask := uint64(1)<<rem - 1
		return s.words[full]&mask == other.words[full]&mask
	}
	return true
}

// String renders the sequence as a literal of '0' and '1' characters.
func (s *BitSequence) String() string {
	var b strings.Builder
	b.Grow(s.n)
	for i := range s.n {
		if s.bit(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
