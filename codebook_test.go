package huffcode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBits(t testing.TB, lit string) *BitSequence {
	t.Helper()
	seq, err := ParseBitSequence(lit)
	require.NoError(t, err)
	return seq
}

// abcBook is the canonical three-symbol prefix code used throughout:
// 'a'->0, 'b'->10, 'c'->11.
func abcBook(t testing.TB) *CodeBook {
	t.Helper()
	book := NewCodeBook()
	book.Add('a', mustBits(t, "0"))
	book.Add('b', mustBits(t, "10"))
	book.Add('c', mustBits(t, "11"))
	return book
}

func TestCodeBookBasics(t *testing.T) {
	book := abcBook(t)

	assert.Equal(t, 3, book.Len())
	assert.True(t, book.Contains('a'))
	assert.False(t, book.Contains('z'))

	seq, ok := book.Sequence('b')
	require.True(t, ok)
	assert.Equal(t, "10", seq.String())

	_, ok = book.Sequence('z')
	assert.False(t, ok)

	assert.True(t, book.ContainsAll("abcabc"))
	assert.True(t, book.ContainsAll(""))
	assert.False(t, book.ContainsAll("abz"))
}

func TestCodeBookOverwrite(t *testing.T) {
	book := NewCodeBook()
	book.Add('a', mustBits(t, "0"))
	occupied := book.occupied

	book.Add('a', mustBits(t, "111"))

	assert.Equal(t, 1, book.Len(), "overwrite must leave one entry")
	assert.Equal(t, occupied, book.occupied, "overwrite must not claim another bucket")
	seq, ok := book.Sequence('a')
	require.True(t, ok)
	assert.Equal(t, "111", seq.String(), "second value wins")
}

func TestCodeBookEncode(t *testing.T) {
	book := abcBook(t)

	t.Run("known symbols", func(t *testing.T) {
		assert.Equal(t, "01011", book.Encode("abc").String())
	})

	t.Run("unmapped symbols skipped", func(t *testing.T) {
		assert.True(t, book.Encode("abz").Equal(book.Encode("ab")))
		assert.Equal(t, "010", book.Encode("abz").String())
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Equal(t, 0, book.Encode("").Len())
	})
}

// Insert enough unique symbols to force several table resizes and verify
// nothing is lost, buckets stay sorted, and iteration covers every key
// exactly once.
func TestCodeBookGrowth(t *testing.T) {
	const n = 500
	book := NewCodeBook()
	want := make(map[rune]string, n)
	for i := range n {
		c := rune(0x100 + i*7) // spread keys over many buckets
		lit := fmt.Sprintf("%09b", i)
		want[c] = lit
		book.Add(c, mustBits(t, lit))
	}

	require.Equal(t, n, book.Len())
	assert.Greater(t, len(book.buckets), bookInitialBuckets, "expected at least one resize")

	for c, lit := range want {
		require.True(t, book.Contains(c), "lost symbol %q", c)
		seq, ok := book.Sequence(c)
		require.True(t, ok)
		assert.Equal(t, lit, seq.String(), "wrong sequence for %q", c)
	}

	t.Run("buckets strictly sorted", func(t *testing.T) {
		for _, set := range book.buckets {
			if set == nil {
				continue
			}
			require.LessOrEqual(t, len(set.entries), cap(set.entries))
			for i := 1; i < len(set.entries); i++ {
				assert.Less(t, set.entries[i-1].key, set.entries[i].key)
			}
		}
	})

	t.Run("iteration completeness", func(t *testing.T) {
		seen := make(map[rune]bool, n)
		for c := range book.Symbols() {
			require.False(t, seen[c], "symbol %q yielded twice", c)
			require.Contains(t, want, c)
			seen[c] = true
		}
		assert.Len(t, seen, n)
	})
}

func TestCodeBookBucketCapTriggersResize(t *testing.T) {
	book := NewCodeBook()
	// Keys congruent mod 16 pile into one bucket; the fifth entry must
	// push the table past bucketMaxEntries and trigger a resize.
	for i := range 5 {
		book.Add(rune('0'+16*i), mustBits(t, "1"))
	}
	assert.Greater(t, len(book.buckets), bookInitialBuckets)
	for i := range 5 {
		assert.True(t, book.Contains(rune('0'+16*i)))
	}
}

func TestCodeBookSymbolsOrderedWithinBucket(t *testing.T) {
	book := NewCodeBook()
	// All three land in the same bucket of the fresh 16-slot table and
	// must iterate in ascending key order regardless of insertion order.
	book.Add(rune('a'+32), mustBits(t, "0"))
	book.Add('a', mustBits(t, "10"))
	book.Add(rune('a'+16), mustBits(t, "11"))

	var got []rune
	for c := range book.Symbols() {
		got = append(got, c)
	}
	assert.Equal(t, []rune{'a', 'a' + 16, 'a' + 32}, got)
}

func TestCodeBookString(t *testing.T) {
	book := NewCodeBook()
	assert.Equal(t, "[\n\n]", book.String())

	book.Add('a', mustBits(t, "0"))
	book.Add('b', mustBits(t, "10"))
	// 'a' and 'b' hash to adjacent buckets of the 16-slot table.
	assert.Equal(t, "[\n[a=0],\n[b=10]\n]", book.String())
}

func BenchmarkCodeBookEncode(b *testing.B) {
	book := abcBook(b)
	text := ""
	for range 256 {
		text += "abcba"
	}
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		_ = book.Encode(text)
	}
}

func BenchmarkCodeBookAdd(b *testing.B) {
	seq := NewBitSequence()
	seq.AppendBit(true)
	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		book := NewCodeBook()
		for i := range 128 {
			book.Add(rune(0x100+i), seq)
		}
	}
}
