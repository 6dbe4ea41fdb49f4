package ustr

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

// generateMixedText creates a string of roughly the given byte size mixing
// 1-, 2-, 3-, and 4-byte characters so offsets are non-trivial.
func generateMixedText(size int) string {
	var sb strings.Builder
	sb.Grow(size)

	chars := []rune{'a', 'z', 'é', 'ü', '日', '語', '🎉', '🎊'}
	for sb.Len() < size {
		sb.WriteRune(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

func BenchmarkFromString(b *testing.B) {
	sizes := []int{100, 1000, 10000, 100000}

	for _, size := range sizes {
		text := generateMixedText(size)
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = FromString(text)
			}
		})
	}
}

// BenchmarkCharAt measures indexed access. The per-lookup time should stay
// flat as the string grows; this is the structure's defining property.
func BenchmarkCharAt(b *testing.B) {
	sizes := []int{100, 10000, 1000000}

	for _, size := range sizes {
		u, err := FromString(generateMixedText(size))
		if err != nil {
			b.Fatalf("construction failed: %v", err)
		}
		last := u.CharCount() - 1
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = u.CharAt(last)
			}
		})
	}
}

// BenchmarkCharAtScanBaseline is the O(n) decode-from-the-start lookup the
// offset index replaces, for comparison against BenchmarkCharAt.
func BenchmarkCharAtScanBaseline(b *testing.B) {
	sizes := []int{100, 10000, 1000000}

	for _, size := range sizes {
		text := generateMixedText(size)
		target := len([]rune(text)) - 1
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				n := 0
				for _, r := range text {
					if n == target {
						_ = r
						break
					}
					n++
				}
			}
		})
	}
}

func BenchmarkPushChar(b *testing.B) {
	u := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = u.PushChar('日')
	}
}

func BenchmarkIter(b *testing.B) {
	u, err := FromString(generateMixedText(10000))
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := u.Iter()
		for it.Next() {
		}
	}
}

func BenchmarkSlice(b *testing.B) {
	u, err := FromString(generateMixedText(100000))
	if err != nil {
		b.Fatalf("construction failed: %v", err)
	}
	start := u.CharCount() / 4
	end := start + u.CharCount()/2
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = u.Slice(start, end)
	}
}

func BenchmarkInsertCharAtMiddle(b *testing.B) {
	base := generateMixedText(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u, _ := FromString(base)
		b.StartTimer()
		_ = u.InsertCharAt(u.CharCount()/2, 'x')
	}
}
