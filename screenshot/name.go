package screenshot

import (
	"math/rand/v2"
	"strings"
)

const (
	// SuffixLength is the number of random characters in a filename.
	SuffixLength = 6

	// Extension is appended to every screenshot filename.
	Extension = ".bmp"

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Suffix returns SuffixLength characters drawn from [A-Za-z0-9].
func Suffix(rng *rand.Rand) string {
	var b strings.Builder
	b.Grow(SuffixLength)
	for i := 0; i < SuffixLength; i++ {
		b.WriteByte(alphabet[rng.IntN(len(alphabet))])
	}
	return b.String()
}

// Filename returns base followed by a random suffix and Extension.
func Filename(base string, rng *rand.Rand) string {
	return base + Suffix(rng) + Extension
}
