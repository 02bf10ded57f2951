package aggregate

import (
	"strings"

	"github.com/google/uuid"
)

// syntheticPrefix marks keys minted for records that carry no identity of their own.
const syntheticPrefix = "synthetic:"

// SyntheticKey returns a fresh key that never collides with a natural key or another
// synthetic key.
func SyntheticKey() string {
	return syntheticPrefix + uuid.NewString()
}

// IsSynthetic reports whether key was minted by SyntheticKey.
func IsSynthetic(key string) bool {
	return strings.HasPrefix(key, syntheticPrefix)
}

// Identity returns the first non-blank candidate, trimmed. It returns "" when every
// candidate is blank, which callers treat as "no identity".
func Identity(candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return ""
}

// NormalizeName lowercases a display name and collapses internal whitespace so that
// "Arsenal  FC" and "arsenal fc" share a key.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Composite joins normalized parts into a single fallback key. It returns "" if any
// part is blank, since a partial composite would merge unrelated records.
func Composite(parts ...string) string {
	normalized := make([]string, 0, len(parts))
	for _, p := range parts {
		n := NormalizeName(p)
		if n == "" {
			return ""
		}
		normalized = append(normalized, n)
	}
	if len(normalized) == 0 {
		return ""
	}
	return strings.Join(normalized, "|")
}
