package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Run("should return short strings unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", Truncate("  hello ", 10))
	})

	t.Run("should cut long strings and add an ellipsis", func(t *testing.T) {
		assert.Equal(t, "abcd...", Truncate("abcdefghij", 7))
	})

	t.Run("should count runes instead of bytes", func(t *testing.T) {
		assert.Equal(t, "äöü", Truncate("äöü", 3))
		assert.Equal(t, "ä...", Truncate("äöüßäöü", 4))
	})
}

func TestFirstSentence(t *testing.T) {
	t.Run("should stop at the first sentence end", func(t *testing.T) {
		assert.Equal(t, "Disk full.", FirstSentence("Disk full. Then the db crashed."))
	})

	t.Run("should stop at a line break", func(t *testing.T) {
		assert.Equal(t, "first line", FirstSentence("first line\nsecond line"))
	})

	t.Run("should return text without a sentence end as is", func(t *testing.T) {
		assert.Equal(t, "no end", FirstSentence(" no end "))
	})
}

func TestUniqBy(t *testing.T) {
	t.Run("should keep the first occurrence and the order", func(t *testing.T) {
		assert.Equal(t, []string{"b", "a", "c"}, UniqBy([]string{"b", "a", "b", "c", "a"}, func(s string) string { return s }))
	})
}
