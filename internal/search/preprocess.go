package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize lowercases the input, strips punctuation and collapses runs of
// whitespace into single spaces. Letters and digits are the only runes kept.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	input = strings.ToLower(input)

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false

	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
			lastWasSpace = false
			continue
		}
		// every other rune acts as a separator
		if b.Len() == 0 || lastWasSpace {
			continue
		}
		b.WriteByte(' ')
		lastWasSpace = true
	}

	return strings.TrimSpace(b.String())
}

// Tokenize normalizes the input and splits it into terms, dropping
// stopwords and single-rune fragments. Empty input yields an empty
// slice, never an error.
func Tokenize(input string) []string {
	normalized := Normalize(input)
	if normalized == "" {
		return nil
	}

	fields := strings.Fields(normalized)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < 2 {
			continue
		}
		if _, ok := stopwords[f]; ok {
			continue
		}
		out = append(out, f)
	}
	return out
}

var stopwords = buildStopwords()

func buildStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else",
		"for", "to", "of", "in", "on", "at", "by", "with", "as",
		"is", "are", "was", "were", "be", "been", "being",
		"it", "this", "that", "these", "those", "from", "up", "down",
		"over", "under", "again", "further", "than", "so", "such",
		"into", "about", "between", "through", "during", "before",
		"after", "above", "below", "out", "off", "own", "same",
		"too", "very", "can", "will", "just", "should", "now",
		"we", "our", "you", "your", "they", "their", "who", "which",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
