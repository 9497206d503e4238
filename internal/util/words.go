package util

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	numberRe     = regexp.MustCompile(`\d+`)
	yearRe       = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	properNounRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\b`)
	decimalRe    = regexp.MustCompile(`[0-9]\.[0-9]+`)
)

// ContainsWord reports whether text contains word as a whole word
// (case-insensitive). Multi-word phrases match as substrings on word
// boundaries.
func ContainsWord(text, word string) bool {
	text = strings.ToLower(text)
	word = strings.ToLower(word)

	idx := 0
	for {
		i := strings.Index(text[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		idx = start + 1
	}
}

// ContainsAnyWord reports whether text contains any of the given words,
// word-boundary aware and case-insensitive.
func ContainsAnyWord(text string, words []string) bool {
	for _, w := range words {
		if ContainsWord(text, w) {
			return true
		}
	}
	return false
}

// CountMatches counts how many of the given markers occur in text.
// Markers that are punctuation or symbols (e.g. "$", "high:") match as
// plain substrings; word-like markers match on word boundaries.
func CountMatches(text string, markers []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, m := range markers {
		if isWordLike(m) {
			if ContainsWord(lower, m) {
				count++
			}
		} else if strings.Contains(lower, strings.ToLower(m)) {
			count++
		}
	}
	return count
}

func isWordLike(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' && r != '\'' {
			return false
		}
	}
	return len(s) > 0
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r := rune(text[i-1])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r := rune(text[i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// HasNumber reports whether text contains a numeral
func HasNumber(text string) bool {
	return numberRe.MatchString(text)
}

// HasYear reports whether text contains a 4-digit year
func HasYear(text string) bool {
	return yearRe.MatchString(text)
}

// HasProperNoun reports whether text contains a capitalized token sequence
// (proper-noun heuristic)
func HasProperNoun(text string) bool {
	return properNounRe.MatchString(text)
}

// ProperNouns extracts capitalized token sequences from text, in order
func ProperNouns(text string) []string {
	return properNounRe.FindAllString(text, -1)
}

// FirstDecimal returns the first bare decimal number in text, or ""
func FirstDecimal(text string) string {
	return decimalRe.FindString(text)
}

// FirstWord returns the first whitespace-delimited token of text,
// lower-cased with trailing punctuation stripped
func FirstWord(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimFunc(fields[0], unicode.IsPunct))
}

// WordCount returns the number of whitespace-delimited tokens
func WordCount(text string) int {
	return len(strings.Fields(text))
}
