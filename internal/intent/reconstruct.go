package intent

import (
	"strings"
	"unicode"

	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/util"
)

// Reconstructor stitches OCR line fragments back into complete
// claim sentences. OCR output often breaks a single headline across
// several short lines.
type Reconstructor struct {
	lexicon     model.Lexicon
	minLineLen  int
	minClaimLen int
}

// NewReconstructor creates a new Reconstructor
func NewReconstructor(lexicon model.Lexicon, minLineLen, minClaimLen int) *Reconstructor {
	if minLineLen <= 0 {
		minLineLen = 10
	}
	if minClaimLen <= 0 {
		minClaimLen = 30
	}
	return &Reconstructor{lexicon: lexicon, minLineLen: minLineLen, minClaimLen: minClaimLen}
}

// Reconstruct merges OCR lines into claim candidates. Short noise
// lines are dropped unless they start with a proper noun, and lines
// that read as continuations are appended to the current claim.
func (r *Reconstructor) Reconstruct(ocrText string) []string {
	lines := splitLines(ocrText)
	if len(lines) == 0 {
		return nil
	}

	var claims []string
	var current strings.Builder

	flush := func() {
		claim := strings.TrimSpace(current.String())
		if len(claim) >= r.minClaimLen {
			claims = append(claims, claim)
		}
		current.Reset()
	}

	for _, line := range lines {
		if len(line) < r.minLineLen && !startsWithProperNoun(line) {
			continue
		}

		if current.Len() == 0 {
			current.WriteString(line)
			continue
		}

		if r.isContinuation(line) {
			current.WriteString(" ")
			current.WriteString(line)
			continue
		}

		flush()
		current.WriteString(line)
	}
	flush()

	// Nothing survived: take the longest line as a last resort so a
	// single dense headline is not lost. It still has to read as a
	// full claim, not a caption fragment.
	if len(claims) == 0 {
		longest := ""
		for _, line := range lines {
			if len(line) > len(longest) {
				longest = line
			}
		}
		if len(longest) >= r.minClaimLen {
			claims = append(claims, longest)
		}
	}

	return claims
}

// isContinuation reports whether the line extends the previous one
// rather than starting a new claim
func (r *Reconstructor) isContinuation(line string) bool {
	runes := []rune(line)
	if len(runes) == 0 {
		return false
	}
	if unicode.IsLower(runes[0]) {
		return true
	}
	first := util.FirstWord(line)
	for _, w := range r.lexicon.ContinuationWords {
		if first == w {
			return true
		}
	}
	return false
}

func startsWithProperNoun(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	return util.HasProperNoun(fields[0])
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
