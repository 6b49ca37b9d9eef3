package retrieval

import (
	"strings"

	"github.com/ujv-group/hotel-brief-cli/internal/model"
)

// ScoreChunk computes the additive keyword overlap between a chunk and a
// term list. A multi-word term match contributes 2, a single-word match 1,
// and a punctuation-insensitive match of the stripped term adds 1 more
// (so "4th night free" still matches "4thnightfree"). This is a simple
// heuristic, not a ranking model; ties are resolved downstream.
func ScoreChunk(ch model.Chunk, terms []string) int {
	text := strings.ToLower(ch.Title + " " + ch.Text)
	strippedText := stripNonAlnum(text)

	score := 0
	for _, raw := range terms {
		term := strings.ToLower(strings.TrimSpace(raw))
		if term == "" {
			continue
		}

		if strings.Contains(text, term) {
			if len(strings.Fields(term)) > 1 {
				score += 2
			} else {
				score++
			}
		}

		stripped := stripNonAlnum(term)
		if stripped != "" && stripped != term && strings.Contains(strippedText, stripped) {
			score++
		}
	}
	return score
}

// stripNonAlnum removes every character that is not a lower-case ASCII
// letter or digit.
func stripNonAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
