package retrieval

import (
	"sort"

	"go.uber.org/zap"

	"github.com/ujv-group/hotel-brief-cli/internal/model"
)

// DefaultTopN is the number of clean chunks retrieved per section.
const DefaultTopN = 3

// RankedChunk pairs a chunk with its keyword score.
type RankedChunk struct {
	Chunk model.Chunk
	Score int
}

// Result is the outcome of semantic retrieval for one section.
type Result struct {
	Used             []RankedChunk
	ConflictsIgnored []model.ConflictEvent
}

// Retrieve ranks the hotel's chunks against the section's term list,
// screens each candidate through conflict detection, and returns up to
// topN clean chunks plus the conflicts-ignored log. Sorting is by score
// descending, ties broken by reliability descending; remaining tie order
// follows pool order.
func Retrieve(pool []model.Chunk, hotel model.Hotel, section model.SectionKey, terms []string, topN int) Result {
	if topN <= 0 {
		topN = DefaultTopN
	}

	var candidates []RankedChunk
	for _, ch := range pool {
		if ch.HotelID != hotel.ID {
			continue
		}
		score := ScoreChunk(ch, terms)
		if score == 0 {
			continue
		}
		candidates = append(candidates, RankedChunk{Chunk: ch, Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Chunk.Reliability > candidates[j].Chunk.Reliability
	})

	var result Result
	for _, cand := range candidates {
		if len(result.Used) >= topN {
			break
		}
		if ev := DetectConflict(cand.Chunk, section, hotel); ev != nil {
			result.ConflictsIgnored = append(result.ConflictsIgnored, *ev)
			zap.L().Debug("retrieval: chunk excluded by conflict rule",
				zap.String("section", string(section)),
				zap.String("chunk_id", cand.Chunk.ID),
				zap.String("contradicts", ev.ContradictsPath),
			)
			continue
		}
		result.Used = append(result.Used, cand)
	}

	return result
}

// ScanConflicts routes every chunk for the hotel through conflict
// detection for the given section, regardless of keyword score. Used by
// the promotions builder, which consumes no chunk content but still
// surfaces hotel-wide stacking claims.
func ScanConflicts(pool []model.Chunk, hotel model.Hotel, section model.SectionKey) []model.ConflictEvent {
	var events []model.ConflictEvent
	for _, ch := range pool {
		if ch.HotelID != hotel.ID {
			continue
		}
		if ev := DetectConflict(ch, section, hotel); ev != nil {
			events = append(events, *ev)
		}
	}
	return events
}
