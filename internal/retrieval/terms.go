// Package retrieval implements deterministic keyword retrieval over the
// unstructured chunk pool: query-term planning, additive keyword scoring,
// conflict detection against canonical data, and top-N selection.
package retrieval

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ujv-group/hotel-brief-cli/internal/model"
)

// Keywords maps each section to its fixed query-term additions.
type Keywords map[model.SectionKey][]string

// DefaultKeywords returns the compiled-in per-section keyword tables.
func DefaultKeywords() Keywords {
	return Keywords{
		model.SectionPositioning: {"positioning", "differentiator", "design", "atmosphere", "style", "architecture"},
		model.SectionTravelerFit: {"fit", "romantic", "privacy", "villa", "suite", "experience"},
		model.SectionRisks:       {"risk", "caveat", "transfer", "logistics", "nightlife"},
		model.SectionPromotions:  {"promotion", "offer", "rate", "value", "4th night", "early booking"},
		model.SectionUJVPov:      {"talk track", "angle", "insider", "sell", "pov"},
	}
}

// LoadKeywords reads a YAML keyword-table override file. Sections absent
// from the file keep their defaults.
func LoadKeywords(path string) (Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "retrieval: read keywords file")
	}

	var overrides map[string][]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, eris.Wrap(err, "retrieval: unmarshal keywords file")
	}

	kw := DefaultKeywords()
	for section, terms := range overrides {
		kw[model.SectionKey(section)] = terms
	}
	return kw, nil
}

// Label renders an enum value as a human-readable query term,
// e.g. "late_september" becomes "Late September". A cases.Caser is
// stateful, so one is constructed per call; Label runs concurrently
// from the per-section goroutines.
func Label(v string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(v, "_", " "))
}

// Plan derives the query plan for one request. Pure: no side effects
// beyond reading the static keyword tables.
func Plan(req model.BriefRequest, hotel model.Hotel, kw Keywords, llmConfigured bool) model.QueryPlan {
	sections := []model.SectionKey{model.SectionPositioning, model.SectionTravelerFit}
	if req.IncludeRisks {
		sections = append(sections, model.SectionRisks)
	}
	if req.IncludePromotions {
		sections = append(sections, model.SectionPromotions)
	}
	if req.IncludeUJVPov {
		sections = append(sections, model.SectionUJVPov)
	}

	global := dedupe([]string{
		hotel.Name,
		hotel.Region,
		Label(string(req.TravelerType)),
		Label(string(req.Season)),
		Label(string(req.Role)),
	})

	sectionTerms := make(map[model.SectionKey][]string, len(sections))
	for _, s := range sections {
		sectionTerms[s] = dedupe(append(append([]string{}, global...), kw[s]...))
	}

	mode := model.ModeDeterministic
	if req.UseLLM && llmConfigured {
		mode = model.ModeNarrativeAssisted
	}

	return model.QueryPlan{
		Sections:     sections,
		GlobalTerms:  global,
		SectionTerms: sectionTerms,
		Mode:         mode,
	}
}

// dedupe removes duplicates preserving first-seen order. Comparison is
// case-insensitive so "Honeymoon" and "honeymoon" collapse.
func dedupe(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		key := strings.ToLower(strings.TrimSpace(t))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}
