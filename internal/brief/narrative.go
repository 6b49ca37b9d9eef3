package brief

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ujv-group/hotel-brief-cli/internal/model"
	"github.com/ujv-group/hotel-brief-cli/pkg/anthropic"
)

// Draft carries the four narrative sections' deterministic content to
// the rewrite service. Promotions are never submitted.
type Draft struct {
	Sections map[string]DraftSection `json:"sections"`
}

// DraftSection is one drafted section with its supporting evidence.
type DraftSection struct {
	Content   string                `json:"content"`
	Citations []model.Citation      `json:"citations"`
	Chunks    []model.ChunkRef      `json:"semanticChunksUsed"`
	Conflicts []model.ConflictEvent `json:"conflictsIgnored"`
}

// Overrides maps wire keys to replacement section content.
type Overrides map[string]string

// Rewriter rewrites drafted section prose. Implementations must not
// invent facts beyond the draft's content and citations.
type Rewriter interface {
	Rewrite(ctx context.Context, draft Draft) (Overrides, error)
}

// narrativeKeys are the wire keys the rewrite service may return, mapped
// to their sections. Promotions are deliberately absent.
var narrativeKeys = map[string]model.SectionKey{
	"positioning": model.SectionPositioning,
	"travelerFit": model.SectionTravelerFit,
	"risks":       model.SectionRisks,
	"ujvPov":      model.SectionUJVPov,
}

const rewriteSystemPrompt = `You polish hotel-brief sections written for luxury travel advisors.
Rules:
- Rewrite each section's prose for flow and clarity.
- Do NOT invent facts. Use only the facts, citations, and chunk titles present in the draft.
- If a section's content is the fixed insufficient-sources sentence, return it verbatim.
- Respond with a single JSON object whose keys are a subset of
  "positioning", "travelerFit", "risks", "ujvPov" and whose values are the
  rewritten section strings. No other keys, no markdown fences.`

// AnthropicRewriter implements Rewriter against the Anthropic messages
// API.
type AnthropicRewriter struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicRewriter creates a rewriter backed by the given client.
func NewAnthropicRewriter(client anthropic.Client, modelID string, maxTokens int64) *AnthropicRewriter {
	return &AnthropicRewriter{client: client, model: modelID, maxTokens: maxTokens}
}

// Rewrite submits the draft once and parses the override object. Any
// transport or parse failure is returned to the caller, which degrades
// to the deterministic draft.
func (r *AnthropicRewriter) Rewrite(ctx context.Context, draft Draft) (Overrides, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, eris.Wrap(err, "narrative: marshal draft")
	}

	resp, err := r.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     r.model,
		MaxTokens: r.maxTokens,
		System:    rewriteSystemPrompt,
		Messages: []anthropic.Message{
			{Role: "user", Content: string(payload)},
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "narrative: create message")
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}
	if text == "" {
		return nil, eris.New("narrative: empty response")
	}

	return parseOverrides(text)
}

// parseOverrides extracts string-valued overrides for the allowed keys.
// Non-string values and unknown keys are dropped.
func parseOverrides(text string) (Overrides, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, eris.Wrap(err, "narrative: unmarshal overrides")
	}

	out := Overrides{}
	for key, v := range raw {
		if _, allowed := narrativeKeys[key]; !allowed {
			continue
		}
		if s, ok := v.(string); ok {
			out[key] = s
		}
	}
	return out, nil
}

// BuildDraft collects the narrative sections' drafted content for the
// rewrite call.
func BuildDraft(sections model.Sections) Draft {
	draft := Draft{Sections: map[string]DraftSection{}}
	add := func(key string, sec *model.SectionResult) {
		if sec == nil {
			return
		}
		draft.Sections[key] = DraftSection{
			Content:   sec.Content,
			Citations: sec.Citations,
			Chunks:    sec.SemanticChunksUsed,
			Conflicts: sec.ConflictsIgnored,
		}
	}
	add("positioning", sections.Positioning)
	add("travelerFit", sections.TravelerFit)
	add("risks", sections.Risks)
	add("ujvPov", sections.UJVPov)
	return draft
}

// ApplyOverrides replaces drafted content with rewritten prose. An
// override is applied only when the target section exists and its status
// is OK; status is never changed and promotions are never touched.
func ApplyOverrides(sections *model.Sections, ov Overrides) {
	apply := func(key string, sec *model.SectionResult) {
		if sec == nil || sec.Status != model.StatusOK {
			return
		}
		if replacement, ok := ov[key]; ok && replacement != "" {
			sec.Content = replacement
		}
	}
	apply("positioning", sections.Positioning)
	apply("travelerFit", sections.TravelerFit)
	apply("risks", sections.Risks)
	apply("ujvPov", sections.UJVPov)
}

// rewriteSections runs the gate: one attempt, failures collapse to an
// empty override set and are logged only.
func rewriteSections(ctx context.Context, rw Rewriter, sections *model.Sections) {
	ov, err := rw.Rewrite(ctx, BuildDraft(*sections))
	if err != nil {
		zap.L().Warn("narrative: rewrite failed, using deterministic draft", zap.Error(err))
		return
	}
	ApplyOverrides(sections, ov)
}
