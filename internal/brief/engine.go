package brief

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ujv-group/hotel-brief-cli/internal/dataset"
	"github.com/ujv-group/hotel-brief-cli/internal/model"
	"github.com/ujv-group/hotel-brief-cli/internal/retrieval"
)

// Engine runs the full brief pipeline for one request: validation, term
// planning, per-section retrieval and assembly, trust aggregation, and
// the optional narrative override gate. It holds no mutable state across
// requests.
type Engine struct {
	catalog  *dataset.Catalog
	keywords retrieval.Keywords
	topN     int
	rewriter Rewriter // nil when no rewrite credential is configured
	now      func() time.Time
}

// NewEngine creates an Engine. rewriter may be nil, in which case every
// request runs deterministically regardless of the useLLM flag.
func NewEngine(catalog *dataset.Catalog, keywords retrieval.Keywords, topN int, rewriter Rewriter) *Engine {
	if keywords == nil {
		keywords = retrieval.DefaultKeywords()
	}
	if topN <= 0 {
		topN = retrieval.DefaultTopN
	}
	return &Engine{
		catalog:  catalog,
		keywords: keywords,
		topN:     topN,
		rewriter: rewriter,
		now:      time.Now,
	}
}

// Generate produces one brief response. Validation failures and unknown
// hotel ids surface as typed errors; everything else is a single
// best-effort pass with no retries.
func (e *Engine) Generate(ctx context.Context, raw model.RawBriefRequest) (*model.BriefResponse, error) {
	req, err := model.ValidateRequest(raw)
	if err != nil {
		return nil, err
	}

	hotel, err := e.catalog.HotelByID(req.HotelID)
	if err != nil {
		return nil, err
	}

	log := zap.L().With(zap.String("hotel", hotel.ID), zap.String("traveler_type", string(req.TravelerType)))
	start := e.now()

	plan := retrieval.Plan(req, hotel, e.keywords, e.rewriter != nil)
	pool := e.catalog.Chunks()
	lookup := SourceLookup(e.catalog.SourceByID)

	// Per-section retrieval and assembly are independent; each goroutine
	// owns its result slot. Trust aggregation waits for all of them.
	var sections model.Sections
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		res := retrieval.Retrieve(pool, hotel, model.SectionPositioning, plan.SectionTerms[model.SectionPositioning], e.topN)
		sections.Positioning = BuildPositioning(hotel, req, res, lookup)
		return nil
	})
	g.Go(func() error {
		res := retrieval.Retrieve(pool, hotel, model.SectionTravelerFit, plan.SectionTerms[model.SectionTravelerFit], e.topN)
		sections.TravelerFit = BuildTravelerFit(hotel, req, res, lookup)
		return nil
	})
	if req.IncludeRisks {
		g.Go(func() error {
			res := retrieval.Retrieve(pool, hotel, model.SectionRisks, plan.SectionTerms[model.SectionRisks], e.topN)
			sections.Risks = BuildRisks(hotel, req, res, lookup)
			return nil
		})
	}
	if req.IncludePromotions {
		g.Go(func() error {
			sections.Promotions = BuildPromotions(hotel, pool, lookup)
			return nil
		})
	}
	if req.IncludeUJVPov {
		g.Go(func() error {
			res := retrieval.Retrieve(pool, hotel, model.SectionUJVPov, plan.SectionTerms[model.SectionUJVPov], e.topN)
			sections.UJVPov = BuildUJVPov(hotel, res, lookup)
			return nil
		})
	}
	_ = g.Wait()

	now := e.now()
	fresh := EvaluateFreshness(sections, hotel.Freshness, now)
	trust := BuildTrust(req, sections, fresh, FormatBookingValue(hotel.BookingIntel.AverageBookingValueUSD), now)

	if plan.Mode == model.ModeNarrativeAssisted && e.rewriter != nil {
		rewriteSections(ctx, e.rewriter, &sections)
	}

	log.Info("brief: generated",
		zap.Float64("evidence_score", trust.Evidence.Score),
		zap.Bool("escalation", trust.Escalation.Required),
		zap.Int64("duration_ms", e.now().Sub(start).Milliseconds()),
	)

	return &model.BriefResponse{
		QueryPlan: plan,
		Sections:  sections,
		Trust:     trust,
		CreatedAt: now,
	}, nil
}
