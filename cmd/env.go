package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/ujv-group/hotel-brief-cli/internal/brief"
	"github.com/ujv-group/hotel-brief-cli/internal/config"
	"github.com/ujv-group/hotel-brief-cli/internal/dataset"
	"github.com/ujv-group/hotel-brief-cli/internal/retrieval"
	"github.com/ujv-group/hotel-brief-cli/internal/store"
	"github.com/ujv-group/hotel-brief-cli/pkg/anthropic"
)

// env bundles the wired dependencies shared by the CLI commands.
type env struct {
	Engine *brief.Engine
	Store  store.Store
}

func (e *env) Close() {
	if e.Store != nil {
		if err := e.Store.Close(); err != nil {
			zap.L().Warn("close store", zap.Error(err))
		}
	}
}

// initEnv loads the dataset, opens the audit store, and wires the
// engine, including the narrative rewriter when a credential is
// configured.
func initEnv(ctx context.Context, cfg *config.Config) (*env, error) {
	catalog, err := dataset.Load(cfg.Dataset.HotelsPath, cfg.Dataset.SourcesPath, cfg.Dataset.ChunksPath)
	if err != nil {
		return nil, err
	}

	keywords := retrieval.DefaultKeywords()
	if cfg.Retrieval.KeywordsPath != "" {
		keywords, err = retrieval.LoadKeywords(cfg.Retrieval.KeywordsPath)
		if err != nil {
			return nil, err
		}
	}

	var rewriter brief.Rewriter
	if cfg.Anthropic.Key != "" {
		client := anthropic.NewClient(cfg.Anthropic.Key, cfg.Anthropic.RequestsPerMinute)
		rewriter = brief.NewAnthropicRewriter(client, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens)
	}

	st, err := store.New(ctx, cfg.Store.Driver, cfg.Store.DatabaseURL)
	if err != nil {
		return nil, eris.Wrap(err, "init store")
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}

	return &env{
		Engine: brief.NewEngine(catalog, keywords, cfg.Retrieval.TopN, rewriter),
		Store:  st,
	}, nil
}
