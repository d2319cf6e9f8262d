// Package anthropic implements the keyword intelligence generator backed by
// the Anthropic Messages API.
package anthropic

import (
	"context"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/ranklens/ranklens-backend/internal/adapter/provider/pagemeta"
	"github.com/ranklens/ranklens-backend/internal/config"
	"github.com/ranklens/ranklens-backend/internal/domain"
)

// messageAPI is the slice of the Anthropic client the generator uses.
type messageAPI interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// pageFetcher fetches competitor page metadata.
type pageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (*pagemeta.Meta, error)
}

// Generator produces keyword intelligence records for a query.
// On any provider failure it substitutes a deterministic canned payload
// (marked Fallback) so a search never dead-ends.
type Generator struct {
	log       *slog.Logger
	messages  messageAPI
	pages     pageFetcher
	model     string
	maxTokens int64
	perQuery  int
}

// NewGenerator creates a generator from config. The pages fetcher is used
// for competitor-mode searches and may not be nil.
func NewGenerator(logger *slog.Logger, cfg config.GenerationConfig, pages pageFetcher) *Generator {
	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return &Generator{
		log:       logger.With("component", "generator"),
		messages:  &client.Messages,
		pages:     pages,
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxTokens),
		perQuery:  cfg.KeywordsPerQuery,
	}
}

// Generate returns keyword records for the query in the given mode.
// The error return is reserved for context cancellation; provider and
// decode failures are logged and answered with the fallback payload.
func (g *Generator) Generate(ctx context.Context, query string, mode domain.SearchMode) ([]domain.KeywordResult, error) {
	subject := query
	if mode == domain.SearchModeCompetitor {
		subject = g.competitorSubject(ctx, query)
	}

	prompt := buildPrompt(subject, mode, g.perQuery)

	msg, err := g.messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		g.log.WarnContext(ctx, "generation call failed, using fallback",
			slog.String("query", query),
			slog.String("mode", mode.String()),
			slog.String("error", err.Error()))
		return Fallback(query, mode), nil
	}

	if len(msg.Content) == 0 {
		g.log.WarnContext(ctx, "empty generation response, using fallback",
			slog.String("query", query))
		return Fallback(query, mode), nil
	}

	results, err := decodeResults(msg.Content[0].Text)
	if err != nil || len(results) == 0 {
		g.log.WarnContext(ctx, "undecodable generation response, using fallback",
			slog.String("query", query),
			slog.Any("error", err))
		return Fallback(query, mode), nil
	}
	return results, nil
}

// competitorSubject resolves a competitor URL to "title - description" so the
// prompt is grounded in the actual page. Fetch failure keeps the bare URL.
func (g *Generator) competitorSubject(ctx context.Context, pageURL string) string {
	meta, err := g.pages.Fetch(ctx, pageURL)
	if err != nil {
		g.log.WarnContext(ctx, "page metadata fetch failed, using bare url",
			slog.String("url", pageURL),
			slog.String("error", err.Error()))
		return pageURL
	}
	subject := meta.Title
	if meta.Description != "" {
		if subject != "" {
			subject += " - "
		}
		subject += meta.Description
	}
	if subject == "" {
		return pageURL
	}
	return subject
}
