package pipeline

import (
	"context"
	"fmt"

	"searchads-go/pkg/auth"
	"searchads-go/pkg/keyword"
	"searchads-go/pkg/logger"
	"searchads-go/pkg/searchads"
	"searchads-go/pkg/storage"
)

// Pipeline sequences the per-category fetch, normalize and persist
// steps, then writes the aggregated trending and metadata files.
type Pipeline struct {
	categories []string
	tokens     auth.TokenSource
	client     searchads.Client
	normalizer *keyword.Normalizer
	writer     *storage.SnapshotWriter
	pacer      Pacer
	log        *logger.Logger
}

// CategoryResult summarizes one category attempt for reporting.
type CategoryResult struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

func New(categories []string, tokens auth.TokenSource, client searchads.Client, writer *storage.SnapshotWriter, pacer Pacer) *Pipeline {
	return &Pipeline{
		categories: categories,
		tokens:     tokens,
		client:     client,
		normalizer: keyword.NewNormalizer(),
		writer:     writer,
		pacer:      pacer,
		log:        logger.GetLogger().WithField("component", "pipeline"),
	}
}

// Run executes the whole job. Token failures are fatal: without valid
// credentials no category can succeed. Fetch failures are logged and
// the category is skipped; the trending and metadata files are written
// regardless of how many categories succeeded.
func (p *Pipeline) Run(ctx context.Context) ([]CategoryResult, error) {
	results := make([]CategoryResult, 0, len(p.categories))
	var allRecords []keyword.Record

	for _, category := range p.categories {
		result, records, err := p.runCategory(ctx, category)
		if err != nil {
			return results, err
		}
		results = append(results, result)
		allRecords = append(allRecords, records...)

		p.pacer.Pause(ctx)
		if err := ctx.Err(); err != nil {
			return results, err
		}
	}

	if err := p.writer.WriteTrending(allRecords); err != nil {
		return results, err
	}
	if err := p.writer.WriteMetadata(p.categories); err != nil {
		return results, err
	}

	return results, nil
}

// runCategory performs one fetch attempt. The returned error is fatal;
// recoverable failures come back inside the CategoryResult.
func (p *Pipeline) runCategory(ctx context.Context, category string) (CategoryResult, []keyword.Record, error) {
	log := p.log.WithField("category", category)
	log.Info("Fetching keywords")

	token, err := p.tokens.Token()
	if err != nil {
		return CategoryResult{}, nil, fmt.Errorf("token generation failed: %w", err)
	}

	resp, err := p.client.FindKeywords(ctx, category, token)
	if err != nil {
		log.WithError(err).Error("Fetch failed, skipping category")
		return CategoryResult{Category: category, Error: err.Error()}, nil, nil
	}

	records := p.normalizer.Normalize(resp)
	if err := p.writer.WriteCategory(records, category); err != nil {
		return CategoryResult{}, nil, err
	}

	return CategoryResult{Category: category, Count: len(records), Success: true}, records, nil
}
