package service

import (
	"context"
	"fmt"

	"github.com/hmdissanayake/tank-watch/internal/adapter"
	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/internal/store"
	"github.com/hmdissanayake/tank-watch/models"
)

type insightService struct {
	ai     adapter.AIAdapter
	cache  store.CacheRepository
	logger *logger.Logger
}

// NewInsightService builds the model-backed insight layer.
func NewInsightService(ai adapter.AIAdapter, cache store.CacheRepository, log *logger.Logger) InsightService {
	return &insightService{ai: ai, cache: cache, logger: log}
}

func (i *insightService) Summarize(ctx context.Context, records []models.ReservoirRecord) (string, error) {
	if len(records) == 0 {
		return "", ErrNothingToSummarize
	}

	summary, err := i.ai.SummarizeMetrics(ctx, records)
	if err != nil {
		return "", fmt.Errorf("summarize records: %w", err)
	}
	return summary, nil
}

func (i *insightService) AnalyzeEntry(ctx context.Context, record models.ReservoirRecord) (models.ReservoirRecord, error) {
	analysis, groundingURL, err := i.ai.AnalyzeEntry(ctx, record)
	if err != nil {
		return models.ReservoirRecord{}, fmt.Errorf("analyze entry %s: %w", record.ID, err)
	}

	record.GeminiAnalysis = analysis
	record.GroundingURL = groundingURL

	// Best-effort: the assessment is still returned when the mirror
	// write fails.
	if err = i.cache.Upsert(ctx, record); err != nil {
		i.logger.Warn().
			Str("func", "AnalyzeEntry").
			Str("record_id", record.ID).
			Err(err).
			Msg("caching analyzed record failed")
	}

	return record, nil
}
