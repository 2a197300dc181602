package store

import (
	"context"
	"fmt"

	"github.com/gwang08/GenLingo/internal/llm"
)

// AppendLLMRequest records one oracle call in the append-only audit log.
// Satisfies llm.EventRecorder.
func (s *Store) AppendLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	row := LLMRequestEvent{
		Provider:     ev.Provider,
		Model:        ev.Model,
		Purpose:      ev.Purpose,
		InputTokens:  ev.InputTokens,
		OutputTokens: ev.OutputTokens,
		CostUSD:      ev.CostUSD,
		LatencyMs:    ev.LatencyMs,
		Success:      ev.Success,
		ErrorMessage: ev.ErrorMessage,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

// LLMRequestStats summarizes the oracle audit log.
type LLMRequestStats struct {
	TotalRequests int64
	TotalCostUSD  float64
	TotalTokens   int64
	FailureCount  int64
}

// LLMStats aggregates the oracle request log, for the CLI stats view.
func (s *Store) LLMStats(ctx context.Context) (*LLMRequestStats, error) {
	var out LLMRequestStats

	row := s.db.WithContext(ctx).
		Model(&LLMRequestEvent{}).
		Select("COUNT(*) AS total_requests, " +
			"COALESCE(SUM(cost_usd), 0) AS total_cost_usd, " +
			"COALESCE(SUM(input_tokens + output_tokens), 0) AS total_tokens, " +
			"COALESCE(SUM(CASE WHEN success THEN 0 ELSE 1 END), 0) AS failure_count").
		Row()
	if err := row.Scan(&out.TotalRequests, &out.TotalCostUSD, &out.TotalTokens, &out.FailureCount); err != nil {
		return nil, fmt.Errorf("aggregate llm request events: %w", err)
	}
	return &out, nil
}
