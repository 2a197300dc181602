package llm

import (
	"context"
	"time"

	"github.com/gwang08/GenLingo/internal/platform/logger"
)

// RequestEvent captures one oracle call for the audit log.
type RequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRecorder persists oracle request events. Implemented by the store
// package; failures must not fail the request.
type EventRecorder interface {
	AppendLLMRequest(ctx context.Context, ev RequestEvent) error
}

// LoggingProvider is a decorator that records every oracle call as an event.
type LoggingProvider struct {
	inner    Provider
	recorder EventRecorder
	log      *logger.Logger
}

// WithLogging wraps a Provider with event recording.
func WithLogging(p Provider, recorder EventRecorder, log *logger.Logger) Provider {
	return &LoggingProvider{inner: p, recorder: recorder, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	ev := RequestEvent{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
		if cost := LookupCost(resp.Model); cost != nil {
			ev.CostUSD = cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}

	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// Record the event but never fail the request over it.
	if l.recorder != nil {
		if recErr := l.recorder.AppendLLMRequest(ctx, ev); recErr != nil && l.log != nil {
			l.log.Warn("failed to record oracle request event", "error", recErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
