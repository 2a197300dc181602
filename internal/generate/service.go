// Package generate is the governed gateway for every AI content request.
// Each operation runs the same pipeline: cache lookup, quota gate, prompt
// build, oracle call with a bounded timeout, contract parse, cache store.
// Cache hits never consume quota and failures are never cached.
package generate

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/gwang08/GenLingo/internal/aicache"
	"github.com/gwang08/GenLingo/internal/contract"
	"github.com/gwang08/GenLingo/internal/llm"
	"github.com/gwang08/GenLingo/internal/platform/logger"
	"github.com/gwang08/GenLingo/internal/quota"
)

// Gateway mediates all five generation use-cases over one shared quota
// guard. It is process-wide: one instance serves every session.
type Gateway struct {
	provider llm.Provider
	guard    *quota.Guard
	config   Config
	log      *logger.Logger
	now      func() time.Time

	explanations *aicache.Cache[string]
	questions    *aicache.Cache[[]contract.QuizQuestion]
	leaderboards *aicache.Cache[[]contract.LeaderboardEntry]
	lessons      *aicache.Cache[*contract.DailyLesson]
	readings     *aicache.Cache[*contract.ReadingPassage]
}

// New creates a Gateway backed by the given provider and quota guard.
func New(provider llm.Provider, guard *quota.Guard, cfg Config, log *logger.Logger) *Gateway {
	return &Gateway{
		provider:     provider,
		guard:        guard,
		config:       cfg,
		log:          log,
		now:          time.Now,
		explanations: aicache.New[string](cfg.ExplanationTTL),
		questions:    aicache.New[[]contract.QuizQuestion](cfg.QuestionsTTL),
		leaderboards: aicache.New[[]contract.LeaderboardEntry](cfg.LeaderboardTTL),
		lessons:      aicache.New[*contract.DailyLesson](cfg.DailyLessonTTL),
		readings:     aicache.New[*contract.ReadingPassage](cfg.ReadingTTL),
	}
}

// WithClock replaces the gateway's time source and that of its caches.
// Tests use this to step through TTL boundaries.
func (g *Gateway) WithClock(now func() time.Time) *Gateway {
	g.now = now
	g.explanations.WithClock(now)
	g.questions.WithClock(now)
	g.leaderboards.WithClock(now)
	g.lessons.WithClock(now)
	g.readings.WithClock(now)
	return g
}

// ExplainAnswer returns a short Vietnamese explanation of why the student's
// answer to the given question was wrong.
func (g *Gateway) ExplainAnswer(ctx context.Context, question, correctAnswer, userAnswer string) (string, error) {
	key := cacheKey("explain", question, correctAnswer, userAnswer)
	return run(ctx, g, "explanation", g.explanations, key,
		explanationSystemPrompt,
		buildExplanationPrompt(question, correctAnswer, userAnswer),
		contract.ParseExplanation,
	)
}

// MoreQuestions generates a fresh batch of multiple-choice questions for a
// topic, avoiding the given existing questions.
func (g *Gateway) MoreQuestions(ctx context.Context, topicTitle, topicDescription string, existing []contract.QuizQuestion, count int) ([]contract.QuizQuestion, error) {
	if count <= 0 {
		count = 10
	}
	key := cacheKey("questions", topicTitle, fmt.Sprint(count), questionSetDigest(topicDescription, existing))
	return run(ctx, g, "questions", g.questions, key,
		questionsSystemPrompt,
		buildQuestionsPrompt(topicTitle, topicDescription, existing, count),
		contract.ParseQuestions,
	)
}

// Leaderboard returns the synthesized top-10 board for a user with the given
// score. Quota denial and oracle failure degrade to the deterministic
// fallback board rather than an error; the fallback is not cached.
func (g *Gateway) Leaderboard(ctx context.Context, userScore int) ([]contract.LeaderboardEntry, error) {
	key := cacheKey("leaderboard", fmt.Sprint(scoreBucket(userScore)))
	entries, err := run(ctx, g, "leaderboard", g.leaderboards, key,
		leaderboardSystemPrompt,
		buildLeaderboardPrompt(userScore),
		contract.ParseLeaderboard,
	)
	if err != nil {
		g.log.Warn("leaderboard generation failed, serving fallback", "error", err)
		return FallbackLeaderboard(userScore), nil
	}
	return entries, nil
}

// DailyLesson returns the micro-lesson for the given calendar date
// ("2006-01-02"). The date is part of the cache key, so a new day always
// regenerates regardless of how fresh yesterday's lesson is.
func (g *Gateway) DailyLesson(ctx context.Context, date string) (*contract.DailyLesson, error) {
	key := cacheKey("daily-lesson", date)
	return run(ctx, g, "daily lesson", g.lessons, key,
		dailyLessonSystemPrompt,
		buildDailyLessonPrompt(date),
		func(raw string) (*contract.DailyLesson, error) {
			return contract.ParseDailyLesson(raw, date)
		},
	)
}

// ReadingPassage generates a reading-comprehension test for a topic and
// difficulty ("easy", "medium", "hard").
func (g *Gateway) ReadingPassage(ctx context.Context, topic, difficulty string) (*contract.ReadingPassage, error) {
	key := cacheKey("reading", topic, difficulty)
	passage, err := run(ctx, g, "reading passage", g.readings, key,
		readingSystemPrompt,
		buildReadingPrompt(topic, difficulty),
		contract.ParseReadingPassage,
	)
	if err != nil {
		return nil, err
	}
	passage.Topic = topic
	passage.Difficulty = difficulty
	return passage, nil
}

// run is the shared pipeline. The quota slot is consumed before the oracle
// call, not reserved and released around it.
func run[T any](ctx context.Context, g *Gateway, op string, cache *aicache.Cache[T], key, system, prompt string, parse func(string) (T, error)) (T, error) {
	var zero T

	if v, ok := cache.Get(key); ok {
		return v, nil
	}

	if !g.guard.Allow() {
		return zero, &ErrQuotaExceeded{RetryAfter: g.guard.RetryAfter()}
	}

	ctx = llm.WithPurpose(ctx, op)
	ctx, cancel := context.WithTimeout(ctx, g.config.OracleTimeout)
	defer cancel()

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      system,
		Prompt:      prompt,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return zero, &ErrGenerationFailed{Op: op, Err: err}
	}

	v, err := parse(resp.Text)
	if err != nil {
		return zero, &ErrGenerationFailed{Op: op, Err: err}
	}

	cache.Put(key, v)
	return v, nil
}

// cacheKey joins the semantically relevant inputs of a generation call with
// a separator that cannot occur in them.
func cacheKey(parts ...string) string {
	return strings.Join(parts, "\x1f")
}

// questionSetDigest condenses the topic description and the already-seen
// questions into a fixed-width key component, so a batch generated before
// the student answered more questions is not served again for the grown set.
func questionSetDigest(topicDescription string, existing []contract.QuizQuestion) string {
	h := fnv.New64a()
	h.Write([]byte(topicDescription))
	for _, q := range existing {
		h.Write([]byte{0x1f})
		h.Write([]byte(q.Question))
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// scoreBucket rounds a score down to its hundred so near-identical scores
// share a cached leaderboard.
func scoreBucket(score int) int {
	if score < 0 {
		return 0
	}
	return score / 100 * 100
}
