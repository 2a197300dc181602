package generate

import "time"

// Config controls the generation gateway.
type Config struct {
	// ExplanationTTL is the cache lifetime for answer explanations.
	ExplanationTTL time.Duration

	// QuestionsTTL is the cache lifetime for generated question batches.
	QuestionsTTL time.Duration

	// LeaderboardTTL is the cache lifetime for synthesized leaderboards.
	// Leaderboards refresh roughly once a day.
	LeaderboardTTL time.Duration

	// ReadingTTL is the cache lifetime for reading-comprehension tests.
	ReadingTTL time.Duration

	// DailyLessonTTL bounds how long a daily lesson stays cached. Lessons
	// are additionally keyed by calendar date, so a cached lesson is never
	// served past its own day regardless of this value.
	DailyLessonTTL time.Duration

	// OracleTimeout bounds each oracle call.
	OracleTimeout time.Duration

	// MaxTokens is the token budget for oracle responses.
	MaxTokens int

	// Temperature controls oracle output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended gateway settings.
func DefaultConfig() Config {
	return Config{
		ExplanationTTL: 10 * time.Minute,
		QuestionsTTL:   10 * time.Minute,
		LeaderboardTTL: 24 * time.Hour,
		ReadingTTL:     10 * time.Minute,
		DailyLessonTTL: 48 * time.Hour,
		OracleTimeout:  30 * time.Second,
		MaxTokens:      4096,
		Temperature:    0.7,
	}
}
