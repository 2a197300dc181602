package stats

import (
	"context"
	"time"

	"github.com/gwang08/GenLingo/internal/platform/logger"
)

// Store is the persistence contract the engine consumes. The backing store
// is a per-user document with an embedded stats object; MergeWrite updates
// only the named fields (last-write-wins per field, no compare-and-swap).
// Concurrent writers from other devices may race — an accepted weak-
// consistency model, documented, not designed.
type Store interface {
	// Read returns the user's stats, or (nil, nil) when no document exists.
	Read(ctx context.Context, userID string) (*ActivityStats, error)

	// MergeWrite updates only the given stats fields of the user document.
	MergeWrite(ctx context.Context, userID string, fields map[string]any) error
}

// QuizResult is the outcome of one submitted quiz.
type QuizResult struct {
	TotalQuestions int
	CorrectAnswers int
	Perfect        bool
	TopicID        string // completed topic, empty if none
}

// Service orchestrates the scoring, streak, and achievement components and
// persists the merged result. Within one session operations are sequential
// (the UI blocks resubmission while a submit is in flight).
type Service struct {
	store Store
	log   *logger.Logger
	now   func() time.Time
}

// NewService creates a stats service.
func NewService(store Store, log *logger.Logger) *Service {
	return &Service{store: store, log: log, now: time.Now}
}

// WithClock replaces the service's time source for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Login loads the user's stats, runs the daily streak transition, and
// persists the result. Returns the updated stats and any achievements the
// streak change unlocked.
func (s *Service) Login(ctx context.Context, userID string) (ActivityStats, []Achievement, error) {
	current, err := s.load(ctx, userID)
	if err != nil {
		return ActivityStats{}, nil, err
	}

	before := current
	AdvanceStreak(&current, s.now())
	unlocked := s.finalize(&current, before)

	s.persist(ctx, userID, streakFields(current))
	return current, unlocked, nil
}

// RecordQuiz applies a quiz submission to the user's stats: counters, topic
// completion, achievement detection, score recomputation, and a merge write.
// The in-memory result stands even if the remote write fails.
func (s *Service) RecordQuiz(ctx context.Context, userID string, result QuizResult) (ActivityStats, []Achievement, error) {
	current, err := s.load(ctx, userID)
	if err != nil {
		return ActivityStats{}, nil, err
	}

	before := current
	current.TotalQuestions += result.TotalQuestions
	current.CorrectAnswers += result.CorrectAnswers
	current.QuizzesCompleted++
	if result.Perfect {
		current.PerfectScores++
	}
	if result.TopicID != "" {
		current.AddTopic(result.TopicID)
	}
	unlocked := s.finalize(&current, before)

	s.persist(ctx, userID, quizFields(current))
	return current, unlocked, nil
}

// load fetches stats, falling back to defaults for a new user.
func (s *Service) load(ctx context.Context, userID string) (ActivityStats, error) {
	stored, err := s.store.Read(ctx, userID)
	if err != nil {
		return ActivityStats{}, err
	}
	if stored == nil {
		return Default(), nil
	}
	return *stored, nil
}

// finalize detects newly unlocked achievements, unions them into the set,
// and recomputes the derived score. Must run after every mutation.
func (s *Service) finalize(current *ActivityStats, before ActivityStats) []Achievement {
	current.TotalScore = Score(*current)

	unlocked := DetectNew(*current, before)
	if len(unlocked) > 0 {
		ids := make([]string, len(unlocked))
		for i, a := range unlocked {
			ids[i] = a.ID
		}
		current.addAchievements(ids)
		// New achievements change the score.
		current.TotalScore = Score(*current)
	}
	return unlocked
}

// persist merge-writes the given fields. Persistence failures are logged and
// swallowed: the optimistic local update stands and the next successful write
// catches the store up.
func (s *Service) persist(ctx context.Context, userID string, fields map[string]any) {
	if err := s.store.MergeWrite(ctx, userID, fields); err != nil && s.log != nil {
		s.log.Error("stats merge write failed", "user_id", userID, "error", err)
	}
}

func streakFields(s ActivityStats) map[string]any {
	return map[string]any{
		"streak":        s.Streak,
		"longestStreak": s.LongestStreak,
		"lastActive":    s.LastActive,
		"achievements":  s.Achievements,
		"totalScore":    s.TotalScore,
	}
}

func quizFields(s ActivityStats) map[string]any {
	return map[string]any{
		"totalQuestions":   s.TotalQuestions,
		"correctAnswers":   s.CorrectAnswers,
		"quizzesCompleted": s.QuizzesCompleted,
		"perfectScores":    s.PerfectScores,
		"achievements":     s.Achievements,
		"topicsCompleted":  s.TopicsCompleted,
		"totalScore":       s.TotalScore,
	}
}
