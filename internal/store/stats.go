package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gwang08/GenLingo/internal/stats"
)

// statsColumns maps merge-write field names to their columns. Fields are
// named after the document schema, not the table.
var statsColumns = map[string]string{
	"totalQuestions":   "total_questions",
	"correctAnswers":   "correct_answers",
	"quizzesCompleted": "quizzes_completed",
	"perfectScores":    "perfect_scores",
	"streak":           "streak",
	"longestStreak":    "longest_streak",
	"lastActive":       "last_active",
	"achievements":     "achievements",
	"topicsCompleted":  "topics_completed",
	"totalScore":       "total_score",
}

// setFields are JSON-encoded string arrays in their column.
var setFields = map[string]bool{
	"achievements":    true,
	"topicsCompleted": true,
}

// ReadStats returns the user's activity stats, or (nil, nil) when no
// document exists. Satisfies stats.Store.
func (s *Store) ReadStats(ctx context.Context, userID string) (*stats.ActivityStats, error) {
	var doc UserDocument
	err := s.db.WithContext(ctx).First(&doc, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read stats for %s: %w", userID, err)
	}

	achievements, err := decodeSet(doc.Achievements)
	if err != nil {
		return nil, fmt.Errorf("decode achievements for %s: %w", userID, err)
	}
	topics, err := decodeSet(doc.TopicsCompleted)
	if err != nil {
		return nil, fmt.Errorf("decode topics for %s: %w", userID, err)
	}

	return &stats.ActivityStats{
		TotalQuestions:   doc.TotalQuestions,
		CorrectAnswers:   doc.CorrectAnswers,
		QuizzesCompleted: doc.QuizzesCompleted,
		PerfectScores:    doc.PerfectScores,
		Streak:           doc.Streak,
		LongestStreak:    doc.LongestStreak,
		LastActive:       doc.LastActive,
		Achievements:     achievements,
		TopicsCompleted:  topics,
		TotalScore:       doc.TotalScore,
	}, nil
}

// MergeWriteStats updates only the named stats fields of the user document,
// last-write-wins per field. The write stamps updated_at server-side; it
// never touches fields it was not given. Satisfies stats.Store.
func (s *Store) MergeWriteStats(ctx context.Context, userID string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	updates := make(map[string]any, len(fields))
	for name, value := range fields {
		column, ok := statsColumns[name]
		if !ok {
			return fmt.Errorf("merge write for %s: unknown field %q", userID, name)
		}
		if setFields[name] {
			encoded, err := encodeSet(value)
			if err != nil {
				return fmt.Errorf("merge write for %s: encode %s: %w", userID, name, err)
			}
			updates[column] = encoded
			continue
		}
		updates[column] = value
	}

	res := s.db.WithContext(ctx).
		Model(&UserDocument{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("merge write for %s: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("merge write for %s: no such user", userID)
	}
	return nil
}

// StatsStore presents the document store under the stats.Store contract.
type StatsStore struct {
	store *Store
}

// Stats returns the stats.Store view of this store.
func (s *Store) Stats() *StatsStore {
	return &StatsStore{store: s}
}

func (s *StatsStore) Read(ctx context.Context, userID string) (*stats.ActivityStats, error) {
	return s.store.ReadStats(ctx, userID)
}

func (s *StatsStore) MergeWrite(ctx context.Context, userID string, fields map[string]any) error {
	return s.store.MergeWriteStats(ctx, userID, fields)
}

func encodeSet(value any) (string, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeSet(encoded string) ([]string, error) {
	if encoded == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(encoded), &out); err != nil {
		return nil, err
	}
	return out, nil
}
