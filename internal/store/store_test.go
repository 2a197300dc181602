package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gwang08/GenLingo/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedUser(t *testing.T, s *Store, userID string) {
	t.Helper()
	err := s.CreateUser(context.Background(), &UserDocument{
		UserID:       userID,
		Email:        userID + "@example.com",
		DisplayName:  "Hoc Sinh",
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("CreateUser() error: %v", err)
	}
}

func TestStore_ReadStatsAbsentUser(t *testing.T) {
	s := openTestStore(t)

	got, err := s.ReadStats(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ReadStats() error: %v", err)
	}
	if got != nil {
		t.Errorf("ReadStats() = %+v, want nil for absent user", got)
	}
}

func TestStore_MergeWriteUpdatesOnlyNamedFields(t *testing.T) {
	s := openTestStore(t)
	seedUser(t, s, "u1")

	ctx := context.Background()
	if err := s.MergeWriteStats(ctx, "u1", map[string]any{
		"totalQuestions": 20,
		"correctAnswers": 15,
		"totalScore":     150,
	}); err != nil {
		t.Fatalf("first MergeWriteStats() error: %v", err)
	}

	// A second writer touching a disjoint field set must not clobber the
	// first write.
	if err := s.MergeWriteStats(ctx, "u1", map[string]any{
		"streak":        4,
		"longestStreak": 4,
		"lastActive":    "2026-03-01",
	}); err != nil {
		t.Fatalf("second MergeWriteStats() error: %v", err)
	}

	got, err := s.ReadStats(ctx, "u1")
	if err != nil {
		t.Fatalf("ReadStats() error: %v", err)
	}
	if got.TotalQuestions != 20 || got.CorrectAnswers != 15 || got.TotalScore != 150 {
		t.Errorf("counter fields clobbered: %+v", got)
	}
	if got.Streak != 4 || got.LastActive != "2026-03-01" {
		t.Errorf("streak fields not written: %+v", got)
	}
}

func TestStore_MergeWriteLastWriteWinsPerField(t *testing.T) {
	s := openTestStore(t)
	seedUser(t, s, "u1")

	ctx := context.Background()
	if err := s.MergeWriteStats(ctx, "u1", map[string]any{"totalScore": 100}); err != nil {
		t.Fatalf("MergeWriteStats() error: %v", err)
	}
	if err := s.MergeWriteStats(ctx, "u1", map[string]any{"totalScore": 90}); err != nil {
		t.Fatalf("MergeWriteStats() error: %v", err)
	}

	got, err := s.ReadStats(ctx, "u1")
	if err != nil {
		t.Fatalf("ReadStats() error: %v", err)
	}
	// The later (stale) write wins; no compare-and-swap.
	if got.TotalScore != 90 {
		t.Errorf("TotalScore = %d, want 90", got.TotalScore)
	}
}

func TestStore_MergeWriteSetsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	seedUser(t, s, "u1")

	ctx := context.Background()
	err := s.MergeWriteStats(ctx, "u1", map[string]any{
		"achievements":    []string{"first_quiz", "streak_3"},
		"topicsCompleted": []string{"tenses"},
	})
	if err != nil {
		t.Fatalf("MergeWriteStats() error: %v", err)
	}

	got, err := s.ReadStats(ctx, "u1")
	if err != nil {
		t.Fatalf("ReadStats() error: %v", err)
	}
	if len(got.Achievements) != 2 || got.Achievements[0] != "first_quiz" {
		t.Errorf("Achievements = %v", got.Achievements)
	}
	if len(got.TopicsCompleted) != 1 || got.TopicsCompleted[0] != "tenses" {
		t.Errorf("TopicsCompleted = %v", got.TopicsCompleted)
	}
}

func TestStore_MergeWriteRejectsUnknownField(t *testing.T) {
	s := openTestStore(t)
	seedUser(t, s, "u1")

	err := s.MergeWriteStats(context.Background(), "u1", map[string]any{"isAdmin": true})
	if err == nil {
		t.Fatal("MergeWriteStats() accepted a non-stats field")
	}
}

func TestStore_MergeWriteAbsentUser(t *testing.T) {
	s := openTestStore(t)

	err := s.MergeWriteStats(context.Background(), "ghost", map[string]any{"totalScore": 10})
	if err == nil {
		t.Fatal("MergeWriteStats() succeeded for absent user")
	}
}

func TestStore_CreateUserDuplicateEmail(t *testing.T) {
	s := openTestStore(t)
	seedUser(t, s, "u1")

	err := s.CreateUser(context.Background(), &UserDocument{
		UserID:       "u2",
		Email:        "u1@example.com",
		PasswordHash: "x",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("CreateUser() error = %v, want ErrEmailTaken", err)
	}
}

func TestStore_UserLookupsAndLastLogin(t *testing.T) {
	s := openTestStore(t)
	seedUser(t, s, "u1")
	ctx := context.Background()

	byEmail, err := s.UserByEmail(ctx, "u1@example.com")
	if err != nil {
		t.Fatalf("UserByEmail() error: %v", err)
	}
	if byEmail.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", byEmail.UserID)
	}

	if _, err := s.UserByEmail(ctx, "missing@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UserByEmail(missing) error = %v, want ErrUserNotFound", err)
	}

	at := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	if err := s.TouchLastLogin(ctx, "u1", at); err != nil {
		t.Fatalf("TouchLastLogin() error: %v", err)
	}
	byID, err := s.UserByID(ctx, "u1")
	if err != nil {
		t.Fatalf("UserByID() error: %v", err)
	}
	if !byID.LastLogin.Equal(at) {
		t.Errorf("LastLogin = %v, want %v", byID.LastLogin, at)
	}

	admin, err := s.IsAdmin(ctx, "u1")
	if err != nil {
		t.Fatalf("IsAdmin() error: %v", err)
	}
	if admin {
		t.Error("IsAdmin() = true for regular user")
	}
}

func TestStore_LLMRequestLog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events := []llm.RequestEvent{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "questions", InputTokens: 900, OutputTokens: 400, CostUSD: 0.00025, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "leaderboard", InputTokens: 300, OutputTokens: 200, CostUSD: 0.00011, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "explanation", Success: false, ErrorMessage: "provider unavailable"},
	}
	for _, ev := range events {
		if err := s.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("AppendLLMRequest() error: %v", err)
		}
	}

	agg, err := s.LLMStats(ctx)
	if err != nil {
		t.Fatalf("LLMStats() error: %v", err)
	}
	if agg.TotalRequests != 3 {
		t.Errorf("TotalRequests = %d, want 3", agg.TotalRequests)
	}
	if agg.FailureCount != 1 {
		t.Errorf("FailureCount = %d, want 1", agg.FailureCount)
	}
	if agg.TotalTokens != 1800 {
		t.Errorf("TotalTokens = %d, want 1800", agg.TotalTokens)
	}
}
