package store

import "time"

// UserDocument is the per-user row: identity, credentials, and the embedded
// activity stats. Achievements and completed topics are sets, stored as
// JSON-encoded string arrays.
type UserDocument struct {
	UserID       string `gorm:"primaryKey;size:64"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	DisplayName  string `gorm:"size:255"`
	PasswordHash string `gorm:"size:128;not null"`
	IsAdmin      bool   `gorm:"default:false"`

	TotalQuestions   int
	CorrectAnswers   int
	QuizzesCompleted int
	PerfectScores    int
	Streak           int
	LongestStreak    int
	LastActive       string `gorm:"size:10"` // "2006-01-02", empty until first activity
	Achievements     string `gorm:"type:text"`
	TopicsCompleted  string `gorm:"type:text"`
	TotalScore       int

	LastLogin time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LLMRequestEvent is one row of the append-only oracle call audit log.
type LLMRequestEvent struct {
	ID           uint   `gorm:"primaryKey"`
	Provider     string `gorm:"size:32;index"`
	Model        string `gorm:"size:64"`
	Purpose      string `gorm:"size:64;index"`
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	LatencyMs    int64
	Success      bool
	ErrorMessage string `gorm:"type:text"`
	CreatedAt    time.Time
}
