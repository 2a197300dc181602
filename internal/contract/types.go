// Package contract turns raw oracle text into the typed shapes the rest of
// the app consumes. The oracle is untrusted: output may be wrapped in
// formatting fences, may be malformed, and may repeat identifiers. All
// validation happens here; nothing downstream sees unvalidated model output.
package contract

import "fmt"

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	// ID is always assigned by the parser, never taken from the oracle.
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// LeaderboardEntry is one synthesized row of the motivational leaderboard.
type LeaderboardEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Avatar string `json:"avatar"`
	Level  int    `json:"level"`
	Streak int    `json:"streak"`
}

// LessonExample pairs an English sentence with its Vietnamese translation.
type LessonExample struct {
	EN string `json:"en"`
	VI string `json:"vi"`
}

// DailyLesson is the once-per-day micro-lesson.
type DailyLesson struct {
	Date        string          `json:"date"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	KeyPoint    string          `json:"keyPoint"`
	Examples    []LessonExample `json:"examples"`
	Tip         string          `json:"tip"`
	Quiz        []QuizQuestion  `json:"quiz"`
}

// ReadingPassage is a reading-comprehension test in the national exam format.
type ReadingPassage struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Passage    string         `json:"passage"`
	Questions  []QuizQuestion `json:"questions"`
	Topic      string         `json:"topic,omitempty"`
	Difficulty string         `json:"difficulty,omitempty"`
}

// Shape names the expected contract for a parse attempt. Used in errors and
// diagnostics.
type Shape string

const (
	ShapeExplanation Shape = "explanation"
	ShapeQuestions   Shape = "questions"
	ShapeLeaderboard Shape = "leaderboard"
	ShapeDailyLesson Shape = "daily-lesson"
	ShapeReading     Shape = "reading-passage"
)

// ParseError indicates the oracle returned text that does not match the
// expected shape. No partial recovery is attempted.
type ParseError struct {
	Shape Shape
	Raw   string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s contract: %v", e.Shape, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
