package contract

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// decode strips fences, validates the text against the shape's schema, and
// unmarshals into out. Any failure surfaces as a *ParseError.
func decode(shape Shape, def map[string]any, raw string, out any) error {
	text := StripFences(raw)

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return &ParseError{Shape: shape, Raw: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := validateShape(shape, def, parsed); err != nil {
		return &ParseError{Shape: shape, Raw: raw, Err: err}
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return &ParseError{Shape: shape, Raw: raw, Err: err}
	}
	return nil
}

// ParseExplanation returns the oracle's answer explanation as plain text.
// Explanations are free-form prose, not JSON; only fence stripping applies.
func ParseExplanation(raw string) (string, error) {
	text := StripFences(raw)
	if text == "" {
		return "", &ParseError{Shape: ShapeExplanation, Raw: raw, Err: fmt.Errorf("empty response")}
	}
	return text, nil
}

// ParseQuestions parses a generated question batch. Every question gets a
// fresh collision-resistant id regardless of what the oracle supplied.
func ParseQuestions(raw string) ([]QuizQuestion, error) {
	var questions []QuizQuestion
	if err := decode(ShapeQuestions, questionsSchema, raw, &questions); err != nil {
		return nil, err
	}
	for i := range questions {
		questions[i].ID = newItemID("ai", i)
	}
	return questions, nil
}

// ParseLeaderboard parses a synthesized leaderboard. Entries are re-sorted
// by score descending and capped at ten rows; ids are reassigned and empty
// avatars filled in from the name's initials.
func ParseLeaderboard(raw string) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	if err := decode(ShapeLeaderboard, leaderboardSchema, raw, &entries); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > 10 {
		entries = entries[:10]
	}

	for i := range entries {
		entries[i].ID = newItemID("lb", i)
		if entries[i].Avatar == "" {
			entries[i].Avatar = Initials(entries[i].Name)
		}
		if entries[i].Level < 1 {
			entries[i].Level = entries[i].Score/100 + 1
		}
	}
	return entries, nil
}

// ParseDailyLesson parses the daily micro-lesson. The lesson date is forced
// to the requested date and quiz ids are deterministic within the lesson.
func ParseDailyLesson(raw, date string) (*DailyLesson, error) {
	var lesson DailyLesson
	if err := decode(ShapeDailyLesson, dailyLessonSchema, raw, &lesson); err != nil {
		return nil, err
	}

	lesson.Date = date
	for i := range lesson.Quiz {
		lesson.Quiz[i].ID = dailyQuizID(date, i)
	}
	return &lesson, nil
}

// ParseReadingPassage parses a reading-comprehension test.
func ParseReadingPassage(raw string) (*ReadingPassage, error) {
	var passage ReadingPassage
	if err := decode(ShapeReading, readingPassageSchema, raw, &passage); err != nil {
		return nil, err
	}

	passage.ID = newItemID("rc", 0)
	for i := range passage.Questions {
		passage.Questions[i].ID = fmt.Sprintf("%s-q%d", passage.ID, i)
	}
	return &passage, nil
}

// Initials builds an avatar string from the leading letters of each word in
// a name, e.g. "Nguyễn Văn An" → "NVA".
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}
