package stats

import "testing"

func TestScore_Formula(t *testing.T) {
	s := ActivityStats{
		CorrectAnswers:   5,
		PerfectScores:    1,
		Streak:           3,
		QuizzesCompleted: 2,
		Achievements:     []string{"a", "b"},
	}

	// 5*10 + 1*50 + 3*20 + 2*25 + 2*100
	if got := Score(s); got != 410 {
		t.Errorf("Score() = %d, want 410", got)
	}
}

func TestScore_Pure(t *testing.T) {
	s := ActivityStats{
		CorrectAnswers:   17,
		PerfectScores:    2,
		Streak:           9,
		QuizzesCompleted: 6,
		Achievements:     []string{"first_quiz", "perfect_score", "streak_3"},
		TopicsCompleted:  []string{"tenses"},
	}

	first := Score(s)
	second := Score(s)
	if first != second {
		t.Errorf("Score() not deterministic: %d then %d", first, second)
	}
}

func TestScore_ZeroStats(t *testing.T) {
	if got := Score(ActivityStats{}); got != 0 {
		t.Errorf("Score(zero) = %d, want 0", got)
	}
}

func TestScore_IgnoresUnweightedFields(t *testing.T) {
	base := ActivityStats{CorrectAnswers: 4}
	withNoise := base
	withNoise.TotalQuestions = 99
	withNoise.LongestStreak = 50
	withNoise.LastActive = "2025-01-01"
	withNoise.TotalScore = 12345

	if Score(base) != Score(withNoise) {
		t.Error("Score() depends on fields outside the formula")
	}
}
