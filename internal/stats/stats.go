// Package stats implements the gamification engine: experience points,
// daily streaks, and achievements derived from a learner's activity. All
// mutations to ActivityStats flow through Service so the derived total score
// never drifts from the scoring formula.
package stats

// DateFormat is the day-granularity form used for lastActive and streak
// comparisons.
const DateFormat = "2006-01-02"

// ActivityStats is the per-user activity aggregate. Counters only grow
// within a session; achievements and topics are sets that never shrink.
type ActivityStats struct {
	TotalQuestions   int      `json:"totalQuestions"`
	CorrectAnswers   int      `json:"correctAnswers"`
	QuizzesCompleted int      `json:"quizzesCompleted"`
	PerfectScores    int      `json:"perfectScores"`
	Streak           int      `json:"streak"`
	LongestStreak    int      `json:"longestStreak"`
	LastActive       string   `json:"lastActive"` // day granularity, DateFormat
	Achievements     []string `json:"achievements"`
	TopicsCompleted  []string `json:"topicsCompleted"`

	// TotalScore is derived. It must always equal Score(stats); Service
	// recomputes it after every mutation.
	TotalScore int `json:"totalScore"`
}

// Default returns the stats a brand-new user starts with. LastActive stays
// empty until the first streak transition so first-ever activity lands in
// the restart branch and starts the streak at 1.
func Default() ActivityStats {
	return ActivityStats{
		Achievements:    []string{},
		TopicsCompleted: []string{},
	}
}

// HasAchievement reports whether the achievement id is already unlocked.
func (s ActivityStats) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// addAchievements unions ids into the achievement set, preserving order and
// skipping duplicates.
func (s *ActivityStats) addAchievements(ids []string) {
	for _, id := range ids {
		if !s.HasAchievement(id) {
			s.Achievements = append(s.Achievements, id)
		}
	}
}

// AddTopic adds a topic id to the completed set if not already present.
func (s *ActivityStats) AddTopic(id string) {
	for _, t := range s.TopicsCompleted {
		if t == id {
			return
		}
	}
	s.TopicsCompleted = append(s.TopicsCompleted, id)
}
