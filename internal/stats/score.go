package stats

// XP weights for the total-score formula. Leaderboard ranking depends on
// this being deterministic, so the weights are fixed constants.
const (
	xpPerCorrectAnswer = 10
	xpPerPerfectScore  = 50
	xpPerStreakDay     = 20
	xpPerQuiz          = 25
	xpPerAchievement   = 100
)

// Score computes the total experience points for a stats snapshot. Pure:
// identical stats always yield an identical score.
func Score(s ActivityStats) int {
	return s.CorrectAnswers*xpPerCorrectAnswer +
		s.PerfectScores*xpPerPerfectScore +
		s.Streak*xpPerStreakDay +
		s.QuizzesCompleted*xpPerQuiz +
		len(s.Achievements)*xpPerAchievement
}
