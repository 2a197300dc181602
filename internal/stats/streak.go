package stats

import "time"

// AdvanceStreak runs the daily streak transition for an activity on the
// given day. Called once per session, typically at login:
//
//   - active yesterday → streak continues, longest streak tracks it
//   - active today already → no change (a day counts once)
//   - anything else, including first-ever activity → streak restarts at 1
//
// lastActive is always stamped to today afterwards.
func AdvanceStreak(s *ActivityStats, today time.Time) {
	day := today.Format(DateFormat)
	yesterday := today.AddDate(0, 0, -1).Format(DateFormat)

	switch s.LastActive {
	case yesterday:
		s.Streak++
		if s.Streak > s.LongestStreak {
			s.LongestStreak = s.Streak
		}
	case day:
		// Already counted today.
	default:
		s.Streak = 1
		if s.LongestStreak < 1 {
			s.LongestStreak = 1
		}
	}

	s.LastActive = day
}
