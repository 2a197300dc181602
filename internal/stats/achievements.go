package stats

// Achievement is a static catalog entry. The catalog is fixed at build time;
// per-user state is only which ids have been unlocked.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Condition   func(ActivityStats) bool
}

// Catalog is the full achievement set, in display order. DetectNew returns
// matches in this order, which keeps assertions deterministic.
var Catalog = []Achievement{
	{
		ID:          "first_quiz",
		Title:       "Người mới bắt đầu",
		Description: "Hoàn thành quiz đầu tiên",
		Icon:        "🎯",
		Condition:   func(s ActivityStats) bool { return s.QuizzesCompleted >= 1 },
	},
	{
		ID:          "perfect_score",
		Title:       "Điểm tuyệt đối",
		Description: "Đạt 100% trong một quiz",
		Icon:        "⭐",
		Condition:   func(s ActivityStats) bool { return s.PerfectScores >= 1 },
	},
	{
		ID:          "streak_3",
		Title:       "Kiên trì 3 ngày",
		Description: "Học liên tục 3 ngày",
		Icon:        "🔥",
		Condition:   func(s ActivityStats) bool { return s.Streak >= 3 },
	},
	{
		ID:          "streak_7",
		Title:       "Tuần hoàn hảo",
		Description: "Học liên tục 7 ngày",
		Icon:        "💪",
		Condition:   func(s ActivityStats) bool { return s.Streak >= 7 },
	},
	{
		ID:          "streak_30",
		Title:       "Tháng vàng",
		Description: "Học liên tục 30 ngày",
		Icon:        "👑",
		Condition:   func(s ActivityStats) bool { return s.Streak >= 30 },
	},
	{
		ID:          "master_10",
		Title:       "Cao thủ ngữ pháp",
		Description: "Hoàn thành 10 chuyên đề",
		Icon:        "📚",
		Condition:   func(s ActivityStats) bool { return len(s.TopicsCompleted) >= 10 },
	},
	{
		ID:          "quiz_master",
		Title:       "Quiz Master",
		Description: "Hoàn thành 20 quiz",
		Icon:        "🏆",
		Condition:   func(s ActivityStats) bool { return s.QuizzesCompleted >= 20 },
	},
	{
		ID:          "question_50",
		Title:       "50 câu hỏi",
		Description: "Trả lời đúng 50 câu hỏi",
		Icon:        "💯",
		Condition:   func(s ActivityStats) bool { return s.CorrectAnswers >= 50 },
	},
	{
		ID:          "question_100",
		Title:       "Siêu sao THPT",
		Description: "Trả lời đúng 100 câu hỏi",
		Icon:        "🌟",
		Condition:   func(s ActivityStats) bool { return s.CorrectAnswers >= 100 },
	},
	{
		ID:          "perfect_streak_5",
		Title:       "Thần đồng",
		Description: "Đạt 100% trong 5 quiz liên tiếp",
		Icon:        "🎓",
		Condition:   func(s ActivityStats) bool { return s.PerfectScores >= 5 },
	},
}

// LookupAchievement returns the catalog entry for an id, or nil.
func LookupAchievement(id string) *Achievement {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

// DetectNew scans the catalog for achievements satisfied by after but not by
// before and not yet unlocked. Unlocked achievements never re-fire, no matter
// how the stats move afterwards. Results come back in catalog order.
func DetectNew(after, before ActivityStats) []Achievement {
	var unlocked []Achievement
	for _, a := range Catalog {
		if before.HasAchievement(a.ID) {
			continue
		}
		if !a.Condition(before) && a.Condition(after) {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}
