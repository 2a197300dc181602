package generate

import (
	"fmt"

	"github.com/gwang08/GenLingo/internal/contract"
)

// fallbackNames seeds the deterministic substitute board used when the
// oracle is unavailable or the call budget is exhausted.
var fallbackNames = []string{
	"Nguyễn Văn Minh",
	"Trần Thị Hương",
	"Lê Hoàng Long",
	"Phạm Thu Hà",
	"Hoàng Minh Tuấn",
	"Đặng Thị Lan",
	"Vũ Đức Anh",
	"Bùi Thị Mai",
	"Đỗ Quang Hải",
	"Ngô Thị Linh",
}

// FallbackLeaderboard builds a deterministic top-10 board ladder around the
// user's score. Scores descend in steps of 50 from userScore+500 with a
// floor of 100, so every input yields the same board.
func FallbackLeaderboard(userScore int) []contract.LeaderboardEntry {
	entries := make([]contract.LeaderboardEntry, 0, len(fallbackNames))
	for i, name := range fallbackNames {
		score := userScore + 500 - i*50
		if score < 100 {
			score = 100
		}
		entries = append(entries, contract.LeaderboardEntry{
			ID:     fmt.Sprintf("user-%d", i+1),
			Name:   name,
			Score:  score,
			Avatar: contract.Initials(name),
			Level:  score/100 + 1,
			Streak: (i*7)%20 + 1,
		})
	}
	return entries
}
