package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackLeaderboard(t *testing.T) {
	board := FallbackLeaderboard(800)
	require.Len(t, board, 10)

	assert.Equal(t, "Nguyễn Văn Minh", board[0].Name)
	assert.Equal(t, 1300, board[0].Score)
	assert.Equal(t, "NVM", board[0].Avatar)
	assert.Equal(t, 14, board[0].Level)

	for i := 1; i < len(board); i++ {
		assert.Less(t, board[i].Score, board[i-1].Score, "scores must descend")
	}
	for _, e := range board {
		assert.GreaterOrEqual(t, e.Streak, 1)
		assert.NotEmpty(t, e.ID)
	}
}

func TestFallbackLeaderboardDeterministic(t *testing.T) {
	a := FallbackLeaderboard(1234)
	b := FallbackLeaderboard(1234)
	assert.Equal(t, a, b)
}

func TestFallbackLeaderboardScoreFloor(t *testing.T) {
	board := FallbackLeaderboard(0)
	// 0+500-9*50 = 50, clamped to the floor.
	assert.Equal(t, 100, board[9].Score)
	assert.Equal(t, 2, board[9].Level)
}
