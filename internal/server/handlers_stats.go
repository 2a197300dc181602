package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gwang08/GenLingo/internal/auth"
	"github.com/gwang08/GenLingo/internal/stats"
)

// sessionResponse shapes the payload shared by signup and login. Stats and
// unlocked achievements are present only when the streak transition ran.
func sessionResponse(session *auth.Session, activity *stats.ActivityStats, unlocked []stats.Achievement) gin.H {
	resp := gin.H{
		"token": session.Token,
		"user": gin.H{
			"id":          session.User.ID,
			"email":       session.User.Email,
			"displayName": session.User.DisplayName,
			"isAdmin":     session.User.IsAdmin,
		},
	}
	if activity != nil {
		resp["stats"] = activity
		resp["newAchievements"] = achievementPayload(unlocked)
	}
	return resp
}

func achievementPayload(unlocked []stats.Achievement) []gin.H {
	out := make([]gin.H, 0, len(unlocked))
	for _, a := range unlocked {
		out = append(out, gin.H{
			"id":          a.ID,
			"title":       a.Title,
			"description": a.Description,
			"icon":        a.Icon,
		})
	}
	return out
}

func (s *Server) handleGetStats(c *gin.Context) {
	userID := currentUserID(c)

	activity, err := s.store.ReadStats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	if activity == nil {
		fresh := stats.Default()
		activity = &fresh
	}
	c.JSON(http.StatusOK, gin.H{"stats": activity})
}

type quizRequest struct {
	TotalQuestions int    `json:"totalQuestions" binding:"required,min=1"`
	CorrectAnswers int    `json:"correctAnswers" binding:"min=0"`
	Perfect        bool   `json:"perfect"`
	TopicID        string `json:"topicId"`
}

func (s *Server) handleRecordQuiz(c *gin.Context) {
	var req quizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz payload"})
		return
	}
	if req.CorrectAnswers > req.TotalQuestions {
		c.JSON(http.StatusBadRequest, gin.H{"error": "correctAnswers exceeds totalQuestions"})
		return
	}

	userID := currentUserID(c)
	updated, unlocked, err := s.stats.RecordQuiz(c.Request.Context(), userID, stats.QuizResult{
		TotalQuestions: req.TotalQuestions,
		CorrectAnswers: req.CorrectAnswers,
		Perfect:        req.Perfect,
		TopicID:        req.TopicID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record quiz"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":           updated,
		"newAchievements": achievementPayload(unlocked),
	})
}
