package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gwang08/GenLingo/internal/contract"
	"github.com/gwang08/GenLingo/internal/generate"
	"github.com/gwang08/GenLingo/internal/stats"
)

type explainRequest struct {
	Question      string `json:"question" binding:"required"`
	CorrectAnswer string `json:"correctAnswer" binding:"required"`
	UserAnswer    string `json:"userAnswer" binding:"required"`
}

func (s *Server) handleExplain(c *gin.Context) {
	var req explainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid explanation request"})
		return
	}

	text, err := s.gateway.ExplainAnswer(c.Request.Context(), req.Question, req.CorrectAnswer, req.UserAnswer)
	if err != nil {
		writeGenerateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"explanation": text})
}

type questionsRequest struct {
	TopicTitle       string                  `json:"topicTitle" binding:"required"`
	TopicDescription string                  `json:"topicDescription"`
	Existing         []contract.QuizQuestion `json:"existing"`
	Count            int                     `json:"count"`
}

func (s *Server) handleQuestions(c *gin.Context) {
	var req questionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid questions request"})
		return
	}

	questions, err := s.gateway.MoreQuestions(c.Request.Context(), req.TopicTitle, req.TopicDescription, req.Existing, req.Count)
	if err != nil {
		writeGenerateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (s *Server) handleLeaderboard(c *gin.Context) {
	userID := currentUserID(c)

	userScore := 0
	if activity, err := s.store.ReadStats(c.Request.Context(), userID); err == nil && activity != nil {
		userScore = activity.TotalScore
	}

	entries, err := s.gateway.Leaderboard(c.Request.Context(), userScore)
	if err != nil {
		// The gateway degrades to the fallback board internally; an error
		// here means something else broke.
		writeGenerateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": entries, "userScore": userScore})
}

func (s *Server) handleDailyLesson(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(stats.DateFormat)
	}
	if _, err := time.Parse(stats.DateFormat, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	lesson, err := s.gateway.DailyLesson(c.Request.Context(), date)
	if err != nil {
		writeGenerateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lesson": lesson})
}

type readingRequest struct {
	Topic      string `json:"topic" binding:"required"`
	Difficulty string `json:"difficulty"`
}

func (s *Server) handleReading(c *gin.Context) {
	var req readingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reading request"})
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}

	passage, err := s.gateway.ReadingPassage(c.Request.Context(), req.Topic, req.Difficulty)
	if err != nil {
		writeGenerateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"passage": passage})
}

// writeGenerateError maps gateway failures to status codes: quota denial is
// 429 with a retry hint, oracle or parse failure is 502.
func writeGenerateError(c *gin.Context, err error) {
	var quotaErr *generate.ErrQuotaExceeded
	if errors.As(err, &quotaErr) {
		retryAfter := int(quotaErr.RetryAfter.Round(time.Second).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":      err.Error(),
			"retryAfter": retryAfter,
		})
		return
	}

	var genErr *generate.ErrGenerationFailed
	if errors.As(err, &genErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
