package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gwang08/GenLingo/internal/auth"
)

type signupRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": auth.UserMessage(err, true)})
		return
	}

	session, err := s.auth.Signup(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		c.JSON(authStatus(err), gin.H{"error": auth.UserMessage(err, true)})
		return
	}

	c.JSON(http.StatusCreated, sessionResponse(session, nil, nil))
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": auth.UserMessage(err, false)})
		return
	}

	session, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(authStatus(err), gin.H{"error": auth.UserMessage(err, false)})
		return
	}

	// Login counts as the day's activity: run the streak transition.
	updated, unlocked, err := s.stats.Login(c.Request.Context(), session.User.ID)
	if err != nil {
		s.log.Error("streak transition failed at login", "user_id", session.User.ID, "error", err)
		c.JSON(http.StatusOK, sessionResponse(session, nil, nil))
		return
	}

	c.JSON(http.StatusOK, sessionResponse(session, &updated, unlocked))
}

func authStatus(err error) int {
	var authErr *auth.Error
	if !errors.As(err, &authErr) {
		return http.StatusInternalServerError
	}
	switch authErr.Code {
	case auth.CodeEmailInUse:
		return http.StatusConflict
	case auth.CodeWeakPassword, auth.CodeInvalidCredential:
		return http.StatusBadRequest
	default:
		return http.StatusUnauthorized
	}
}
