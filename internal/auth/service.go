// Package auth implements signup, login, and JWT session tokens over the
// user document store. Error codes follow the auth-provider convention the
// clients already branch on, with Vietnamese user messages.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gwang08/GenLingo/internal/platform/logger"
	"github.com/gwang08/GenLingo/internal/store"
)

// MinPasswordLength matches the upstream auth provider's weak-password
// threshold.
const MinPasswordLength = 6

// User is the authenticated identity returned to handlers.
type User struct {
	ID          string
	Email       string
	DisplayName string
	IsAdmin     bool
}

// Session is a logged-in user plus their signed token.
type Session struct {
	User  User
	Token string
}

// Service handles credential verification and session issuance.
type Service struct {
	store    *store.Store
	secret   []byte
	tokenTTL time.Duration
	log      *logger.Logger
	now      func() time.Time
}

// New creates an auth service. secret signs session tokens; tokenTTL bounds
// their lifetime.
func New(st *store.Store, secret string, tokenTTL time.Duration, log *logger.Logger) *Service {
	return &Service{
		store:    st,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		log:      log,
		now:      time.Now,
	}
}

// WithClock replaces the service's time source for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Signup registers a new user and returns a live session. The user document
// starts with default stats; the first login runs the streak transition.
func (s *Service) Signup(ctx context.Context, email, password, displayName string) (*Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, newError(CodeInvalidCredential, fmt.Errorf("malformed email"))
	}
	if len(password) < MinPasswordLength {
		return nil, newError(CodeWeakPassword, fmt.Errorf("password shorter than %d characters", MinPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	doc := &store.UserDocument{
		UserID:       uuid.NewString(),
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: string(hash),
		LastLogin:    now,
	}
	if err := s.store.CreateUser(ctx, doc); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil, newError(CodeEmailInUse, err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.issueToken(doc.UserID, false, now)
	if err != nil {
		return nil, err
	}

	s.log.Info("user signed up", "user_id", doc.UserID)
	return &Session{
		User:  User{ID: doc.UserID, Email: doc.Email, DisplayName: doc.DisplayName},
		Token: token,
	}, nil
}

// Login verifies credentials, stamps last_login, and returns a session
// carrying the admin capability flag.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	doc, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, newError(CodeUserNotFound, err)
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte(password)); err != nil {
		return nil, newError(CodeWrongPassword, err)
	}

	now := s.now()
	if err := s.store.TouchLastLogin(ctx, doc.UserID, now); err != nil {
		// Stamping is best-effort; the login itself stands.
		s.log.Warn("failed to stamp last login", "user_id", doc.UserID, "error", err)
	}

	token, err := s.issueToken(doc.UserID, doc.IsAdmin, now)
	if err != nil {
		return nil, err
	}

	s.log.Info("user logged in", "user_id", doc.UserID)
	return &Session{
		User: User{
			ID:          doc.UserID,
			Email:       doc.Email,
			DisplayName: doc.DisplayName,
			IsAdmin:     doc.IsAdmin,
		},
		Token: token,
	}, nil
}
