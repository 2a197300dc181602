package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ErrUserNotFound is returned when no document exists for the lookup key.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailTaken is returned when signup reuses an existing email.
var ErrEmailTaken = errors.New("email already in use")

// CreateUser inserts a new user document. The caller supplies the id and
// the bcrypt password hash; stats columns start at their zero values.
func (s *Store) CreateUser(ctx context.Context, doc *UserDocument) error {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&UserDocument{}).
		Where("email = ?", doc.Email).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return ErrEmailTaken
	}

	if doc.Achievements == "" {
		doc.Achievements = "[]"
	}
	if doc.TopicsCompleted == "" {
		doc.TopicsCompleted = "[]"
	}
	if err := s.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// UserByEmail returns the user document for an email, or ErrUserNotFound.
func (s *Store) UserByEmail(ctx context.Context, email string) (*UserDocument, error) {
	var doc UserDocument
	err := s.db.WithContext(ctx).First(&doc, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user by email: %w", err)
	}
	return &doc, nil
}

// UserByID returns the user document for an id, or ErrUserNotFound.
func (s *Store) UserByID(ctx context.Context, userID string) (*UserDocument, error) {
	var doc UserDocument
	err := s.db.WithContext(ctx).First(&doc, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user by id: %w", err)
	}
	return &doc, nil
}

// TouchLastLogin stamps the user's last_login with the server time.
func (s *Store) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	res := s.db.WithContext(ctx).
		Model(&UserDocument{}).
		Where("user_id = ?", userID).
		Update("last_login", at)
	if res.Error != nil {
		return fmt.Errorf("touch last login: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// IsAdmin reports whether the user has the admin capability flag.
func (s *Store) IsAdmin(ctx context.Context, userID string) (bool, error) {
	doc, err := s.UserByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return doc.IsAdmin, nil
}
