// File: internal/repository/user/gorm_user_repository.go
package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/nkarimof/go-dialogue/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := user.IsValid(); err != nil {
		log.Printf("[UserRepository] Validation failed: %v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// Secure logging - no profile data exposed
		log.Printf("[UserRepository] Database error during user creation: %v", err)
		return nil, errors.New("database error creating user")
	}

	log.Printf("[UserRepository] User created successfully with ID: %d", user.ID)
	return user, nil
}

func (r *gormUserRepository) Update(ctx context.Context, user *domain.User) error {
	if user.ID == 0 {
		return errors.New("invalid user ID")
	}
	if err := user.IsValid(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		log.Printf("[UserRepository] Database error during user update for ID %d: %v", user.ID, err)
		return errors.New("database error updating user")
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if id == 0 {
		return nil, errors.New("invalid user ID")
	}

	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return r.handleFindError(err, &user)
}

func (r *gormUserRepository) FindByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	if strings.TrimSpace(googleID) == "" {
		return nil, errors.New("invalid google ID")
	}

	var user domain.User
	err := r.db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error
	return r.handleFindError(err, &user)
}

// UpsertByGoogleID runs inside a single transaction so a crash mid-operation
// can never leave a duplicate row for the same google_id.
func (r *gormUserRepository) UpsertByGoogleID(ctx context.Context, googleID, email, name, picture string) (*domain.User, error) {
	if strings.TrimSpace(googleID) == "" || strings.TrimSpace(email) == "" {
		return nil, errors.New("google ID and email are required")
	}

	var user domain.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("google_id = ?", googleID).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = domain.User{GoogleID: googleID, Email: email, Name: name, Picture: picture}
			return tx.Create(&user).Error
		}
		if err != nil {
			return err
		}

		// Existing account: refresh the mutable profile fields only. The
		// identifier and the external key never change.
		user.Name = name
		user.Picture = picture
		return tx.Model(&user).Updates(map[string]interface{}{
			"name":    name,
			"picture": picture,
		}).Error
	})
	if err != nil {
		log.Printf("[UserRepository] Database error during upsert: %v", err)
		return nil, errors.New("database error upserting user")
	}

	return &user, nil
}

// handleFindError maps gorm lookup failures without leaking query details.
func (r *gormUserRepository) handleFindError(err error, user *domain.User) (*domain.User, error) {
	if err == nil {
		return user, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	log.Printf("[UserRepository] Database error during lookup: %v", err)
	return nil, errors.New("database query failed")
}
