// File: internal/domain/user.go
package domain

import (
	"errors"
	"strings"
	"time"
)

// User is a local account backed by a Google identity. A row is created on
// the first successful login with a given google_id and its profile fields
// are refreshed on later logins.
type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	GoogleID  string    `json:"-" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"not null"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsValid() error {
	if strings.TrimSpace(u.GoogleID) == "" {
		return errors.New("google id is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return errors.New("email is required")
	}
	return nil
}
