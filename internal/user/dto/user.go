package dto

import (
	"time"

	"github.com/andersevenrud/userbase/internal/user/domain"
)

// UserPayload is the public view of a user: what goes into token claims and
// login responses. Internal id, password hash and deletion marker stay out.
type UserPayload struct {
	GUID  string `json:"guid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ProfileOutput struct {
	GUID        string     `json:"guid"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Avatar      string     `json:"avatar,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

type UpdateProfileInput struct {
	Name string `json:"name"`
}

func NewUserPayload(u *domain.User) UserPayload {
	return UserPayload{
		GUID:  u.GUID,
		Email: u.Email,
		Name:  u.Name,
	}
}

func NewProfileOutput(u *domain.User) ProfileOutput {
	return ProfileOutput{
		GUID:        u.GUID,
		Email:       u.Email,
		Name:        u.Name,
		Avatar:      u.Avatar,
		LastLoginAt: u.LastLoginAt,
	}
}
