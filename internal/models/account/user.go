package models

import "time"

type User struct {
	UID           string    `json:"uid" db:"uid"`
	DisplayName   string    `json:"displayName" db:"display_name"`
	Email         string    `json:"email" db:"email"`
	Token         string    `json:"token" db:"token"`
	PhotoURL      string    `json:"photoURL" db:"photo_url"`
	Provider      string    `json:"provider" db:"provider"`
	EmailVerified bool      `json:"emailVerified" db:"email_verified"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}
