package domain

import "time"

type User struct {
	ID                int       `json:"id" db:"id"`
	Username          string    `json:"username" db:"username"`
	Email             string    `json:"email" db:"email"`
	PasswordHash      string    `json:"-" db:"password_hash"`
	IsVerified        bool      `json:"is_verified" db:"is_verified"`
	IsProfileComplete bool      `json:"is_profile_complete" db:"is_profile_complete"`
	Role              string    `json:"role" db:"role"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}
