package entity

import (
	"time"
)

// User is the aggregate root for the auth domain. PasswordHash holds a
// bcrypt digest; the plaintext password is never stored or logged.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
