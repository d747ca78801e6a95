package domain

import "time"

// User is a parish office account. Only the bcrypt hash of the password is
// ever stored.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
