package model

import "time"

// User is an administrator account able to log in and run assignments.
// Only a bcrypt hash of the password is ever stored.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role (currently always "ADMIN")
	CreatedAt    time.Time // users.created_at
}
