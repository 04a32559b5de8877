package domain

import "time"

// User is the domain model for account holders. IsBlocked is flipped by an
// administrative action only; the auth subsystem reads it but never writes it.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsBlocked    bool
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
