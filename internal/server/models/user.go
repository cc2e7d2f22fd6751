// Package models defines the database-facing row types shared by the
// repositories and services.
package models

import "time"

// User is an account identity plus its stored credential. PasswordHash
// never leaves the service layer.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
