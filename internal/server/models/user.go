// Package models declares the entities persisted by the server. IDs are
// store-assigned surrogate keys.
package models

// User is an account. Email is unique across all users.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsAdmin      bool
}
