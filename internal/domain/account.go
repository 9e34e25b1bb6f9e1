package domain

import "time"

// Account represents a registered user of the system. PasswordHash is the
// opaque output of the credential hasher and must never be serialized or
// logged.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
