package models

import "time"

// User is a registered account record, the authorization subject. E-mail is
// unique (exact, case-sensitive match) and doubles as the token subject.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
