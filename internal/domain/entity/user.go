// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is one record per chat participant, keyed by the Telegram account ID.
// Users are created on first contact with the bot and are never hard-deleted
// from the bot flow; deactivation only flips IsActive.
type User struct {
	ID         uint      // Internal surrogate key.
	TelegramID int64     // The external Telegram account ID. Unique.
	Username   string    // The Telegram @username, may be empty.
	FirstName  string    // Optional display first name.
	LastName   string    // Optional display last name.
	IsActive   bool      // Inactive users are excluded from mailings.
	CreatedAt  time.Time // Timestamp of first contact.
	UpdatedAt  time.Time // Timestamp of the last profile refresh.
}

// DisplayName returns a human-readable name for logs and the admin listing.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return "@" + u.Username
	default:
		return ""
	}
}
