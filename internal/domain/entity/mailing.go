package entity

import "time"

// Mailing is an admin-authored broadcast with text and/or a media file.
// Sent flips exactly once; a mailing whose flag is already set is refused
// a second send. Mailings are dispatched only by explicit admin action,
// never automatically at SendAt.
type Mailing struct {
	ID        uint
	Text      string    // Message text, or caption when MediaFile is set. May be empty.
	MediaFile string    // Path or file ID of the attached media. May be empty.
	SendAt    time.Time // Scheduled send time, informational only.
	Sent      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasContent reports whether there is anything to deliver.
func (m *Mailing) HasContent() bool {
	return m.Text != "" || m.MediaFile != ""
}
