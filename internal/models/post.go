package models

import "time"

// Post is a blog entry written by a user under a theme.
// Date is stamped server-side (UTC) on create and update.
type Post struct {
	ID      int       `json:"id"`
	Title   string    `json:"titulo"`
	Text    string    `json:"texto"`
	Date    time.Time `json:"data"`
	ThemeID int       `json:"tema_id"`
	UserID  int       `json:"usuario_id"`
	Theme   *Theme    `json:"tema,omitempty"` // joined on reads
}
