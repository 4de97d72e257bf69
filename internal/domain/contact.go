package domain

import "time"

// ContactEntry is a single contact-form submission. ID and CreatedAt are
// assigned by the database on insert and never change afterwards.
type ContactEntry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
