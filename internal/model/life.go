package model

import "time"

// LifeEntry is a life-log entry.
type LifeEntry struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Summary      *string   `json:"summary"`
	ContentPath  *string   `json:"content_path,omitempty"`
	IsPublished  bool      `json:"is_published"`
	IsProtected  bool      `json:"is_protected"`
	PasswordHash *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
