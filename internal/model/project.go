package model

import "time"

// Project is a portfolio entry. It shares the protected-content pattern
// with Post and LifeEntry.
type Project struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	DemoURL      *string   `json:"demo_url"`
	SourceURL    *string   `json:"source_url"`
	CoverImage   *string   `json:"cover_image"`
	AuthorID     int64     `json:"author_id"`
	ContentPath  *string   `json:"content_path,omitempty"`
	IsPublished  bool      `json:"is_published"`
	IsProtected  bool      `json:"is_protected"`
	PasswordHash *string   `json:"-"`
	UploaderName *string   `json:"uploader_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
