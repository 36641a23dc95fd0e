package model

import "time"

// Post is a blog post. The body text is not stored on the row: ContentPath
// points at an object in the content store and stays nil until the first
// markdown upload.
type Post struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Summary      *string   `json:"summary"`
	ContentPath  *string   `json:"content_path,omitempty"`
	AuthorID     int64     `json:"author_id"`
	CoverImage   *string   `json:"cover_image"`
	IsPublished  bool      `json:"is_published"`
	IsProtected  bool      `json:"is_protected"`
	PasswordHash *string   `json:"-"`
	UploaderName *string   `json:"uploader_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Tags is populated by the service layer from the post_tags links.
	Tags []Tag `json:"tags,omitempty"`
}
