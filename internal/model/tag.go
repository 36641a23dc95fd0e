package model

import "time"

// Tag is created lazily the first time any post references its name.
// Name and Slug are both unique; tags are never deleted when the last
// link goes away.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}
