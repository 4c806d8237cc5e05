package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a site blog post written by a user.
type Blog struct {
	Base
	Title    string     `gorm:"type:text;not null" json:"title"`
	Contents string     `gorm:"type:text;not null" json:"contents"`
	EditedAt *time.Time `gorm:"column:edit_datetime" json:"edit_datetime"`
	Tags     string     `gorm:"type:text;not null" json:"tags"`

	AuthorID *uuid.UUID `gorm:"type:uuid;index" json:"author_id"`
}
