package models

import "github.com/google/uuid"

// Comment is a threaded comment. Every comment references its parent
// (roots reference themselves) and exactly one of the nullable target
// columns ties it to the entity being discussed.
type Comment struct {
	Base
	Subject  string `gorm:"type:text;not null" json:"subject"`
	Contents string `gorm:"type:text;not null" json:"contents"`

	ParentCommentID uuid.UUID `gorm:"type:uuid;not null;index" json:"parent_comment_id"`
	AuthorID        uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`

	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	PersonID       *uuid.UUID `gorm:"column:people_id;type:uuid;index" json:"people_id,omitempty"`
	RecordingID    *uuid.UUID `gorm:"type:uuid;index" json:"recording_id,omitempty"`
	HowtoID        *uuid.UUID `gorm:"type:uuid;index" json:"howto_id,omitempty"`
	BlogID         *uuid.UUID `gorm:"type:uuid;index" json:"blog_id,omitempty"`
}
