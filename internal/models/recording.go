package models

import (
	"time"

	"github.com/google/uuid"
)

// Recording is a published piece of media hosted at URL.
type Recording struct {
	Base
	Title      string     `gorm:"type:text;not null" json:"title"`
	URL        string     `gorm:"type:text;not null" json:"url"`
	RecordedAt *time.Time `gorm:"column:recorded_datetime" json:"recorded_datetime"`

	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organization_id"`
}

// RecordingCategory labels recordings (news, music, talk, ...).
type RecordingCategory struct {
	Base
	Name             string `gorm:"type:text;not null" json:"name"`
	ShortDescription string `gorm:"type:text;not null" json:"short_description"`
	LongDescription  string `gorm:"type:text;not null" json:"long_description"`
}

// RecordingCategoryAssignment links a recording to a category.
type RecordingCategoryAssignment struct {
	Base
	RecordingCategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"recording_category_id"`
	RecordingID         uuid.UUID `gorm:"type:uuid;not null;index" json:"recording_id"`
}
