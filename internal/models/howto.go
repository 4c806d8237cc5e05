package models

import (
	"time"

	"github.com/google/uuid"
)

// Howto is an editorial guide article.
type Howto struct {
	Base
	Title    string     `gorm:"type:text;not null" json:"title"`
	Contents string     `gorm:"type:text;not null" json:"contents"`
	EditedAt *time.Time `gorm:"column:edit_datetime" json:"edit_datetime"`
	Tags     string     `gorm:"type:text;not null" json:"tags"`
}

// HowtoCategory labels howtos.
type HowtoCategory struct {
	Base
	Name             string `gorm:"type:text;not null" json:"name"`
	ShortDescription string `gorm:"type:text;not null" json:"short_description"`
	LongDescription  string `gorm:"type:text;not null" json:"long_description"`
}

// HowtoCategoryAssignment links a howto to a category.
type HowtoCategoryAssignment struct {
	Base
	HowtoCategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"howto_category_id"`
	HowtoID         uuid.UUID `gorm:"type:uuid;not null;index" json:"howto_id"`
}
