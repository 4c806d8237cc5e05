package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the UUID primary key and audit timestamps shared by every
// table. IDs are assigned client-side so inserts never depend on a
// database-side default, which also keeps upserted rows distinguishable
// from freshly created ones.
type Base struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:creation_datetime" json:"creation_datetime"`
	UpdatedAt time.Time `gorm:"column:modified_datetime" json:"modified_datetime"`
}

func (b *Base) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
