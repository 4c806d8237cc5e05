package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mediapublic/mediapublic/internal/models"
)

// RecordingStore adds the organization catalog lookup.
type RecordingStore struct {
	*Store[models.Recording]
}

func NewRecordingStore(db *gorm.DB) *RecordingStore {
	return &RecordingStore{Store: New[models.Recording](db,
		"title", "url", "recorded_datetime", "organization_id",
	)}
}

// ByOrganization returns the recordings published by an organization.
func (s *RecordingStore) ByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Recording, error) {
	var rows []models.Recording
	if err := s.db.WithContext(ctx).Where("organization_id = ?", orgID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select recordings by organization: %w", err)
	}
	return rows, nil
}
