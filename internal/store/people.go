package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mediapublic/mediapublic/internal/models"
)

// PersonStore adds the organization roster lookup.
type PersonStore struct {
	*Store[models.Person]
}

func NewPersonStore(db *gorm.DB) *PersonStore {
	return &PersonStore{Store: New[models.Person](db,
		"first", "last", "address_0", "address_1", "city", "state", "zipcode",
		"phone", "fax", "primary_website", "secondary_website",
		"twitter", "facebook", "instagram", "periscope", "organization_id",
	)}
}

// ByOrganization returns the people belonging to an organization.
func (s *PersonStore) ByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Person, error) {
	var rows []models.Person
	if err := s.db.WithContext(ctx).Where("organization_id = ?", orgID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select people by organization: %w", err)
	}
	return rows, nil
}
