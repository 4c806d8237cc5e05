package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mediapublic/mediapublic/internal/models"
)

// CommentStore adds the per-target lookups used by the comment threads
// shown under each entity page.
type CommentStore struct {
	*Store[models.Comment]
}

func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{Store: New[models.Comment](db,
		"subject", "contents", "parent_comment_id",
		"organization_id", "people_id", "recording_id", "howto_id", "blog_id",
	)}
}

func (s *CommentStore) listWhere(ctx context.Context, cond string, id uuid.UUID) ([]models.Comment, error) {
	var rows []models.Comment
	if err := s.db.WithContext(ctx).Where(cond, id).Order("creation_datetime").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	return rows, nil
}

func (s *CommentStore) ByOrganization(ctx context.Context, id uuid.UUID) ([]models.Comment, error) {
	return s.listWhere(ctx, "organization_id = ?", id)
}

func (s *CommentStore) ByPerson(ctx context.Context, id uuid.UUID) ([]models.Comment, error) {
	return s.listWhere(ctx, "people_id = ?", id)
}

func (s *CommentStore) ByRecording(ctx context.Context, id uuid.UUID) ([]models.Comment, error) {
	return s.listWhere(ctx, "recording_id = ?", id)
}

func (s *CommentStore) ByHowto(ctx context.Context, id uuid.UUID) ([]models.Comment, error) {
	return s.listWhere(ctx, "howto_id = ?", id)
}

func (s *CommentStore) ByBlog(ctx context.Context, id uuid.UUID) ([]models.Comment, error) {
	return s.listWhere(ctx, "blog_id = ?", id)
}
