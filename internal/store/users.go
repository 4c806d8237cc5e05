package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mediapublic/mediapublic/internal/models"
)

// SocialProfile is what the OAuth callback hands us about a social account.
type SocialProfile struct {
	Handle      string
	AccountID   string
	DisplayName string
	PhotoURL    string
	AuthToken   string
	AuthSecret  string
}

// UserStore adds the social-login path on top of plain user CRUD.
type UserStore struct {
	*Store[models.User]
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{Store: New[models.User](db,
		"display_name", "email", "profile_photo_url",
		"user_type_id", "organization_id",
	)}
}

// UpsertSocialLogin creates the user for a social handle or, when the
// handle is already registered, refreshes its credentials in place. The
// whole operation is a single INSERT ... ON CONFLICT DO UPDATE, so two
// concurrent logins for the same handle cannot race each other into a
// duplicate row. Returns existed=true when the account was already there.
func (s *UserStore) UpsertSocialLogin(ctx context.Context, provider string, p SocialProfile) (bool, *models.User, error) {
	now := time.Now().UTC()
	candidate := models.User{
		Base:              models.Base{ID: uuid.New()},
		DisplayName:       p.DisplayName,
		Email:             fmt.Sprintf("%s@%s.social.auth", p.Handle, provider),
		TwitterHandle:     &p.Handle,
		TwitterUserID:     &p.AccountID,
		TwitterAuthToken:  p.AuthToken,
		TwitterAuthSecret: p.AuthSecret,
		ProfilePhotoURL:   p.PhotoURL,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "twitter_handle"}},
		DoUpdates: clause.Assignments(map[string]any{
			"twitter_user_id":     p.AccountID,
			"twitter_auth_token":  p.AuthToken,
			"twitter_auth_secret": p.AuthSecret,
			"last_login_datetime": now,
			"modified_datetime":   now,
		}),
	}).Create(&candidate).Error
	if err != nil {
		return false, nil, fmt.Errorf("social login upsert: %w", err)
	}

	// The conflict path keeps the existing row, so reload by handle; a
	// surviving foreign id tells us which branch ran.
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "twitter_handle = ?", p.Handle).Error; err != nil {
		return false, nil, fmt.Errorf("social login reload: %w", err)
	}
	return user.ID != candidate.ID, &user, nil
}

// ByTwitterHandle returns the user registered for handle, or ErrNotFound.
func (s *UserStore) ByTwitterHandle(ctx context.Context, handle string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "twitter_handle = ?", handle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select by handle: %w", err)
	}
	return &user, nil
}
