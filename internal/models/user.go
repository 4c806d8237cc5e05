package models

import (
	"time"

	"github.com/google/uuid"
)

// UserType ranks users (viewer, contributor, admin, ...) by numeric value.
type UserType struct {
	Base
	Name        string `gorm:"type:text;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Value       int    `gorm:"not null" json:"value"`
}

// User is an account holder. Accounts created through social login carry
// the twitter columns; the handle and the provider-side user id are unique.
type User struct {
	Base
	DisplayName string `gorm:"type:text;not null" json:"display_name"`
	Email       string `gorm:"type:text;not null" json:"email"`

	LastLoginAt time.Time `gorm:"column:last_login_datetime;autoCreateTime" json:"last_login_datetime"`
	SignupAt    time.Time `gorm:"column:signup_date;autoCreateTime" json:"signup_date"`

	TwitterHandle     *string `gorm:"type:text;uniqueIndex" json:"twitter_handle"`
	TwitterUserID     *string `gorm:"type:text;uniqueIndex" json:"-"`
	TwitterAuthToken  string  `gorm:"type:text" json:"-"`
	TwitterAuthSecret string  `gorm:"type:text" json:"-"`
	ProfilePhotoURL   string  `gorm:"type:text" json:"profile_photo_url"`

	UserTypeID     *uuid.UUID `gorm:"type:uuid" json:"user_type_id"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organization_id"`
}
