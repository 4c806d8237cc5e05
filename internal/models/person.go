package models

import "github.com/google/uuid"

// Person is the public profile of a contributor, tied to the user account
// that owns it and optionally to the organization they work for.
//
// TODO: the social columns should become a one-to-many profile-links table
// so new networks stop requiring schema changes.
type Person struct {
	Base
	First string `gorm:"type:text;not null" json:"first"`
	Last  string `gorm:"type:text;not null" json:"last"`

	Address0 string `gorm:"column:address_0;type:text;not null" json:"address_0"`
	Address1 string `gorm:"column:address_1;type:text;not null" json:"address_1"`
	City     string `gorm:"type:text;not null" json:"city"`
	State    string `gorm:"type:text;not null" json:"state"`
	Zipcode  string `gorm:"type:text;not null" json:"zipcode"`

	Phone            string `gorm:"type:text;not null" json:"phone"`
	Fax              string `gorm:"type:text;not null" json:"fax"`
	PrimaryWebsite   string `gorm:"type:text;not null" json:"primary_website"`
	SecondaryWebsite string `gorm:"type:text;not null" json:"secondary_website"`

	Twitter   string `gorm:"type:text;not null" json:"twitter"`
	Facebook  string `gorm:"type:text;not null" json:"facebook"`
	Instagram string `gorm:"type:text;not null" json:"instagram"`
	Periscope string `gorm:"type:text;not null" json:"periscope"`

	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organization_id"`
}

func (Person) TableName() string { return "people" }
