package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mediapublic/mediapublic/internal/models"
)

// testDB opens a per-test in-memory SQLite database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.UserType{},
		&models.User{},
		&models.Organization{},
		&models.Person{},
		&models.Recording{},
		&models.RecordingCategory{},
		&models.RecordingCategoryAssignment{},
		&models.Playlist{},
		&models.PlaylistAssignment{},
		&models.Howto{},
		&models.HowtoCategory{},
		&models.HowtoCategoryAssignment{},
		&models.Blog{},
		&models.Comment{},
	))
	return db
}

func testOrganization(name string) *models.Organization {
	return &models.Organization{
		ShortName:        name,
		LongName:         name + " broadcasting collective",
		ShortDescription: "a station",
		LongDescription:  "a community station",
		Address0:         "1 Main St",
		Address1:         "Suite 2",
		City:             "Portland",
		State:            "OR",
		Zipcode:          "97201",
		Phone:            "555-0100",
		Fax:              "555-0101",
		PrimaryWebsite:   "https://" + name + ".example.org",
		SecondaryWebsite: "https://blog." + name + ".example.org",
	}
}

func TestAddAssignsIDAndTimestamps(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	org := testOrganization("kexp")
	require.NoError(t, stores.Organizations.Add(ctx, org))

	assert.NotEqual(t, uuid.Nil, org.ID)
	assert.False(t, org.CreatedAt.IsZero())
	assert.False(t, org.UpdatedAt.IsZero())
}

func TestByIDRoundtrip(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	org := testOrganization("kexp")
	require.NoError(t, stores.Organizations.Add(ctx, org))

	got, err := stores.Organizations.ByID(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, org.ID, got.ID)
	assert.Equal(t, "kexp", got.ShortName)
	assert.Equal(t, org.City, got.City)

	_, err = stores.Organizations.ByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAll(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	require.NoError(t, stores.Organizations.Add(ctx, testOrganization("kexp")))
	require.NoError(t, stores.Organizations.Add(ctx, testOrganization("kcrw")))

	rows, err := stores.Organizations.All(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestUpdateByIDHonorsAllowlist(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	org := testOrganization("kexp")
	require.NoError(t, stores.Organizations.Add(ctx, org))

	updated, err := stores.Organizations.UpdateByID(ctx, org.ID, map[string]any{
		"short_name": "kcrw",
		"id":         uuid.New().String(), // not allowlisted, must be ignored
		"bogus":      "value",
	})
	require.NoError(t, err)
	assert.Equal(t, "kcrw", updated.ShortName)
	assert.Equal(t, org.ID, updated.ID)
	assert.Equal(t, org.City, updated.City)
}

func TestUpdateByIDWithNoAllowedFieldsIsNoop(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	org := testOrganization("kexp")
	require.NoError(t, stores.Organizations.Add(ctx, org))

	updated, err := stores.Organizations.UpdateByID(ctx, org.ID, map[string]any{
		"bogus": "value",
	})
	require.NoError(t, err)
	assert.Equal(t, "kexp", updated.ShortName)
}

func TestUpdateByIDMissingRow(t *testing.T) {
	stores := NewStores(testDB(t))

	_, err := stores.Organizations.UpdateByID(context.Background(), uuid.New(), map[string]any{
		"short_name": "kcrw",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteByID(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	org := testOrganization("kexp")
	require.NoError(t, stores.Organizations.Add(ctx, org))

	deleted, err := stores.Organizations.DeleteByID(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, org.ID, deleted.ID)

	_, err = stores.Organizations.ByID(ctx, org.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = stores.Organizations.DeleteByID(ctx, org.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
