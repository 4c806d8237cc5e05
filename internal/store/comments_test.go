package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediapublic/mediapublic/internal/models"
)

func addComment(t *testing.T, stores *Stores, subject string, mutate func(*models.Comment)) *models.Comment {
	t.Helper()
	c := &models.Comment{
		Subject:  subject,
		Contents: "body of " + subject,
		AuthorID: uuid.New(),
	}
	// roots reference themselves
	c.ID = uuid.New()
	c.ParentCommentID = c.ID
	mutate(c)
	require.NoError(t, stores.Comments.Add(context.Background(), c))
	return c
}

func TestCommentsByTarget(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	orgID := uuid.New()
	recordingID := uuid.New()
	blogID := uuid.New()

	addComment(t, stores, "on the org", func(c *models.Comment) { c.OrganizationID = &orgID })
	addComment(t, stores, "on the org too", func(c *models.Comment) { c.OrganizationID = &orgID })
	addComment(t, stores, "on the recording", func(c *models.Comment) { c.RecordingID = &recordingID })
	addComment(t, stores, "on the blog", func(c *models.Comment) { c.BlogID = &blogID })

	orgComments, err := stores.Comments.ByOrganization(ctx, orgID)
	require.NoError(t, err)
	assert.Len(t, orgComments, 2)

	recComments, err := stores.Comments.ByRecording(ctx, recordingID)
	require.NoError(t, err)
	require.Len(t, recComments, 1)
	assert.Equal(t, "on the recording", recComments[0].Subject)

	blogComments, err := stores.Comments.ByBlog(ctx, blogID)
	require.NoError(t, err)
	assert.Len(t, blogComments, 1)

	none, err := stores.Comments.ByHowto(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCommentUpdateCanRetarget(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	oldRecording := uuid.New()
	newRecording := uuid.New()
	comment := addComment(t, stores, "misfiled", func(c *models.Comment) { c.RecordingID = &oldRecording })

	updated, err := stores.Comments.UpdateByID(ctx, comment.ID, map[string]any{
		"recording_id": newRecording,
		"subject":      "refiled",
	})
	require.NoError(t, err)
	assert.Equal(t, "refiled", updated.Subject)
	require.NotNil(t, updated.RecordingID)
	assert.Equal(t, newRecording, *updated.RecordingID)

	moved, err := stores.Comments.ByRecording(ctx, newRecording)
	require.NoError(t, err)
	require.Len(t, moved, 1)
	assert.Equal(t, comment.ID, moved[0].ID)
}

func TestCommentThreading(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	recordingID := uuid.New()
	root := addComment(t, stores, "root", func(c *models.Comment) { c.RecordingID = &recordingID })

	reply := &models.Comment{
		Subject:         "reply",
		Contents:        "agreed",
		AuthorID:        uuid.New(),
		ParentCommentID: root.ID,
		RecordingID:     &recordingID,
	}
	require.NoError(t, stores.Comments.Add(ctx, reply))

	thread, err := stores.Comments.ByRecording(ctx, recordingID)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, root.ID, thread[1].ParentCommentID)
}

func TestPeopleByOrganization(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	org := testOrganization("kexp")
	require.NoError(t, stores.Organizations.Add(ctx, org))

	person := &models.Person{
		First: "Casey", Last: "Jones",
		Address0: "1 Main St", Address1: "", City: "Portland", State: "OR", Zipcode: "97201",
		Phone: "555-0100", Fax: "555-0101",
		PrimaryWebsite: "https://example.org", SecondaryWebsite: "https://blog.example.org",
		Twitter: "@casey", Facebook: "casey", Instagram: "casey", Periscope: "casey",
		UserID:         uuid.New(),
		OrganizationID: &org.ID,
	}
	require.NoError(t, stores.People.Add(ctx, person))

	require.NoError(t, stores.People.Add(ctx, &models.Person{
		First: "Indy", Last: "Pendent",
		Address0: "2 Oak St", Address1: "", City: "Olympia", State: "WA", Zipcode: "98501",
		Phone: "555-0200", Fax: "555-0201",
		PrimaryWebsite: "https://example.org", SecondaryWebsite: "https://blog.example.org",
		Twitter: "@indy", Facebook: "indy", Instagram: "indy", Periscope: "indy",
		UserID: uuid.New(),
	}))

	roster, err := stores.People.ByOrganization(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, person.ID, roster[0].ID)
}
