package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediapublic/mediapublic/internal/models"
)

func TestPlaylistsByOwner(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()
	for _, p := range []*models.Playlist{
		{AuthorID: &owner, Title: "morning drive", Description: "wake up set"},
		{AuthorID: &owner, Title: "late night", Description: "wind down set"},
		{AuthorID: &other, Title: "someone else", Description: "not ours"},
	} {
		require.NoError(t, stores.Playlists.Add(ctx, p))
	}

	mine, err := stores.Playlists.ByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, p := range mine {
		assert.Equal(t, owner, *p.AuthorID)
	}
}

func TestPlaylistRecordingsJoin(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	playlist := &models.Playlist{Title: "mix", Description: "assorted"}
	require.NoError(t, stores.Playlists.Add(ctx, playlist))

	inPlaylist := &models.Recording{Title: "interview", URL: "https://cdn.example.org/a.mp3"}
	outOfPlaylist := &models.Recording{Title: "b-side", URL: "https://cdn.example.org/b.mp3"}
	require.NoError(t, stores.Recordings.Add(ctx, inPlaylist))
	require.NoError(t, stores.Recordings.Add(ctx, outOfPlaylist))

	_, err := stores.Playlists.AddRecording(ctx, playlist.ID, inPlaylist.ID)
	require.NoError(t, err)

	got, err := stores.Playlists.Recordings(ctx, playlist.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inPlaylist.ID, got[0].ID)
	assert.Equal(t, "interview", got[0].Title)
}

func TestPlaylistRemoveRecording(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	playlist := &models.Playlist{Title: "mix", Description: "assorted"}
	require.NoError(t, stores.Playlists.Add(ctx, playlist))

	recording := &models.Recording{Title: "interview", URL: "https://cdn.example.org/a.mp3"}
	require.NoError(t, stores.Recordings.Add(ctx, recording))

	_, err := stores.Playlists.AddRecording(ctx, playlist.ID, recording.ID)
	require.NoError(t, err)

	removed, err := stores.Playlists.RemoveRecording(ctx, playlist.ID, recording.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	got, err := stores.Playlists.Recordings(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	// removing again reports that nothing was assigned
	removed, err = stores.Playlists.RemoveRecording(ctx, playlist.ID, recording.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRecordingsByOrganization(t *testing.T) {
	stores := NewStores(testDB(t))
	ctx := context.Background()

	org := testOrganization("kexp")
	require.NoError(t, stores.Organizations.Add(ctx, org))

	require.NoError(t, stores.Recordings.Add(ctx, &models.Recording{
		Title: "interview", URL: "https://cdn.example.org/a.mp3", OrganizationID: &org.ID,
	}))
	require.NoError(t, stores.Recordings.Add(ctx, &models.Recording{
		Title: "unaffiliated", URL: "https://cdn.example.org/b.mp3",
	}))

	rows, err := stores.Recordings.ByOrganization(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "interview", rows[0].Title)
}
