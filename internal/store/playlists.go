package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mediapublic/mediapublic/internal/models"
)

// PlaylistStore resolves the playlists<->recordings many-to-many through
// explicit joins on playlist_assignments.
type PlaylistStore struct {
	*Store[models.Playlist]
}

func NewPlaylistStore(db *gorm.DB) *PlaylistStore {
	return &PlaylistStore{Store: New[models.Playlist](db, "title", "description", "author_id")}
}

// ByOwner returns the playlists curated by a person.
func (s *PlaylistStore) ByOwner(ctx context.Context, personID uuid.UUID) ([]models.Playlist, error) {
	var rows []models.Playlist
	if err := s.db.WithContext(ctx).Where("author_id = ?", personID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select playlists by owner: %w", err)
	}
	return rows, nil
}

// Recordings returns the recordings assigned to a playlist, oldest
// assignment first.
func (s *PlaylistStore) Recordings(ctx context.Context, playlistID uuid.UUID) ([]models.Recording, error) {
	var rows []models.Recording
	err := s.db.WithContext(ctx).
		Joins("JOIN playlist_assignments ON playlist_assignments.recording_id = recordings.id").
		Where("playlist_assignments.playlist_id = ?", playlistID).
		Order("playlist_assignments.creation_datetime").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select playlist recordings: %w", err)
	}
	return rows, nil
}

// AddRecording assigns a recording to a playlist.
func (s *PlaylistStore) AddRecording(ctx context.Context, playlistID, recordingID uuid.UUID) (*models.PlaylistAssignment, error) {
	assignment := models.PlaylistAssignment{
		PlaylistID:  &playlistID,
		RecordingID: recordingID,
	}
	if err := s.db.WithContext(ctx).Create(&assignment).Error; err != nil {
		return nil, fmt.Errorf("insert playlist assignment: %w", err)
	}
	return &assignment, nil
}

// RemoveRecording drops the assignment row. Returns false when the
// recording was not on the playlist.
func (s *PlaylistStore) RemoveRecording(ctx context.Context, playlistID, recordingID uuid.UUID) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("playlist_id = ? AND recording_id = ?", playlistID, recordingID).
		Delete(&models.PlaylistAssignment{})
	if res.Error != nil {
		return false, fmt.Errorf("delete playlist assignment: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
