package models

import "github.com/google/uuid"

// Playlist is an ordered collection of recordings curated by a person.
// Membership lives in playlist_assignments; the store resolves it with an
// explicit join rather than a GORM association.
type Playlist struct {
	Base
	AuthorID    *uuid.UUID `gorm:"type:uuid;index" json:"author_id"`
	Title       string     `gorm:"type:text;not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
}

// PlaylistAssignment is the playlists<->recordings join row.
type PlaylistAssignment struct {
	Base
	PlaylistID  *uuid.UUID `gorm:"type:uuid;index:idx_playlist_assignments_pair" json:"playlist_id"`
	RecordingID uuid.UUID  `gorm:"type:uuid;not null;index:idx_playlist_assignments_pair" json:"recording_id"`
}
