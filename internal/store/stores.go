package store

import (
	"gorm.io/gorm"

	"github.com/mediapublic/mediapublic/internal/models"
)

// Stores bundles one store per table so wiring stays in one place.
type Stores struct {
	UserTypes     *Store[models.UserType]
	Users         *UserStore
	Comments      *CommentStore
	Organizations *Store[models.Organization]
	People        *PersonStore
	Recordings    *RecordingStore

	RecordingCategories          *Store[models.RecordingCategory]
	RecordingCategoryAssignments *Store[models.RecordingCategoryAssignment]

	Playlists           *PlaylistStore
	PlaylistAssignments *Store[models.PlaylistAssignment]

	Howtos                   *Store[models.Howto]
	HowtoCategories          *Store[models.HowtoCategory]
	HowtoCategoryAssignments *Store[models.HowtoCategoryAssignment]

	Blogs *Store[models.Blog]
}

func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		UserTypes:     New[models.UserType](db, "name", "description", "value"),
		Users:         NewUserStore(db),
		Comments:      NewCommentStore(db),
		Organizations: New[models.Organization](db,
			"short_name", "long_name", "short_description", "long_description",
			"address_0", "address_1", "city", "state", "zipcode",
			"phone", "fax", "primary_website", "secondary_website",
		),
		People:     NewPersonStore(db),
		Recordings: NewRecordingStore(db),

		RecordingCategories: New[models.RecordingCategory](db,
			"name", "short_description", "long_description"),
		RecordingCategoryAssignments: New[models.RecordingCategoryAssignment](db,
			"recording_category_id", "recording_id"),

		Playlists: NewPlaylistStore(db),
		PlaylistAssignments: New[models.PlaylistAssignment](db,
			"playlist_id", "recording_id"),

		Howtos: New[models.Howto](db, "title", "contents", "edit_datetime", "tags"),
		HowtoCategories: New[models.HowtoCategory](db,
			"name", "short_description", "long_description"),
		HowtoCategoryAssignments: New[models.HowtoCategoryAssignment](db,
			"howto_category_id", "howto_id"),

		Blogs: New[models.Blog](db, "title", "contents", "edit_datetime", "tags", "author_id"),
	}
}
