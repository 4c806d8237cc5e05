package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/mediapublic/mediapublic/internal/config"
	"github.com/mediapublic/mediapublic/internal/handlers"
	"github.com/mediapublic/mediapublic/internal/middleware"
	"github.com/mediapublic/mediapublic/internal/store"
)

// Setup mounts every route. Collection reads are public; mutations need a
// JWT, and the join-table resources are admin-only.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	stores *store.Stores,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	relations *handlers.RelationsHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/social", authHandler.SocialLogin)

	guard := middleware.JWTProtected(cfg)
	adminChain := []fiber.Handler{
		middleware.JWTProtectedUnlessAdminToken(cfg),
		middleware.AdminRequired(db, cfg),
	}

	// Uniform CRUD per table
	handlers.NewResource("organizations", stores.Organizations).Mount(api, guard)
	handlers.NewResource("people", stores.People.Store).Mount(api, guard)
	handlers.NewResource("users", stores.Users.Store).Mount(api, guard)
	handlers.NewResource("comments", stores.Comments.Store).Mount(api, guard)
	handlers.NewResource("recordings", stores.Recordings.Store).Mount(api, guard)
	handlers.NewResource("recording_categories", stores.RecordingCategories).Mount(api, guard)
	handlers.NewResource("playlists", stores.Playlists.Store).WithGet(relations.PlaylistDetail).Mount(api, guard)
	handlers.NewResource("howtos", stores.Howtos).Mount(api, guard)
	handlers.NewResource("howto_categories", stores.HowtoCategories).Mount(api, guard)
	handlers.NewResource("blogs", stores.Blogs).Mount(api, guard)

	// Join-table and ranking tables are operational surface, admin-only
	handlers.NewResource("user_types", stores.UserTypes).Mount(api, adminChain...)
	handlers.NewResource("playlist_assignments", stores.PlaylistAssignments).Mount(api, adminChain...)
	handlers.NewResource("recording_category_assignments", stores.RecordingCategoryAssignments).Mount(api, adminChain...)
	handlers.NewResource("howto_category_assignments", stores.HowtoCategoryAssignments).Mount(api, adminChain...)

	// Filtered lookups and the playlist membership surface
	api.Get("/organizations/:id/people", relations.OrganizationPeople)
	api.Get("/organizations/:id/recordings", relations.OrganizationRecordings)
	api.Get("/organizations/:id/comments", relations.OrganizationComments)
	api.Get("/people/:id/playlists", relations.PersonPlaylists)
	api.Get("/people/:id/comments", relations.PersonComments)
	api.Get("/recordings/:id/comments", relations.RecordingComments)
	api.Get("/howtos/:id/comments", relations.HowtoComments)
	api.Get("/blogs/:id/comments", relations.BlogComments)

	api.Get("/playlists/:id/recordings", relations.PlaylistRecordings)
	api.Post("/playlists/:id/recordings/:recording_id", guard, relations.PlaylistAddRecording)
	api.Delete("/playlists/:id/recordings/:recording_id", guard, relations.PlaylistRemoveRecording)
}
