package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mediapublic/mediapublic/internal/dto"
	"github.com/mediapublic/mediapublic/internal/models"
	"github.com/mediapublic/mediapublic/internal/store"
)

// RelationsHandler serves the filtered lookups hanging off an entity:
// an organization's roster and catalog, a person's playlists, and the
// comment thread under each commentable entity.
type RelationsHandler struct {
	stores *store.Stores
}

func NewRelationsHandler(stores *store.Stores) *RelationsHandler {
	return &RelationsHandler{stores: stores}
}

func (h *RelationsHandler) parseID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *RelationsHandler) OrganizationPeople(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return badRequest(c, "Invalid id")
	}
	people, err := h.stores.People.ByOrganization(c.UserContext(), id)
	if err != nil {
		return serverError(c, "people", err)
	}
	return c.JSON(fiber.Map{"people": people})
}

func (h *RelationsHandler) OrganizationRecordings(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return badRequest(c, "Invalid id")
	}
	recordings, err := h.stores.Recordings.ByOrganization(c.UserContext(), id)
	if err != nil {
		return serverError(c, "recordings", err)
	}
	return c.JSON(fiber.Map{"recordings": recordings})
}

func (h *RelationsHandler) PersonPlaylists(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return badRequest(c, "Invalid id")
	}
	playlists, err := h.stores.Playlists.ByOwner(c.UserContext(), id)
	if err != nil {
		return serverError(c, "playlists", err)
	}
	return c.JSON(fiber.Map{"playlists": playlists})
}

// commentsBy serves one of the per-target comment lookups.
func (h *RelationsHandler) commentsBy(c *fiber.Ctx, lookup func(context.Context, uuid.UUID) ([]models.Comment, error)) error {
	id, ok := h.parseID(c)
	if !ok {
		return badRequest(c, "Invalid id")
	}
	rows, err := lookup(c.UserContext(), id)
	if err != nil {
		return serverError(c, "comments", err)
	}
	return c.JSON(fiber.Map{"comments": rows})
}

func (h *RelationsHandler) OrganizationComments(c *fiber.Ctx) error {
	return h.commentsBy(c, h.stores.Comments.ByOrganization)
}

func (h *RelationsHandler) PersonComments(c *fiber.Ctx) error {
	return h.commentsBy(c, h.stores.Comments.ByPerson)
}

func (h *RelationsHandler) RecordingComments(c *fiber.Ctx) error {
	return h.commentsBy(c, h.stores.Comments.ByRecording)
}

func (h *RelationsHandler) HowtoComments(c *fiber.Ctx) error {
	return h.commentsBy(c, h.stores.Comments.ByHowto)
}

func (h *RelationsHandler) BlogComments(c *fiber.Ctx) error {
	return h.commentsBy(c, h.stores.Comments.ByBlog)
}

// PlaylistDetail returns a playlist with its recordings resolved.
func (h *RelationsHandler) PlaylistDetail(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return badRequest(c, "Invalid id")
	}

	playlist, err := h.stores.Playlists.ByID(c.UserContext(), id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return serverError(c, "playlists", err)
	}

	recordings, err := h.stores.Playlists.Recordings(c.UserContext(), id)
	if err != nil {
		return serverError(c, "playlists", err)
	}

	return c.JSON(dto.PlaylistResponse{Playlist: *playlist, Recordings: recordings})
}

func (h *RelationsHandler) PlaylistRecordings(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return badRequest(c, "Invalid id")
	}
	recordings, err := h.stores.Playlists.Recordings(c.UserContext(), id)
	if err != nil {
		return serverError(c, "playlists", err)
	}
	return c.JSON(fiber.Map{"recordings": recordings})
}

func (h *RelationsHandler) PlaylistAddRecording(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return badRequest(c, "Invalid id")
	}
	recordingID, err := uuid.Parse(c.Params("recording_id"))
	if err != nil {
		return badRequest(c, "Invalid recording id")
	}

	assignment, err := h.stores.Playlists.AddRecording(c.UserContext(), id, recordingID)
	if err != nil {
		return serverError(c, "playlists", err)
	}
	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func (h *RelationsHandler) PlaylistRemoveRecording(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return badRequest(c, "Invalid id")
	}
	recordingID, err := uuid.Parse(c.Params("recording_id"))
	if err != nil {
		return badRequest(c, "Invalid recording id")
	}

	removed, err := h.stores.Playlists.RemoveRecording(c.UserContext(), id, recordingID)
	if err != nil {
		return serverError(c, "playlists", err)
	}
	if !removed {
		return notFound(c)
	}
	return c.JSON(fiber.Map{"message": "Recording removed from playlist"})
}
