package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mediapublic/mediapublic/internal/dto"
	"github.com/mediapublic/mediapublic/internal/store"
)

// Resource serves the uniform CRUD routes for one table. Every entity
// gets the same five endpoints; anything bespoke lives in its own handler.
type Resource[T any] struct {
	name  string
	store *store.Store[T]
	get   fiber.Handler
}

func NewResource[T any](name string, s *store.Store[T]) *Resource[T] {
	return &Resource[T]{name: name, store: s}
}

// WithGet swaps the by-id handler, for resources whose detail
// serialization embeds related rows.
func (r *Resource[T]) WithGet(h fiber.Handler) *Resource[T] {
	r.get = h
	return r
}

// Mount registers the CRUD routes under /<name>. Mutations go through
// the guard chain.
func (r *Resource[T]) Mount(router fiber.Router, guards ...fiber.Handler) {
	get := r.get
	if get == nil {
		get = r.Get
	}
	g := router.Group("/" + r.name)
	g.Get("/", r.List)
	g.Get("/:id", get)
	g.Post("/", guarded(guards, r.Create)...)
	g.Put("/:id", guarded(guards, r.Update)...)
	g.Delete("/:id", guarded(guards, r.Delete)...)
}

func guarded(guards []fiber.Handler, h fiber.Handler) []fiber.Handler {
	return append(append(make([]fiber.Handler, 0, len(guards)+1), guards...), h)
}

func (r *Resource[T]) List(c *fiber.Ctx) error {
	rows, err := r.store.All(c.UserContext())
	if err != nil {
		return serverError(c, r.name, err)
	}
	return c.JSON(fiber.Map{r.name: rows})
}

func (r *Resource[T]) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	row, err := r.store.ByID(c.UserContext(), id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return serverError(c, r.name, err)
	}
	return c.JSON(row)
}

func (r *Resource[T]) Create(c *fiber.Ctx) error {
	var row T
	if err := c.BodyParser(&row); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := r.store.Add(c.UserContext(), &row); err != nil {
		return serverError(c, r.name, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (r *Resource[T]) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return badRequest(c, "Invalid request body")
	}

	row, err := r.store.UpdateByID(c.UserContext(), id, fields)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return serverError(c, r.name, err)
	}
	return c.JSON(row)
}

func (r *Resource[T]) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	row, err := r.store.DeleteByID(c.UserContext(), id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return serverError(c, r.name, err)
	}
	return c.JSON(row)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: msg})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: "Not found"})
}

func serverError(c *fiber.Ctx, resource string, err error) error {
	slog.Error("resource operation failed", "resource", resource, "action", c.Method()+" "+c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
