package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mediapublic/mediapublic/internal/config"
	"github.com/mediapublic/mediapublic/internal/dto"
	"github.com/mediapublic/mediapublic/internal/store"
)

type AuthHandler struct {
	users *store.UserStore
	cfg   *config.Config
}

func NewAuthHandler(users *store.UserStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg}
}

// SocialLogin upserts the user for a social handle and returns a signed
// access token. First login creates the account; later logins refresh the
// stored credentials in place.
func (h *AuthHandler) SocialLogin(c *fiber.Ctx) error {
	var req dto.SocialLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Handle == "" || req.AccountID == "" {
		return badRequest(c, "handle and account_id are required")
	}
	if req.Provider == "" {
		req.Provider = "twitter"
	}

	existed, user, err := h.users.UpsertSocialLogin(c.UserContext(), req.Provider, store.SocialProfile{
		Handle:      req.Handle,
		AccountID:   req.AccountID,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		AuthToken:   req.AuthToken,
		AuthSecret:  req.AuthSecret,
	})
	if err != nil {
		slog.Error("social login failed", "handle", req.Handle, "error", err)
		return serverError(c, "users", err)
	}

	accessToken, err := h.signToken(user.ID.String(), req.Handle)
	if err != nil {
		return serverError(c, "users", err)
	}

	status := fiber.StatusCreated
	if existed {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(dto.AuthResponse{
		AccessToken: accessToken,
		Existed:     existed,
		User:        user,
	})
}

func (h *AuthHandler) signToken(sub, handle string) (string, error) {
	claims := jwt.MapClaims{
		"sub":    sub,
		"handle": handle,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(h.cfg.JWTAccessExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}
