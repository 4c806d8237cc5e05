package middleware

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mediapublic/mediapublic/internal/config"
	"github.com/mediapublic/mediapublic/internal/dto"
	"github.com/mediapublic/mediapublic/internal/models"
)

// AdminValue is the minimum user_types.value that grants admin access.
const AdminValue = 100

// AdminRequired passes requests carrying the operational admin token, or
// an authenticated user whose user type ranks at admin value or above.
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		userID, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err == nil && user.UserTypeID != nil {
			var ut models.UserType
			if err := db.First(&ut, "id = ?", *user.UserTypeID).Error; err == nil && ut.Value >= AdminValue {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}
