package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/listing-marketplace/internal/pkg/errors"
	"github.com/listing-marketplace/internal/pkg/token"
	"github.com/listing-marketplace/internal/pkg/utils"
)

// UserIDKey is the locals key carrying the authenticated user identifier.
const UserIDKey = "userID"

// Auth - middleware requiring a valid bearer token. On success the user
// identifier is stored in locals for handlers to read.
func Auth(tokens *token.Manager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			logger.Debug("Token rejected", zap.Error(err))
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// UserID returns the authenticated user identifier set by Auth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
