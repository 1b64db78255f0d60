package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/apperrors"
)

// localsUserID is the fiber locals key holding the authenticated user ID.
const localsUserID = "auth_user_id"

// RequireAuth returns the middleware guarding authenticated routes. It
// expects "Authorization: Bearer <token>" and stores the verified user ID in
// the request locals.
func RequireAuth(issuer *TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, "missing authorization header")
		}
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return unauthorized(c, "authorization header is not a bearer token")
		}
		userID, err := issuer.Verify(raw)
		if err != nil {
			return unauthorized(c, "invalid or expired token")
		}
		c.Locals(localsUserID, userID)
		return c.Next()
	}
}

// CallerID returns the authenticated user ID placed by RequireAuth.
func CallerID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(localsUserID).(uuid.UUID)
	return id, ok
}

func unauthorized(c *fiber.Ctx, message string) error {
	appErr := apperrors.NewUnauthorized(message)
	return c.Status(appErr.StatusCode).JSON(fiber.Map{"error": appErr})
}
