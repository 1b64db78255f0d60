package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/apperrors"
	"go.uber.org/zap"
)

// RespondError converts any error into the JSON error envelope. Internal
// errors are logged with their cause and surfaced without detail.
func RespondError(c *fiber.Ctx, err error) error {
	appErr := apperrors.From(err)
	if appErr.Kind == apperrors.KindInternal {
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Status(appErr.StatusCode).JSON(fiber.Map{"error": appErr})
}
