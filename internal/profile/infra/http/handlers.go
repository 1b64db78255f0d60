package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	identitydomain "github.com/xinyucaoo/influenceBay-sub001/internal/identity/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/profile/application"
	"github.com/xinyucaoo/influenceBay-sub001/internal/profile/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/apperrors"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/auth"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/httpserver"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/validate"
)

type CreateProfileRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=BRAND INFLUENCER"`
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Bio         string `json:"bio" validate:"max=2000"`
}

type ProfileResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Kind        string    `json:"kind"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProfileHandler struct {
	service *application.ProfileService
}

func NewProfileHandler(service *application.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) RegisterRoutes(app *fiber.App, authRequired fiber.Handler) {
	app.Post("/profiles", authRequired, h.CreateProfile)
	app.Get("/profiles/me", authRequired, h.GetOwnProfile)
	app.Get("/profiles/:profileID", h.GetProfile)
}

func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	actorID, ok := auth.CallerID(c)
	if !ok {
		return respondError(c, apperrors.NewUnauthorized("authentication required"))
	}

	var req CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidation("malformed request body"))
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, apperrors.NewValidation(err.Error()))
	}

	profile, err := h.service.CreateProfile(c.Context(), application.CreateProfileDTO{
		ActorID:     actorID,
		Kind:        domain.ProfileKind(req.Kind),
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProfileResponse(profile))
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("profileID"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid profile id"))
	}
	profile, err := h.service.GetProfile(c.Context(), profileID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProfileResponse(profile))
}

func (h *ProfileHandler) GetOwnProfile(c *fiber.Ctx) error {
	actorID, ok := auth.CallerID(c)
	if !ok {
		return respondError(c, apperrors.NewUnauthorized("authentication required"))
	}
	profile, err := h.service.GetOwnProfile(c.Context(), actorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProfileResponse(profile))
}

func toProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          p.ID.String(),
		UserID:      p.UserID.String(),
		Kind:        string(p.Kind),
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		CreatedAt:   p.CreatedAt,
	}
}

func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return httpserver.RespondError(c, apperrors.NewNotFound("profile"))
	case errors.Is(err, identitydomain.ErrUserNotFound):
		return httpserver.RespondError(c, apperrors.NewNotFound("user"))
	case errors.Is(err, domain.ErrProfileExists):
		return httpserver.RespondError(c, apperrors.NewConflict(domain.ErrProfileExists.Error()))
	case errors.Is(err, domain.ErrKindMismatch):
		return httpserver.RespondError(c, apperrors.NewValidation(domain.ErrKindMismatch.Error()))
	default:
		return httpserver.RespondError(c, err)
	}
}
