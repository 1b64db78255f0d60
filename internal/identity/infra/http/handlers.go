package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xinyucaoo/influenceBay-sub001/internal/identity/application"
	"github.com/xinyucaoo/influenceBay-sub001/internal/identity/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/apperrors"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/httpserver"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/validate"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=BRAND INFLUENCER"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type IdentityHandler struct {
	service *application.IdentityService
}

func NewIdentityHandler(service *application.IdentityService) *IdentityHandler {
	return &IdentityHandler{service: service}
}

func (h *IdentityHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
}

func (h *IdentityHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidation("malformed request body"))
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, apperrors.NewValidation(err.Error()))
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return respondError(c, apperrors.NewValidation(err.Error()))
	}

	user, err := h.service.Register(c.Context(), application.RegisterDTO{
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	})
}

func (h *IdentityHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidation("malformed request body"))
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, apperrors.NewValidation(err.Error()))
	}

	token, err := h.service.Login(c.Context(), application.LoginDTO{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(TokenResponse{AccessToken: token})
}

func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return httpserver.RespondError(c, apperrors.NewConflict(domain.ErrEmailTaken.Error()))
	case errors.Is(err, domain.ErrInvalidCredentials):
		return httpserver.RespondError(c, apperrors.NewUnauthorized(domain.ErrInvalidCredentials.Error()))
	case errors.Is(err, domain.ErrInvalidRole):
		return httpserver.RespondError(c, apperrors.NewValidation(domain.ErrInvalidRole.Error()))
	default:
		return httpserver.RespondError(c, err)
	}
}
