package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xinyucaoo/influenceBay-sub001/internal/campaign/application"
	"github.com/xinyucaoo/influenceBay-sub001/internal/campaign/domain"
	profiledomain "github.com/xinyucaoo/influenceBay-sub001/internal/profile/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/apperrors"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/auth"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/httpserver"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/validate"
)

type CreateCampaignRequest struct {
	Title  string          `json:"title" validate:"required,max=200"`
	Brief  string          `json:"brief" validate:"max=5000"`
	Budget decimal.Decimal `json:"budget" validate:"required"`
}

type ApplyRequest struct {
	Pitch string `json:"pitch" validate:"max=2000"`
}

type DecideApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=ACCEPTED REJECTED"`
}

type CampaignResponse struct {
	ID             string          `json:"id"`
	BrandProfileID string          `json:"brand_profile_id"`
	Title          string          `json:"title"`
	Brief          string          `json:"brief"`
	Budget         decimal.Decimal `json:"budget"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

type ApplicationResponse struct {
	ID                  string    `json:"id"`
	CampaignID          string    `json:"campaign_id"`
	InfluencerProfileID string    `json:"influencer_profile_id"`
	Pitch               string    `json:"pitch"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

type CampaignHandler struct {
	service *application.CampaignService
}

func NewCampaignHandler(service *application.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: service}
}

func (h *CampaignHandler) RegisterRoutes(app *fiber.App, authRequired fiber.Handler) {
	app.Get("/campaigns", h.ListOpen)
	app.Get("/campaigns/:campaignID", h.GetCampaign)

	app.Post("/campaigns", authRequired, h.CreateCampaign)
	app.Post("/campaigns/:campaignID/close", authRequired, h.CloseCampaign)
	app.Post("/campaigns/:campaignID/applications", authRequired, h.Apply)
	app.Get("/campaigns/:campaignID/applications", authRequired, h.ListApplications)
	app.Put("/campaigns/:campaignID/applications/:applicationID", authRequired, h.DecideApplication)
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	actorID, ok := auth.CallerID(c)
	if !ok {
		return respondError(c, apperrors.NewUnauthorized("authentication required"))
	}

	var req CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidation("malformed request body"))
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, apperrors.NewValidation(err.Error()))
	}

	campaign, err := h.service.CreateCampaign(c.Context(), application.CreateCampaignDTO{
		ActorID: actorID,
		Title:   req.Title,
		Brief:   req.Brief,
		Budget:  req.Budget,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCampaignResponse(campaign))
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaignID"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid campaign id"))
	}
	campaign, err := h.service.GetCampaign(c.Context(), campaignID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCampaignResponse(campaign))
}

func (h *CampaignHandler) ListOpen(c *fiber.Ctx) error {
	campaigns, err := h.service.ListOpen(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		out = append(out, toCampaignResponse(campaign))
	}
	return c.JSON(out)
}

func (h *CampaignHandler) CloseCampaign(c *fiber.Ctx) error {
	actorID, ok := auth.CallerID(c)
	if !ok {
		return respondError(c, apperrors.NewUnauthorized("authentication required"))
	}
	campaignID, err := uuid.Parse(c.Params("campaignID"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid campaign id"))
	}
	campaign, err := h.service.CloseCampaign(c.Context(), campaignID, actorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toCampaignResponse(campaign))
}

func (h *CampaignHandler) Apply(c *fiber.Ctx) error {
	actorID, ok := auth.CallerID(c)
	if !ok {
		return respondError(c, apperrors.NewUnauthorized("authentication required"))
	}
	campaignID, err := uuid.Parse(c.Params("campaignID"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid campaign id"))
	}

	var req ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidation("malformed request body"))
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, apperrors.NewValidation(err.Error()))
	}

	app, err := h.service.Apply(c.Context(), application.ApplyDTO{
		CampaignID: campaignID,
		ActorID:    actorID,
		Pitch:      req.Pitch,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toApplicationResponse(app))
}

func (h *CampaignHandler) ListApplications(c *fiber.Ctx) error {
	actorID, ok := auth.CallerID(c)
	if !ok {
		return respondError(c, apperrors.NewUnauthorized("authentication required"))
	}
	campaignID, err := uuid.Parse(c.Params("campaignID"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid campaign id"))
	}
	applications, err := h.service.ListApplications(c.Context(), campaignID, actorID)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]ApplicationResponse, 0, len(applications))
	for _, app := range applications {
		out = append(out, toApplicationResponse(app))
	}
	return c.JSON(out)
}

func (h *CampaignHandler) DecideApplication(c *fiber.Ctx) error {
	actorID, ok := auth.CallerID(c)
	if !ok {
		return respondError(c, apperrors.NewUnauthorized("authentication required"))
	}
	campaignID, err := uuid.Parse(c.Params("campaignID"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid campaign id"))
	}
	applicationID, err := uuid.Parse(c.Params("applicationID"))
	if err != nil {
		return respondError(c, apperrors.NewValidation("invalid application id"))
	}

	var req DecideApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperrors.NewValidation("malformed request body"))
	}
	if err := validate.Struct(req); err != nil {
		return respondError(c, apperrors.NewValidation(err.Error()))
	}
	decision, err := domain.ParseApplicationDecision(req.Status)
	if err != nil {
		return respondError(c, err)
	}

	app, err := h.service.DecideApplication(c.Context(), application.DecideApplicationDTO{
		CampaignID:    campaignID,
		ApplicationID: applicationID,
		ActorID:       actorID,
		Decision:      decision,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toApplicationResponse(app))
}

func toCampaignResponse(campaign *domain.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:             campaign.ID.String(),
		BrandProfileID: campaign.BrandProfileID.String(),
		Title:          campaign.Title,
		Brief:          campaign.Brief,
		Budget:         campaign.Budget,
		Status:         string(campaign.Status),
		CreatedAt:      campaign.CreatedAt,
	}
}

func toApplicationResponse(app *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:                  app.ID.String(),
		CampaignID:          app.CampaignID.String(),
		InfluencerProfileID: app.InfluencerProfileID.String(),
		Pitch:               app.Pitch,
		Status:              string(app.Status),
		CreatedAt:           app.CreatedAt,
	}
}

func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCampaignNotFound):
		return httpserver.RespondError(c, apperrors.NewNotFound("campaign"))
	case errors.Is(err, domain.ErrApplicationNotFound):
		return httpserver.RespondError(c, apperrors.NewNotFound("application"))
	case errors.Is(err, profiledomain.ErrProfileNotFound):
		return httpserver.RespondError(c, apperrors.NewNotFound("profile"))
	case errors.Is(err, domain.ErrNotCampaignOwner):
		return httpserver.RespondError(c, apperrors.NewForbidden(domain.ErrNotCampaignOwner.Error()))
	case errors.Is(err, domain.ErrApplicantNotInfluencer):
		return httpserver.RespondError(c, apperrors.NewForbidden(domain.ErrApplicantNotInfluencer.Error()))
	case errors.Is(err, domain.ErrApplicationDecided):
		return httpserver.RespondError(c, apperrors.NewConflict(domain.ErrApplicationDecided.Error()))
	case errors.Is(err, domain.ErrAlreadyApplied):
		return httpserver.RespondError(c, apperrors.NewConflict(domain.ErrAlreadyApplied.Error()))
	case errors.Is(err, domain.ErrCampaignNotOpen):
		return httpserver.RespondError(c, apperrors.NewValidation(domain.ErrCampaignNotOpen.Error()))
	case errors.Is(err, domain.ErrInvalidBudget):
		return httpserver.RespondError(c, apperrors.NewValidation(domain.ErrInvalidBudget.Error()))
	case errors.Is(err, domain.ErrInvalidDecision):
		return httpserver.RespondError(c, apperrors.NewValidation(domain.ErrInvalidDecision.Error()))
	default:
		return httpserver.RespondError(c, err)
	}
}
