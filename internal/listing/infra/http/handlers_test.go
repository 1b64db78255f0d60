package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/application"
	"github.com/xinyucaoo/influenceBay-sub001/internal/listing/domain"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/auth"
)

// stubService scripts the service layer so handler tests only exercise
// routing, auth, parsing and error translation.
type stubService struct {
	resolveBid func(cmd application.ResolveBidDTO) (*domain.Bid, error)
	placeBid   func(cmd application.PlaceBidDTO) (*domain.Bid, error)
	getListing func(id uuid.UUID) (*domain.Listing, error)
	listBids   func(listingID uuid.UUID) ([]*domain.Bid, error)
}

func (s *stubService) CreateListing(ctx context.Context, cmd application.CreateListingDTO) (*domain.Listing, error) {
	return nil, fmt.Errorf("not scripted")
}

func (s *stubService) CloseListing(ctx context.Context, cmd application.CloseListingDTO) (*domain.Listing, error) {
	return nil, fmt.Errorf("not scripted")
}

func (s *stubService) PlaceBid(ctx context.Context, cmd application.PlaceBidDTO) (*domain.Bid, error) {
	return s.placeBid(cmd)
}

func (s *stubService) ResolveBid(ctx context.Context, cmd application.ResolveBidDTO) (*domain.Bid, error) {
	return s.resolveBid(cmd)
}

func (s *stubService) GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	return s.getListing(id)
}

func (s *stubService) ListOpen(ctx context.Context) ([]*domain.Listing, error) {
	return nil, nil
}

func (s *stubService) ListEndingSoon(ctx context.Context, threshold time.Duration) ([]*domain.Listing, error) {
	return nil, nil
}

func (s *stubService) ListBids(ctx context.Context, listingID uuid.UUID) ([]*domain.Bid, error) {
	return s.listBids(listingID)
}

func newTestApp(t *testing.T, svc application.ListingService) (*fiber.App, string) {
	t.Helper()
	issuer := auth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	app := fiber.New()
	NewListingHandler(svc).RegisterRoutes(app, auth.RequireAuth(issuer))

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)
	return app, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestResolveBidEndpoint(t *testing.T) {
	listingID := uuid.New()
	bidID := uuid.New()
	path := fmt.Sprintf("/listings/%s/bids/%s", listingID, bidID)

	t.Run("accepted", func(t *testing.T) {
		svc := &stubService{
			resolveBid: func(cmd application.ResolveBidDTO) (*domain.Bid, error) {
				assert.Equal(t, listingID, cmd.ListingID)
				assert.Equal(t, bidID, cmd.BidID)
				assert.Equal(t, domain.BidAccepted, cmd.Decision)
				b := domain.NewBid(bidID, listingID, uuid.New(), decimal.NewFromInt(150))
				b.Status = domain.BidAccepted
				return b, nil
			},
		}
		app, token := newTestApp(t, svc)

		resp, body := doJSON(t, app, fiber.MethodPut, path, token, `{"status":"ACCEPTED"}`)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "ACCEPTED", body["status"])
		assert.Equal(t, bidID.String(), body["id"])
	})

	t.Run("without token", func(t *testing.T) {
		app, _ := newTestApp(t, &stubService{})

		resp, _ := doJSON(t, app, fiber.MethodPut, path, "", `{"status":"ACCEPTED"}`)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("decision outside the pair", func(t *testing.T) {
		app, token := newTestApp(t, &stubService{})

		resp, _ := doJSON(t, app, fiber.MethodPut, path, token, `{"status":"OUTBID"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed bid id", func(t *testing.T) {
		app, token := newTestApp(t, &stubService{})

		resp, _ := doJSON(t, app, fiber.MethodPut,
			fmt.Sprintf("/listings/%s/bids/not-a-uuid", listingID), token, `{"status":"ACCEPTED"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("service errors map to status codes", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{name: "not owner", err: domain.ErrNotListingOwner, wantStatus: fiber.StatusForbidden},
			{name: "bid missing", err: domain.ErrBidNotFound, wantStatus: fiber.StatusNotFound},
			{name: "listing missing", err: domain.ErrListingNotFound, wantStatus: fiber.StatusNotFound},
			{name: "already resolved", err: domain.ErrBidAlreadyResolved, wantStatus: fiber.StatusBadRequest},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := &stubService{
					resolveBid: func(cmd application.ResolveBidDTO) (*domain.Bid, error) {
						return nil, fmt.Errorf("resolve bid use case: %w", tt.err)
					},
				}
				app, token := newTestApp(t, svc)

				resp, body := doJSON(t, app, fiber.MethodPut, path, token, `{"status":"REJECTED"}`)
				assert.Equal(t, tt.wantStatus, resp.StatusCode)
				require.Contains(t, body, "error")
			})
		}
	})
}

func TestPlaceBidEndpoint(t *testing.T) {
	listingID := uuid.New()
	path := fmt.Sprintf("/listings/%s/bids", listingID)

	t.Run("created", func(t *testing.T) {
		svc := &stubService{
			placeBid: func(cmd application.PlaceBidDTO) (*domain.Bid, error) {
				assert.Equal(t, listingID, cmd.ListingID)
				assert.True(t, cmd.Amount.Equal(decimal.NewFromInt(250)))
				return domain.NewBid(uuid.New(), listingID, uuid.New(), cmd.Amount), nil
			},
		}
		app, token := newTestApp(t, svc)

		resp, body := doJSON(t, app, fiber.MethodPost, path, token, `{"amount":"250"}`)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, "PENDING", body["status"])
	})

	t.Run("bid too low", func(t *testing.T) {
		svc := &stubService{
			placeBid: func(cmd application.PlaceBidDTO) (*domain.Bid, error) {
				return nil, fmt.Errorf("place bid use case: %w", domain.ErrBidTooLow)
			},
		}
		app, token := newTestApp(t, svc)

		resp, _ := doJSON(t, app, fiber.MethodPost, path, token, `{"amount":"10"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("closed listing", func(t *testing.T) {
		svc := &stubService{
			placeBid: func(cmd application.PlaceBidDTO) (*domain.Bid, error) {
				return nil, fmt.Errorf("place bid use case: %w", domain.ErrListingNotOpen)
			},
		}
		app, token := newTestApp(t, svc)

		resp, _ := doJSON(t, app, fiber.MethodPost, path, token, `{"amount":"250"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetListingEndpoint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		listing, err := domain.NewFixedPriceListing(uuid.New(), uuid.New(), "flat post", "", decimal.NewFromInt(500))
		require.NoError(t, err)
		svc := &stubService{
			getListing: func(id uuid.UUID) (*domain.Listing, error) {
				assert.Equal(t, listing.ID, id)
				return listing, nil
			},
		}
		app, _ := newTestApp(t, svc)

		resp, body := doJSON(t, app, fiber.MethodGet, "/listings/"+listing.ID.String(), "", "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "OPEN", body["status"])
		assert.Equal(t, "FIXED", body["pricing_mode"])
	})

	t.Run("missing", func(t *testing.T) {
		svc := &stubService{
			getListing: func(id uuid.UUID) (*domain.Listing, error) {
				return nil, domain.ErrListingNotFound
			},
		}
		app, _ := newTestApp(t, svc)

		resp, _ := doJSON(t, app, fiber.MethodGet, "/listings/"+uuid.NewString(), "", "")
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
