package main

import (
	"context"
	"os"

	campaignapp "github.com/xinyucaoo/influenceBay-sub001/internal/campaign/application"
	campaignhttp "github.com/xinyucaoo/influenceBay-sub001/internal/campaign/infra/http"
	campaignpg "github.com/xinyucaoo/influenceBay-sub001/internal/campaign/infra/repository/postgres"
	identityapp "github.com/xinyucaoo/influenceBay-sub001/internal/identity/application"
	identityhttp "github.com/xinyucaoo/influenceBay-sub001/internal/identity/infra/http"
	identitypg "github.com/xinyucaoo/influenceBay-sub001/internal/identity/infra/repository/postgres"
	listingapp "github.com/xinyucaoo/influenceBay-sub001/internal/listing/application"
	listinghttp "github.com/xinyucaoo/influenceBay-sub001/internal/listing/infra/http"
	listingpg "github.com/xinyucaoo/influenceBay-sub001/internal/listing/infra/repository/postgres"
	listingws "github.com/xinyucaoo/influenceBay-sub001/internal/listing/infra/websocket"
	profileapp "github.com/xinyucaoo/influenceBay-sub001/internal/profile/application"
	profilehttp "github.com/xinyucaoo/influenceBay-sub001/internal/profile/infra/http"
	profilepg "github.com/xinyucaoo/influenceBay-sub001/internal/profile/infra/repository/postgres"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/auth"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/db"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/db/migrations"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/httpserver"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/logger"
	"github.com/xinyucaoo/influenceBay-sub001/internal/shared/websocket"
	"go.uber.org/zap"
)

func main() {
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting influenceBay server...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info("Running database migrations...")
	if err := migrations.RunMigrations(); err != nil {
		log.Fatal("Database migration failed", zap.Error(err))
	}

	pool, err := db.GetPostgresDBPool(ctx)
	if err != nil {
		log.Fatal("Database connection failed", zap.Error(err))
	}
	defer pool.Close()

	issuer, err := auth.NewTokenIssuerFromEnv()
	if err != nil {
		log.Fatal("Token issuer setup failed", zap.Error(err))
	}

	txm := db.NewPgxTxManager(pool)

	// repositories
	userRepo := identitypg.NewUserRepository(pool)
	profileRepo := profilepg.NewProfileRepository(pool)
	listingRepo := listingpg.NewListingRepository(pool)
	bidRepo := listingpg.NewBidRepository(pool)
	campaignRepo := campaignpg.NewCampaignRepository(pool)
	applicationRepo := campaignpg.NewApplicationRepository(pool)

	// websocket hub for live listing updates
	hub := websocket.NewHub()
	go hub.Run(ctx)
	publisher := listingws.NewHubPublisher(hub)

	// application services
	identityService := identityapp.NewIdentityService(userRepo, issuer)
	profileService := profileapp.NewProfileService(profileRepo, userRepo)
	listingService := listingapp.NewListingService(
		listingapp.NewCreateListingUseCase(listingRepo, profileRepo, txm),
		listingapp.NewCloseListingUseCase(listingRepo, bidRepo, profileRepo, txm),
		listingapp.NewPlaceBidUseCase(listingRepo, bidRepo, profileRepo, txm, publisher),
		listingapp.NewResolveBidUseCase(listingRepo, bidRepo, profileRepo, txm, publisher),
		listingapp.NewListingQueries(listingRepo, bidRepo),
	)
	campaignService := campaignapp.NewCampaignService(campaignRepo, applicationRepo, profileRepo, txm)

	// HTTP server and routes
	server := httpserver.NewServer()
	authRequired := auth.RequireAuth(issuer)

	identityhttp.NewIdentityHandler(identityService).RegisterRoutes(server.App())
	profilehttp.NewProfileHandler(profileService).RegisterRoutes(server.App(), authRequired)
	listinghttp.NewListingHandler(listingService).RegisterRoutes(server.App(), authRequired)
	campaignhttp.NewCampaignHandler(campaignService).RegisterRoutes(server.App(), authRequired)
	listingws.NewWatchHandler(listingService, hub).RegisterRoutes(server.App(), ctx)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":9000"
	}
	if err := server.Start(addr); err != nil {
		log.Fatal("HTTP server failed", zap.Error(err))
	}
}
