package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"stablefolio/api"
	"stablefolio/internal/app"
	"stablefolio/internal/repository"
	l3_service "stablefolio/internal/service/l3"
	"stablefolio/internal/util"
	"stablefolio/pkg/jupiter"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	allocationRepository := repository.NewPortfolioAllocationRepository(dbConn)
	snapshotRepository := repository.NewPerformanceSnapshotRepository(dbConn)
	rebalancerRunRepository := repository.NewRebalancerRunRepository(dbConn)
	swapQuoteRepository := repository.NewSwapQuoteRepository(dbConn)

	portfolioService := l3_service.NewPortfolioService(
		dbConn,
		portfolioRepository,
		allocationRepository,
		snapshotRepository,
		rebalancerRunRepository,
		swapQuoteRepository,
		secrets.SettlementAsset,
	)

	rebalancerHandler := app.RebalancerHandler{
		PortfolioService: portfolioService,
		QuoteClient: jupiter.Client{
			HttpClient: http.DefaultClient,
			BaseUrl:    secrets.JupiterBaseUrl,
		},
		DefaultSlippageBps: 50,
	}

	return &api.ApiHandler{
		Db:                dbConn,
		PortfolioService:  portfolioService,
		RebalancerHandler: rebalancerHandler,
		JwtDecodeSecret:   secrets.SupabaseJwtSecret,
	}, nil
}
