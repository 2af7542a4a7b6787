package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"fairslot/api"
	"fairslot/internal/domain"
	"fairslot/internal/repository"
	l1_service "fairslot/internal/service/l1"
	l2_service "fairslot/internal/service/l2"
	l3_service "fairslot/internal/service/l3"
	"fairslot/internal/util"

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

	handler, err := buildApiHandler(dbConn)
	if err != nil {
		return nil, err
	}
	handler.JwtSecret = secrets.JwtSecret

	return handler, nil
}

func buildApiHandler(dbConn *sql.DB) (*api.ApiHandler, error) {
	engineConfig := domain.DefaultEngineConfig()

	assetRepository := repository.NewAssetRepository(dbConn)
	assetConfigRepository := repository.NewAssetConfigRepository(dbConn)
	bidRepository := repository.NewBidRepository(dbConn)
	bidCapRepository := repository.NewBidCapRepository(dbConn)
	auctionRepository := repository.NewAuctionRepository(dbConn)
	slotAllocationRepository := repository.NewSlotAllocationRepository(dbConn)
	performanceMetricRepository := repository.NewPerformanceMetricRepository(dbConn)
	fairnessScoreRepository := repository.NewFairnessScoreRepository(dbConn)
	roiMetricSpecRepository := repository.NewRoiMetricSpecRepository(dbConn)
	advisoryLockRepository := repository.NewAdvisoryLockRepository()
	apiRequestRepository := repository.NewApiRequestRepository()

	roiService := l1_service.NewRoiService(
		roiMetricSpecRepository,
		performanceMetricRepository,
		engineConfig.Roi,
	)
	assetConfigService := l1_service.NewAssetConfigService(assetConfigRepository)
	bidValidatorService := l1_service.NewBidValidatorService(
		bidRepository,
		bidCapRepository,
		engineConfig.Validator,
	)

	fairnessService := l2_service.NewFairnessService(
		roiService,
		assetConfigService,
		bidRepository,
		slotAllocationRepository,
		bidCapRepository,
		fairnessScoreRepository,
		engineConfig.Fairness,
	)

	slotAllocatorService := l3_service.NewSlotAllocatorService(
		assetConfigService,
		fairnessService,
		slotAllocationRepository,
	)
	bidService := l3_service.NewBidService(
		dbConn,
		assetRepository,
		bidRepository,
		auctionRepository,
		advisoryLockRepository,
		bidValidatorService,
		fairnessService,
	)
	auctionService := l3_service.NewAuctionService(
		dbConn,
		assetRepository,
		auctionRepository,
		bidRepository,
		slotAllocationRepository,
		advisoryLockRepository,
		fairnessScoreRepository,
		assetConfigService,
		fairnessService,
	)

	return &api.ApiHandler{
		Db:                       dbConn,
		BidService:               bidService,
		AuctionService:           auctionService,
		SlotAllocatorService:     slotAllocatorService,
		AssetRepository:          assetRepository,
		SlotAllocationRepository: slotAllocationRepository,
		FairnessScoreRepository:  fairnessScoreRepository,
		ApiRequestRepository:     apiRequestRepository,
	}, nil
}
