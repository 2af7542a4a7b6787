package l3_service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/domain"
	mock_repository "fairslot/internal/repository/mocks"
	l1_service "fairslot/internal/service/l1"
	"fairslot/internal/util"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_EndAuction(t *testing.T) {
	ctx := context.Background()
	date := util.NewDate(2026, 9, 1)

	asset := model.Asset{
		AssetID:     uuid.New(),
		Level:       model.AssetLevel_Primary,
		TotalSlots:  10,
		ValuePerDay: decimal.NewFromInt(10_000),
		Importance:  8,
	}

	t.Run("resolves exactly one winner and freezes every score", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, err := util.NewTestDb()
		require.NoError(t, err)

		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		auctionRepository := mock_repository.NewMockAuctionRepository(ctrl)
		bidRepository := mock_repository.NewMockBidRepository(ctrl)
		slotAllocationRepository := mock_repository.NewMockSlotAllocationRepository(ctrl)
		advisoryLockRepository := mock_repository.NewMockAdvisoryLockRepository(ctrl)
		fairnessScoreRepository := mock_repository.NewMockFairnessScoreRepository(ctrl)

		winnerBid := model.Bid{
			BidID:       uuid.New(),
			Lob:         "pharmacy",
			BidderClass: model.BidderClass_Internal,
			Amount:      decimal.NewFromInt(8_000),
			Status:      model.BidStatus_Active,
			AssetID:     asset.AssetID,
			StartDate:   date,
			CreatedAt:   time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		}
		loserBid := winnerBid
		loserBid.BidID = uuid.New()
		loserBid.Amount = decimal.NewFromInt(5_000)

		auction := model.Auction{
			AuctionID: uuid.New(),
			AssetID:   asset.AssetID,
			Date:      date,
			Status:    model.AuctionStatus_Active,
			ClosesAt:  date,
		}

		handler := auctionServiceHandler{
			Db:                       db,
			AssetRepository:          assetRepository,
			AuctionRepository:        auctionRepository,
			BidRepository:            bidRepository,
			SlotAllocationRepository: slotAllocationRepository,
			AdvisoryLockRepository:   advisoryLockRepository,
			FairnessScoreRepository:  fairnessScoreRepository,
			FairnessService: fakeFairnessService{scores: map[uuid.UUID]float64{
				winnerBid.BidID: 100,
				loserBid.BidID:  50,
			}},
		}

		auctionRepository.EXPECT().Get(auction.AuctionID).Return(&auction, nil)
		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)
		advisoryLockRepository.EXPECT().TryAcquireSlotLock(gomock.Any(), asset.AssetID, date).Return(true, nil)
		auctionRepository.EXPECT().GetByTarget(gomock.Any(), asset.AssetID, date).Return(&auction, nil)
		bidRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]model.Bid{loserBid, winnerBid}, nil)

		wonBid := winnerBid
		wonBid.Status = model.BidStatus_Won
		bidRepository.EXPECT().Update(gomock.Any(), winnerBid.BidID, gomock.Any(), gomock.Any()).Return(&wonBid, nil)
		lostBid := loserBid
		lostBid.Status = model.BidStatus_Lost
		bidRepository.EXPECT().Update(gomock.Any(), loserBid.BidID, gomock.Any(), gomock.Any()).Return(&lostBid, nil)

		frozenScores := []model.FairnessScore{}
		fairnessScoreRepository.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(tx interface{}, fs model.FairnessScore) (*model.FairnessScore, error) {
				frozenScores = append(frozenScores, fs)
				return &fs, nil
			}).Times(2)

		sa := &model.SlotAllocation{SlotAllocationID: uuid.New(), AssetID: asset.AssetID, Date: date, TotalSlots: 10}
		slotAllocationRepository.EXPECT().GetOrCreate(gomock.Any(), asset.AssetID, date, int32(10)).Return(sa, nil)
		slotAllocationRepository.EXPECT().Increment(gomock.Any(), sa.SlotAllocationID, model.BidderClass_Internal, int32(1)).Return(nil)

		completed := auction
		completed.Status = model.AuctionStatus_Completed
		completed.WinningBidID = &winnerBid.BidID
		auctionRepository.EXPECT().Update(gomock.Any(), auction.AuctionID, gomock.Any(), gomock.Any()).Return(&completed, nil)

		out, err := handler.End(ctx, auction.AuctionID)
		require.NoError(t, err)

		require.NotNil(t, out.Winner)
		require.Equal(t, winnerBid.BidID, out.Winner.Bid.BidID)
		require.Equal(t, model.BidStatus_Won, out.Winner.Bid.Status)
		require.Len(t, out.Losers, 1)
		require.Equal(t, model.BidStatus_Lost, out.Losers[0].Bid.Status)

		require.Len(t, frozenScores, 2)
		for _, fs := range frozenScores {
			require.True(t, fs.Frozen)
			if fs.BidID == winnerBid.BidID {
				require.Equal(t, model.AllocationResult_Allocated, fs.Result)
			} else {
				require.Equal(t, model.AllocationResult_Rejected, fs.Result)
			}
		}
	})

	t.Run("zero bids cancels the auction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, err := util.NewTestDb()
		require.NoError(t, err)

		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		auctionRepository := mock_repository.NewMockAuctionRepository(ctrl)
		bidRepository := mock_repository.NewMockBidRepository(ctrl)
		advisoryLockRepository := mock_repository.NewMockAdvisoryLockRepository(ctrl)

		auction := model.Auction{
			AuctionID: uuid.New(),
			AssetID:   asset.AssetID,
			Date:      date,
			Status:    model.AuctionStatus_Active,
			ClosesAt:  date,
		}

		handler := auctionServiceHandler{
			Db:                     db,
			AssetRepository:        assetRepository,
			AuctionRepository:      auctionRepository,
			BidRepository:          bidRepository,
			AdvisoryLockRepository: advisoryLockRepository,
		}

		auctionRepository.EXPECT().Get(auction.AuctionID).Return(&auction, nil)
		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)
		advisoryLockRepository.EXPECT().TryAcquireSlotLock(gomock.Any(), asset.AssetID, date).Return(true, nil)
		auctionRepository.EXPECT().GetByTarget(gomock.Any(), asset.AssetID, date).Return(&auction, nil)
		bidRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]model.Bid{}, nil)

		cancelled := auction
		cancelled.Status = model.AuctionStatus_Cancelled
		auctionRepository.EXPECT().Update(gomock.Any(), auction.AuctionID, gomock.Any(), gomock.Any()).Return(&cancelled, nil)

		out, err := handler.End(ctx, auction.AuctionID)
		require.NoError(t, err)
		require.Nil(t, out.Winner)
		require.Empty(t, out.Losers)
		require.Equal(t, model.AuctionStatus_Cancelled, out.Auction.Status)
	})

	t.Run("resolving onto a fully allocated slot is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, err := util.NewTestDb()
		require.NoError(t, err)

		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		auctionRepository := mock_repository.NewMockAuctionRepository(ctrl)
		bidRepository := mock_repository.NewMockBidRepository(ctrl)
		slotAllocationRepository := mock_repository.NewMockSlotAllocationRepository(ctrl)
		advisoryLockRepository := mock_repository.NewMockAdvisoryLockRepository(ctrl)

		bid := model.Bid{
			BidID:       uuid.New(),
			BidderClass: model.BidderClass_Internal,
			Amount:      decimal.NewFromInt(8_000),
			Status:      model.BidStatus_Active,
			AssetID:     asset.AssetID,
			StartDate:   date,
		}
		auction := model.Auction{
			AuctionID: uuid.New(),
			AssetID:   asset.AssetID,
			Date:      date,
			Status:    model.AuctionStatus_Active,
			ClosesAt:  date,
		}

		handler := auctionServiceHandler{
			Db:                       db,
			AssetRepository:          assetRepository,
			AuctionRepository:        auctionRepository,
			BidRepository:            bidRepository,
			SlotAllocationRepository: slotAllocationRepository,
			AdvisoryLockRepository:   advisoryLockRepository,
		}

		auctionRepository.EXPECT().Get(auction.AuctionID).Return(&auction, nil)
		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)
		advisoryLockRepository.EXPECT().TryAcquireSlotLock(gomock.Any(), asset.AssetID, date).Return(true, nil)
		auctionRepository.EXPECT().GetByTarget(gomock.Any(), asset.AssetID, date).Return(&auction, nil)
		bidRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]model.Bid{bid}, nil)

		// counters already at capacity, e.g. filled by batch allocation
		slotAllocationRepository.EXPECT().GetOrCreate(gomock.Any(), asset.AssetID, date, int32(10)).Return(&model.SlotAllocation{
			SlotAllocationID:  uuid.New(),
			AssetID:           asset.AssetID,
			Date:              date,
			TotalSlots:        10,
			InternalAllocated: 6,
			ExternalAllocated: 4,
		}, nil)

		_, err = handler.End(ctx, auction.AuctionID)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("ending a completed auction is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, err := util.NewTestDb()
		require.NoError(t, err)

		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		auctionRepository := mock_repository.NewMockAuctionRepository(ctrl)
		advisoryLockRepository := mock_repository.NewMockAdvisoryLockRepository(ctrl)

		auction := model.Auction{
			AuctionID: uuid.New(),
			AssetID:   asset.AssetID,
			Date:      date,
			Status:    model.AuctionStatus_Completed,
			ClosesAt:  date,
		}

		handler := auctionServiceHandler{
			Db:                     db,
			AssetRepository:        assetRepository,
			AuctionRepository:      auctionRepository,
			AdvisoryLockRepository: advisoryLockRepository,
		}

		auctionRepository.EXPECT().Get(auction.AuctionID).Return(&auction, nil)
		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)
		advisoryLockRepository.EXPECT().TryAcquireSlotLock(gomock.Any(), asset.AssetID, date).Return(true, nil)
		auctionRepository.EXPECT().GetByTarget(gomock.Any(), asset.AssetID, date).Return(&auction, nil)

		_, err = handler.End(ctx, auction.AuctionID)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrAuctionClosed))
	})
}

func Test_StartAuction(t *testing.T) {
	ctx := context.Background()
	date := util.NewDate(2026, 9, 1)

	asset := model.Asset{
		AssetID:     uuid.New(),
		Level:       model.AssetLevel_Primary,
		TotalSlots:  10,
		ValuePerDay: decimal.NewFromInt(10_000),
	}

	t.Run("starting on a fully allocated slot is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, err := util.NewTestDb()
		require.NoError(t, err)

		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		auctionRepository := mock_repository.NewMockAuctionRepository(ctrl)
		slotAllocationRepository := mock_repository.NewMockSlotAllocationRepository(ctrl)
		advisoryLockRepository := mock_repository.NewMockAdvisoryLockRepository(ctrl)

		handler := auctionServiceHandler{
			Db:                       db,
			AssetRepository:          assetRepository,
			AuctionRepository:        auctionRepository,
			SlotAllocationRepository: slotAllocationRepository,
			AdvisoryLockRepository:   advisoryLockRepository,
		}

		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)
		advisoryLockRepository.EXPECT().TryAcquireSlotLock(gomock.Any(), asset.AssetID, date).Return(true, nil)
		auctionRepository.EXPECT().GetByTarget(gomock.Any(), asset.AssetID, date).Return(nil, nil)
		slotAllocationRepository.EXPECT().GetOrCreate(gomock.Any(), asset.AssetID, date, int32(10)).Return(&model.SlotAllocation{
			SlotAllocationID:  uuid.New(),
			AssetID:           asset.AssetID,
			Date:              date,
			TotalSlots:        10,
			InternalAllocated: 6,
			ExternalAllocated: 4,
		}, nil)

		_, err = handler.Start(ctx, StartAuctionInput{AssetID: asset.AssetID, Date: date})
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("open slot starts an active auction with a deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, err := util.NewTestDb()
		require.NoError(t, err)

		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		auctionRepository := mock_repository.NewMockAuctionRepository(ctrl)
		slotAllocationRepository := mock_repository.NewMockSlotAllocationRepository(ctrl)
		advisoryLockRepository := mock_repository.NewMockAdvisoryLockRepository(ctrl)

		handler := auctionServiceHandler{
			Db:                       db,
			AssetRepository:          assetRepository,
			AuctionRepository:        auctionRepository,
			SlotAllocationRepository: slotAllocationRepository,
			AdvisoryLockRepository:   advisoryLockRepository,
		}

		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)
		advisoryLockRepository.EXPECT().TryAcquireSlotLock(gomock.Any(), asset.AssetID, date).Return(true, nil)
		auctionRepository.EXPECT().GetByTarget(gomock.Any(), asset.AssetID, date).Return(nil, nil)
		slotAllocationRepository.EXPECT().GetOrCreate(gomock.Any(), asset.AssetID, date, int32(10)).Return(&model.SlotAllocation{
			SlotAllocationID: uuid.New(),
			AssetID:          asset.AssetID,
			Date:             date,
			TotalSlots:       10,
		}, nil)
		auctionRepository.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
			func(tx interface{}, a model.Auction) (*model.Auction, error) {
				require.Equal(t, model.AuctionStatus_Active, a.Status)
				require.Equal(t, date, a.ClosesAt)
				a.AuctionID = uuid.New()
				return &a, nil
			})

		out, err := handler.Start(ctx, StartAuctionInput{AssetID: asset.AssetID, Date: date})
		require.NoError(t, err)
		require.Equal(t, model.AuctionStatus_Active, out.Status)
	})
}

func Test_acquireTargetLock(t *testing.T) {
	t.Run("gives up after bounded retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		advisoryLockRepository := mock_repository.NewMockAdvisoryLockRepository(ctrl)
		handler := auctionServiceHandler{AdvisoryLockRepository: advisoryLockRepository}

		assetID := uuid.New()
		date := util.NewDate(2026, 9, 1)
		advisoryLockRepository.EXPECT().TryAcquireSlotLock(nil, assetID, date).Return(false, nil).Times(lockAttempts)

		err := handler.acquireTargetLock(nil, assetID, date)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrLockContention))
	})

	t.Run("succeeds on a later attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		advisoryLockRepository := mock_repository.NewMockAdvisoryLockRepository(ctrl)
		handler := auctionServiceHandler{AdvisoryLockRepository: advisoryLockRepository}

		assetID := uuid.New()
		date := util.NewDate(2026, 9, 1)
		gomock.InOrder(
			advisoryLockRepository.EXPECT().TryAcquireSlotLock(nil, assetID, date).Return(false, nil),
			advisoryLockRepository.EXPECT().TryAcquireSlotLock(nil, assetID, date).Return(true, nil),
		)

		require.NoError(t, handler.acquireTargetLock(nil, assetID, date))
	})
}

func Test_SuggestAlternatives(t *testing.T) {
	ctx := context.Background()

	asset := model.Asset{
		AssetID:     uuid.New(),
		Level:       model.AssetLevel_Primary,
		TotalSlots:  10,
		ValuePerDay: decimal.NewFromInt(10_000),
	}

	newFixture := func(t *testing.T) (auctionServiceHandler, *mock_repository.MockBidRepository, *mock_repository.MockAssetRepository, *mock_repository.MockAuctionRepository, *mock_repository.MockSlotAllocationRepository) {
		ctrl := gomock.NewController(t)

		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		auctionRepository := mock_repository.NewMockAuctionRepository(ctrl)
		bidRepository := mock_repository.NewMockBidRepository(ctrl)
		slotAllocationRepository := mock_repository.NewMockSlotAllocationRepository(ctrl)
		assetConfigRepository := mock_repository.NewMockAssetConfigRepository(ctrl)
		assetConfigRepository.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()

		handler := auctionServiceHandler{
			AssetRepository:          assetRepository,
			AuctionRepository:        auctionRepository,
			BidRepository:            bidRepository,
			SlotAllocationRepository: slotAllocationRepository,
			AssetConfigService:       l1_service.NewAssetConfigService(assetConfigRepository),
		}

		return handler, bidRepository, assetRepository, auctionRepository, slotAllocationRepository
	}

	t.Run("losing bid gets conflict reason and open future slots", func(t *testing.T) {
		handler, bidRepository, assetRepository, auctionRepository, slotAllocationRepository := newFixture(t)

		requested := util.StartOfDay(time.Now().UTC()).AddDate(0, 0, 5)
		bid := model.Bid{
			BidID:       uuid.New(),
			BidderClass: model.BidderClass_External,
			Status:      model.BidStatus_Lost,
			AssetID:     asset.AssetID,
			StartDate:   requested,
		}
		otherWinner := uuid.New()

		bidRepository.EXPECT().Get(bid.BidID).Return(&bid, nil)
		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)
		auctionRepository.EXPECT().GetByTarget(nil, asset.AssetID, requested).Return(&model.Auction{
			AuctionID:    uuid.New(),
			AssetID:      asset.AssetID,
			Date:         requested,
			Status:       model.AuctionStatus_Completed,
			WinningBidID: &otherWinner,
		}, nil)
		slotAllocationRepository.EXPECT().List(asset.AssetID, gomock.Any(), gomock.Any()).Return([]model.SlotAllocation{}, nil)
		assetRepository.EXPECT().List(gomock.Any()).Return([]model.Asset{}, nil)

		set, err := handler.SuggestAlternatives(ctx, bid.BidID)
		require.NoError(t, err)
		require.Equal(t, domain.RejectionReason_Conflict, set.Reason)
		require.NotEmpty(t, set.Hint)
		require.NotEmpty(t, set.Alternatives)
		require.LessOrEqual(t, len(set.Alternatives), 10)

		for _, alt := range set.Alternatives {
			require.False(t, alt.Date.Equal(requested))
			require.Greater(t, alt.SlotsRemaining, 0)
		}
		// near-term dates come out high priority
		require.Equal(t, domain.SuggestionPriority_High, set.Alternatives[0].Priority)
	})

	t.Run("monetization bid against an exhausted quota reports quota_exceeded", func(t *testing.T) {
		handler, bidRepository, assetRepository, auctionRepository, slotAllocationRepository := newFixture(t)

		requested := util.StartOfDay(time.Now().UTC()).AddDate(0, 0, 3)
		bid := model.Bid{
			BidID:       uuid.New(),
			BidderClass: model.BidderClass_Monetization,
			Status:      model.BidStatus_Lost,
			AssetID:     asset.AssetID,
			StartDate:   requested,
		}

		bidRepository.EXPECT().Get(bid.BidID).Return(&bid, nil)
		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)
		auctionRepository.EXPECT().GetByTarget(nil, asset.AssetID, requested).Return(nil, nil)
		// quota of 2 fully consumed
		slotAllocationRepository.EXPECT().Get(nil, asset.AssetID, requested).Return(&model.SlotAllocation{
			AssetID:               asset.AssetID,
			Date:                  requested,
			TotalSlots:            10,
			ExternalAllocated:     2,
			MonetizationAllocated: 2,
		}, nil)
		slotAllocationRepository.EXPECT().List(asset.AssetID, gomock.Any(), gomock.Any()).Return([]model.SlotAllocation{}, nil)
		assetRepository.EXPECT().List(gomock.Any()).Return([]model.Asset{}, nil)

		set, err := handler.SuggestAlternatives(ctx, bid.BidID)
		require.NoError(t, err)
		require.Equal(t, domain.RejectionReason_QuotaExceeded, set.Reason)
	})

	t.Run("equivalent assets with capacity are offered", func(t *testing.T) {
		handler, bidRepository, assetRepository, auctionRepository, slotAllocationRepository := newFixture(t)

		requested := util.StartOfDay(time.Now().UTC()).AddDate(0, 0, 40)
		bid := model.Bid{
			BidID:       uuid.New(),
			BidderClass: model.BidderClass_External,
			Status:      model.BidStatus_Lost,
			AssetID:     asset.AssetID,
			StartDate:   requested,
		}
		peer := model.Asset{
			AssetID:    uuid.New(),
			Level:      model.AssetLevel_Primary,
			TotalSlots: 8,
		}
		fullPeer := model.Asset{
			AssetID:    uuid.New(),
			Level:      model.AssetLevel_Primary,
			TotalSlots: 4,
		}

		bidRepository.EXPECT().Get(bid.BidID).Return(&bid, nil)
		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)
		auctionRepository.EXPECT().GetByTarget(nil, asset.AssetID, requested).Return(nil, nil)
		slotAllocationRepository.EXPECT().List(asset.AssetID, gomock.Any(), gomock.Any()).Return(fullyBooked(asset, 30), nil)
		assetRepository.EXPECT().List(gomock.Any()).Return([]model.Asset{asset, peer, fullPeer}, nil)
		slotAllocationRepository.EXPECT().Get(nil, peer.AssetID, requested).Return(nil, nil)
		slotAllocationRepository.EXPECT().Get(nil, fullPeer.AssetID, requested).Return(&model.SlotAllocation{
			AssetID:           fullPeer.AssetID,
			Date:              requested,
			TotalSlots:        4,
			InternalAllocated: 2,
			ExternalAllocated: 2,
		}, nil)

		set, err := handler.SuggestAlternatives(ctx, bid.BidID)
		require.NoError(t, err)
		require.Equal(t, domain.RejectionReason_Fairness, set.Reason)
		require.Len(t, set.Alternatives, 1)
		require.Equal(t, peer.AssetID, set.Alternatives[0].AssetID)
		require.Equal(t, domain.SuggestionPriority_Low, set.Alternatives[0].Priority)
	})
}

// fullyBooked builds allocation rows with no remaining capacity for each of
// the next n days.
func fullyBooked(asset model.Asset, n int) []model.SlotAllocation {
	today := util.StartOfDay(time.Now().UTC())
	out := []model.SlotAllocation{}
	for i := 0; i <= n; i++ {
		out = append(out, model.SlotAllocation{
			AssetID:           asset.AssetID,
			Date:              today.AddDate(0, 0, i),
			TotalSlots:        asset.TotalSlots,
			InternalAllocated: asset.TotalSlots,
		})
	}
	return out
}
