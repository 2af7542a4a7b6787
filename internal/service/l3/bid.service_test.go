package l3_service

import (
	"context"
	"testing"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/domain"
	mock_repository "fairslot/internal/repository/mocks"
	l1_service "fairslot/internal/service/l1"
	"fairslot/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_SubmitBid(t *testing.T) {
	ctx := context.Background()

	asset := model.Asset{
		AssetID:     uuid.New(),
		Level:       model.AssetLevel_Primary,
		TotalSlots:  10,
		ValuePerDay: decimal.NewFromInt(10_000),
		Importance:  8,
	}
	startDate := util.StartOfDay(time.Now().UTC()).AddDate(0, 0, 5)

	newInput := func(amount int64) SubmitBidInput {
		return SubmitBidInput{
			CampaignID:    uuid.New(),
			UserAccountID: uuid.New(),
			Lob:           "pharmacy",
			BidderClass:   model.BidderClass_Internal,
			AssetID:       asset.AssetID,
			Amount:        decimal.NewFromInt(amount),
			StartDate:     startDate,
			EndDate:       startDate,
		}
	}

	newFixture := func(t *testing.T) (bidServiceHandler, *mock_repository.MockBidRepository, *mock_repository.MockAssetRepository, *mock_repository.MockAuctionRepository, *mock_repository.MockAdvisoryLockRepository) {
		ctrl := gomock.NewController(t)
		db, err := util.NewTestDb()
		require.NoError(t, err)

		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		bidRepository := mock_repository.NewMockBidRepository(ctrl)
		auctionRepository := mock_repository.NewMockAuctionRepository(ctrl)
		advisoryLockRepository := mock_repository.NewMockAdvisoryLockRepository(ctrl)
		bidCapRepository := mock_repository.NewMockBidCapRepository(ctrl)
		bidCapRepository.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		handler := bidServiceHandler{
			Db:                     db,
			AssetRepository:        assetRepository,
			BidRepository:          bidRepository,
			AuctionRepository:      auctionRepository,
			AdvisoryLockRepository: advisoryLockRepository,
			BidValidatorService: l1_service.NewBidValidatorService(
				bidRepository,
				bidCapRepository,
				domain.DefaultEngineConfig().Validator,
			),
			FairnessService: fakeFairnessService{scores: map[uuid.UUID]float64{}},
		}

		return handler, bidRepository, assetRepository, auctionRepository, advisoryLockRepository
	}

	t.Run("first submission inserts a new active bid", func(t *testing.T) {
		handler, bidRepository, assetRepository, auctionRepository, advisoryLockRepository := newFixture(t)
		in := newInput(5_000)

		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)
		advisoryLockRepository.EXPECT().TryAcquireSlotLock(gomock.Any(), asset.AssetID, startDate).Return(true, nil)
		auctionRepository.EXPECT().GetByTarget(gomock.Any(), asset.AssetID, startDate).Return(nil, nil)
		bidRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]model.Bid{}, nil).AnyTimes()

		bidRepository.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
			func(tx interface{}, b model.Bid) (*model.Bid, error) {
				require.Equal(t, model.BidStatus_Active, b.Status)
				require.True(t, b.Amount.Equal(decimal.NewFromInt(5_000)))
				b.BidID = uuid.New()
				return &b, nil
			})

		out, err := handler.Submit(ctx, in)
		require.NoError(t, err)
		require.True(t, out.Validation.Valid)
		require.False(t, out.Resubmitted)
		require.NotNil(t, out.Bid)
		require.NotNil(t, out.Score)
	})

	t.Run("resubmission updates in place and keeps created_at", func(t *testing.T) {
		handler, bidRepository, assetRepository, auctionRepository, advisoryLockRepository := newFixture(t)
		in := newInput(6_000)

		originalCreatedAt := time.Now().UTC().Add(-48 * time.Hour)
		existing := model.Bid{
			BidID:         uuid.New(),
			CampaignID:    in.CampaignID,
			UserAccountID: in.UserAccountID,
			Lob:           in.Lob,
			BidderClass:   in.BidderClass,
			Amount:        decimal.NewFromInt(4_000),
			Status:        model.BidStatus_Active,
			AssetID:       in.AssetID,
			StartDate:     startDate,
			EndDate:       startDate,
			CreatedAt:     originalCreatedAt,
			UpdatedAt:     originalCreatedAt,
		}

		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)
		advisoryLockRepository.EXPECT().TryAcquireSlotLock(gomock.Any(), asset.AssetID, startDate).Return(true, nil)
		auctionRepository.EXPECT().GetByTarget(gomock.Any(), asset.AssetID, startDate).Return(nil, nil)

		gomock.InOrder(
			// existing-bid lookup finds the prior submission
			bidRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]model.Bid{existing}, nil),
			// lob budget
			bidRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]model.Bid{existing}, nil),
			// user limits
			bidRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]model.Bid{existing}, nil),
			// anti bidding-war window; the prior update is outside it
			bidRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]model.Bid{}, nil),
		)

		bidRepository.EXPECT().Update(gomock.Any(), existing.BidID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(tx interface{}, bidID uuid.UUID, b model.Bid, columns postgres.ColumnList) (*model.Bid, error) {
				require.Equal(t, originalCreatedAt, b.CreatedAt)
				require.True(t, b.Amount.Equal(decimal.NewFromInt(6_000)))
				return &b, nil
			})

		out, err := handler.Submit(ctx, in)
		require.NoError(t, err)
		require.True(t, out.Validation.Valid)
		require.True(t, out.Resubmitted)
		require.Equal(t, originalCreatedAt, out.Bid.CreatedAt)
	})

	t.Run("invalid bid is not persisted", func(t *testing.T) {
		handler, bidRepository, assetRepository, auctionRepository, advisoryLockRepository := newFixture(t)
		in := newInput(50) // under the global minimum

		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)
		advisoryLockRepository.EXPECT().TryAcquireSlotLock(gomock.Any(), asset.AssetID, startDate).Return(true, nil)
		auctionRepository.EXPECT().GetByTarget(gomock.Any(), asset.AssetID, startDate).Return(nil, nil)
		bidRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]model.Bid{}, nil).AnyTimes()

		out, err := handler.Submit(ctx, in)
		require.NoError(t, err)
		require.False(t, out.Validation.Valid)
		require.Nil(t, out.Bid)
	})

	t.Run("submission against a closed auction is rejected", func(t *testing.T) {
		handler, _, assetRepository, auctionRepository, advisoryLockRepository := newFixture(t)
		in := newInput(5_000)

		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)
		advisoryLockRepository.EXPECT().TryAcquireSlotLock(gomock.Any(), asset.AssetID, startDate).Return(true, nil)
		auctionRepository.EXPECT().GetByTarget(gomock.Any(), asset.AssetID, startDate).Return(&model.Auction{
			AuctionID: uuid.New(),
			AssetID:   asset.AssetID,
			Date:      startDate,
			Status:    model.AuctionStatus_Completed,
		}, nil)

		_, err := handler.Submit(ctx, in)
		require.ErrorIs(t, err, domain.ErrAuctionClosed)
	})

	t.Run("end date before start date is rejected up front", func(t *testing.T) {
		handler, _, assetRepository, _, _ := newFixture(t)
		in := newInput(5_000)
		in.EndDate = in.StartDate.AddDate(0, 0, -2)

		assetRepository.EXPECT().Get(asset.AssetID).Return(&asset, nil)

		_, err := handler.Submit(ctx, in)
		require.Error(t, err)
	})
}

func Test_Withdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("active bid is cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bidRepository := mock_repository.NewMockBidRepository(ctrl)
		handler := bidServiceHandler{BidRepository: bidRepository}

		userID := uuid.New()
		bid := model.Bid{
			BidID:         uuid.New(),
			UserAccountID: userID,
			Status:        model.BidStatus_Active,
		}

		bidRepository.EXPECT().Get(bid.BidID).Return(&bid, nil)
		cancelled := bid
		cancelled.Status = model.BidStatus_Cancelled
		bidRepository.EXPECT().Update(nil, bid.BidID, gomock.Any(), gomock.Any()).Return(&cancelled, nil)

		out, err := handler.Withdraw(ctx, bid.BidID, userID)
		require.NoError(t, err)
		require.Equal(t, model.BidStatus_Cancelled, out.Status)
	})

	t.Run("withdrawing someone else's bid looks like not-found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bidRepository := mock_repository.NewMockBidRepository(ctrl)
		handler := bidServiceHandler{BidRepository: bidRepository}

		bid := model.Bid{
			BidID:         uuid.New(),
			UserAccountID: uuid.New(),
			Status:        model.BidStatus_Active,
		}

		bidRepository.EXPECT().Get(bid.BidID).Return(&bid, nil)

		_, err := handler.Withdraw(ctx, bid.BidID, uuid.New())
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("settled bid cannot be withdrawn", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		bidRepository := mock_repository.NewMockBidRepository(ctrl)
		handler := bidServiceHandler{BidRepository: bidRepository}

		userID := uuid.New()
		bid := model.Bid{
			BidID:         uuid.New(),
			UserAccountID: userID,
			Status:        model.BidStatus_Won,
		}

		bidRepository.EXPECT().Get(bid.BidID).Return(&bid, nil)

		_, err := handler.Withdraw(ctx, bid.BidID, userID)
		require.ErrorIs(t, err, domain.ErrConflict)
	})
}
