package l3_service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/domain"
	mock_repository "fairslot/internal/repository/mocks"
	l1_service "fairslot/internal/service/l1"
	"fairslot/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeFairnessService returns pre-assigned scores so allocation tests can
// control ranking without standing up the whole scoring stack.
type fakeFairnessService struct {
	scores map[uuid.UUID]float64
}

func (f fakeFairnessService) Compute(ctx context.Context, tx *sql.Tx, bid model.Bid, asset model.Asset) (*model.FairnessScore, error) {
	return &model.FairnessScore{
		BidID:      bid.BidID,
		AssetID:    asset.AssetID,
		FinalScore: f.scores[bid.BidID],
		Result:     model.AllocationResult_Pending,
	}, nil
}

func (f fakeFairnessService) Score(ctx context.Context, tx *sql.Tx, bid model.Bid, asset model.Asset) (*model.FairnessScore, error) {
	return f.Compute(ctx, tx, bid, asset)
}

func newAllocatorFixture(t *testing.T, scores map[uuid.UUID]float64) (slotAllocatorServiceHandler, *mock_repository.MockSlotAllocationRepository) {
	ctrl := gomock.NewController(t)

	assetConfigRepository := mock_repository.NewMockAssetConfigRepository(ctrl)
	assetConfigRepository.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()

	slotAllocationRepository := mock_repository.NewMockSlotAllocationRepository(ctrl)

	handler := slotAllocatorServiceHandler{
		AssetConfigService:       l1_service.NewAssetConfigService(assetConfigRepository),
		FairnessService:          fakeFairnessService{scores: scores},
		SlotAllocationRepository: slotAllocationRepository,
	}

	return handler, slotAllocationRepository
}

func newCandidate(class model.BidderClass, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:       uuid.New(),
		BidderClass: class,
		Amount:      decimal.NewFromInt(5_000),
		Status:      model.BidStatus_Active,
		StartDate:   util.NewDate(2026, 9, 1),
		CreatedAt:   createdAt,
	}
}

func Test_Allocate(t *testing.T) {
	ctx := context.Background()
	date := util.NewDate(2026, 9, 1)
	asset := model.Asset{
		AssetID:     uuid.New(),
		Level:       model.AssetLevel_Primary,
		TotalSlots:  10,
		ValuePerDay: decimal.NewFromInt(10_000),
		Importance:  8,
	}

	t.Run("quota split holds under internal oversubscription", func(t *testing.T) {
		// 8 internal and 5 external candidates for a 10-slot 60/40 asset:
		// exactly 6 internal and 4 external slots get filled
		scores := map[uuid.UUID]float64{}
		candidates := []model.Bid{}
		for i := 0; i < 8; i++ {
			b := newCandidate(model.BidderClass_Internal, time.Date(2026, 8, 20, i, 0, 0, 0, time.UTC))
			scores[b.BidID] = float64(100 - i)
			candidates = append(candidates, b)
		}
		for i := 0; i < 5; i++ {
			b := newCandidate(model.BidderClass_External, time.Date(2026, 8, 21, i, 0, 0, 0, time.UTC))
			scores[b.BidID] = float64(50 - i)
			candidates = append(candidates, b)
		}

		handler, slotAllocationRepository := newAllocatorFixture(t, scores)

		sa := &model.SlotAllocation{
			SlotAllocationID: uuid.New(),
			AssetID:          asset.AssetID,
			Date:             date,
			TotalSlots:       10,
		}
		slotAllocationRepository.EXPECT().GetOrCreate(nil, asset.AssetID, date, int32(10)).Return(sa, nil)
		slotAllocationRepository.EXPECT().Increment(nil, sa.SlotAllocationID, model.BidderClass_Internal, int32(1)).Times(6)
		slotAllocationRepository.EXPECT().Increment(nil, sa.SlotAllocationID, model.BidderClass_External, int32(1)).Times(4)
		slotAllocationRepository.EXPECT().Get(nil, asset.AssetID, date).Return(&model.SlotAllocation{
			SlotAllocationID:  sa.SlotAllocationID,
			AssetID:           asset.AssetID,
			Date:              date,
			TotalSlots:        10,
			InternalAllocated: 6,
			ExternalAllocated: 4,
		}, nil)

		out, err := handler.Allocate(ctx, nil, AllocateInput{
			Asset:      asset,
			Date:       date,
			Candidates: candidates,
		})
		require.NoError(t, err)

		require.Len(t, out.Allocated, 10)
		require.Len(t, out.Unallocated, 3)

		internal := 0
		for _, sb := range out.Allocated {
			if sb.Bid.BidderClass == model.BidderClass_Internal {
				internal++
			}
		}
		require.Equal(t, 6, internal)

		expectedBreakdown := domain.AllocationBreakdown{
			AssetID:           asset.AssetID.String(),
			Date:              "2026-09-01",
			TotalSlots:        10,
			InternalAllocated: 6,
			ExternalAllocated: 4,
			InternalPct:       60,
			ExternalPct:       40,
		}
		require.Equal(t, "", cmp.Diff(expectedBreakdown, out.Breakdown))
	})

	t.Run("monetization cannot exceed its quota even with open slots", func(t *testing.T) {
		// monetization quota on a 10-slot primary asset is 2; the third
		// monetization bid loses its slot to a lower-scored external bid
		scores := map[uuid.UUID]float64{}
		candidates := []model.Bid{}
		for i := 0; i < 3; i++ {
			b := newCandidate(model.BidderClass_Monetization, time.Date(2026, 8, 20, i, 0, 0, 0, time.UTC))
			scores[b.BidID] = float64(100 - i)
			candidates = append(candidates, b)
		}
		external := newCandidate(model.BidderClass_External, time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC))
		scores[external.BidID] = 10
		candidates = append(candidates, external)

		handler, slotAllocationRepository := newAllocatorFixture(t, scores)

		sa := &model.SlotAllocation{
			SlotAllocationID: uuid.New(),
			AssetID:          asset.AssetID,
			Date:             date,
			TotalSlots:       10,
		}
		slotAllocationRepository.EXPECT().GetOrCreate(nil, asset.AssetID, date, int32(10)).Return(sa, nil)
		slotAllocationRepository.EXPECT().Increment(nil, sa.SlotAllocationID, model.BidderClass_Monetization, int32(1)).Times(2)
		slotAllocationRepository.EXPECT().Increment(nil, sa.SlotAllocationID, model.BidderClass_External, int32(1)).Times(1)
		slotAllocationRepository.EXPECT().Get(nil, asset.AssetID, date).Return(&model.SlotAllocation{
			SlotAllocationID:      sa.SlotAllocationID,
			AssetID:               asset.AssetID,
			Date:                  date,
			TotalSlots:            10,
			ExternalAllocated:     3,
			MonetizationAllocated: 2,
		}, nil)

		out, err := handler.Allocate(ctx, nil, AllocateInput{
			Asset:      asset,
			Date:       date,
			Candidates: candidates,
		})
		require.NoError(t, err)

		monetization := 0
		for _, sb := range out.Allocated {
			if sb.Bid.BidderClass == model.BidderClass_Monetization {
				monetization++
			}
		}
		require.Equal(t, 2, monetization)
		require.Len(t, out.Unallocated, 1)
		require.Equal(t, model.BidderClass_Monetization, out.Unallocated[0].Bid.BidderClass)
	})

	t.Run("zero monetization quota shuts monetization out entirely", func(t *testing.T) {
		// secondary asset with 2 slots: monetization limit 0.15 floors to a
		// quota of 0, so a 5,000 monetization bid loses to a 3,000 internal
		// bid even though an external slot stays open
		smallAsset := model.Asset{
			AssetID:     uuid.New(),
			Level:       model.AssetLevel_Secondary,
			TotalSlots:  2,
			ValuePerDay: decimal.NewFromInt(4_000),
			Importance:  5,
		}
		monetization := model.Bid{
			BidID:       uuid.New(),
			BidderClass: model.BidderClass_Monetization,
			Amount:      decimal.NewFromInt(5_000),
			Status:      model.BidStatus_Active,
			StartDate:   date,
			CreatedAt:   time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		}
		internalBid := model.Bid{
			BidID:       uuid.New(),
			BidderClass: model.BidderClass_Internal,
			Amount:      decimal.NewFromInt(3_000),
			Status:      model.BidStatus_Active,
			StartDate:   date,
			CreatedAt:   time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		}

		handler, slotAllocationRepository := newAllocatorFixture(t, map[uuid.UUID]float64{
			monetization.BidID: 90,
			internalBid.BidID:  40,
		})

		sa := &model.SlotAllocation{
			SlotAllocationID: uuid.New(),
			AssetID:          smallAsset.AssetID,
			Date:             date,
			TotalSlots:       2,
		}
		slotAllocationRepository.EXPECT().GetOrCreate(nil, smallAsset.AssetID, date, int32(2)).Return(sa, nil)
		slotAllocationRepository.EXPECT().Increment(nil, sa.SlotAllocationID, model.BidderClass_Internal, int32(1)).Times(1)
		slotAllocationRepository.EXPECT().Get(nil, smallAsset.AssetID, date).Return(&model.SlotAllocation{
			SlotAllocationID:  sa.SlotAllocationID,
			AssetID:           smallAsset.AssetID,
			Date:              date,
			TotalSlots:        2,
			InternalAllocated: 1,
		}, nil)

		out, err := handler.Allocate(ctx, nil, AllocateInput{
			Asset:      smallAsset,
			Date:       date,
			Candidates: []model.Bid{monetization, internalBid},
		})
		require.NoError(t, err)

		require.Len(t, out.Allocated, 1)
		require.Equal(t, internalBid.BidID, out.Allocated[0].Bid.BidID)
		require.Len(t, out.Unallocated, 1)
		require.Equal(t, monetization.BidID, out.Unallocated[0].Bid.BidID)
	})

	t.Run("already-consumed counters shrink the remaining quota", func(t *testing.T) {
		scores := map[uuid.UUID]float64{}
		candidates := []model.Bid{}
		for i := 0; i < 3; i++ {
			b := newCandidate(model.BidderClass_Internal, time.Date(2026, 8, 20, i, 0, 0, 0, time.UTC))
			scores[b.BidID] = float64(100 - i)
			candidates = append(candidates, b)
		}

		handler, slotAllocationRepository := newAllocatorFixture(t, scores)

		sa := &model.SlotAllocation{
			SlotAllocationID:  uuid.New(),
			AssetID:           asset.AssetID,
			Date:              date,
			TotalSlots:        10,
			InternalAllocated: 5,
		}
		slotAllocationRepository.EXPECT().GetOrCreate(nil, asset.AssetID, date, int32(10)).Return(sa, nil)
		slotAllocationRepository.EXPECT().Increment(nil, sa.SlotAllocationID, model.BidderClass_Internal, int32(1)).Times(1)
		slotAllocationRepository.EXPECT().Get(nil, asset.AssetID, date).Return(sa, nil)

		out, err := handler.Allocate(ctx, nil, AllocateInput{
			Asset:      asset,
			Date:       date,
			Candidates: candidates,
		})
		require.NoError(t, err)
		require.Len(t, out.Allocated, 1)
		require.Len(t, out.Unallocated, 2)
	})
}

func Test_RankScoredBids(t *testing.T) {
	t.Run("orders by score, then amount, then submission time", func(t *testing.T) {
		early := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
		late := time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC)

		lowScore := ScoredBid{
			Bid:   model.Bid{BidID: uuid.New(), Amount: decimal.NewFromInt(9_000), CreatedAt: early},
			Score: &model.FairnessScore{FinalScore: 10},
		}
		highAmount := ScoredBid{
			Bid:   model.Bid{BidID: uuid.New(), Amount: decimal.NewFromInt(8_000), CreatedAt: late},
			Score: &model.FairnessScore{FinalScore: 50},
		}
		lowAmount := ScoredBid{
			Bid:   model.Bid{BidID: uuid.New(), Amount: decimal.NewFromInt(5_000), CreatedAt: early},
			Score: &model.FairnessScore{FinalScore: 50},
		}
		tieBreakByTime := ScoredBid{
			Bid:   model.Bid{BidID: uuid.New(), Amount: decimal.NewFromInt(5_000), CreatedAt: late},
			Score: &model.FairnessScore{FinalScore: 50},
		}

		bids := []ScoredBid{tieBreakByTime, lowScore, lowAmount, highAmount}
		RankScoredBids(bids)

		require.Equal(t, highAmount.Bid.BidID, bids[0].Bid.BidID)
		require.Equal(t, lowAmount.Bid.BidID, bids[1].Bid.BidID)
		require.Equal(t, tieBreakByTime.Bid.BidID, bids[2].Bid.BidID)
		require.Equal(t, lowScore.Bid.BidID, bids[3].Bid.BidID)
	})
}
