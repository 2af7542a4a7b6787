package api

import (
	"fairslot/internal/domain"

	"github.com/gin-gonic/gin"
)

type BidScoreResponse struct {
	BidID                  string  `json:"bidId"`
	BaseScore              float64 `json:"baseScore"`
	TimeFairness           float64 `json:"timeFairness"`
	StrategicWeight        float64 `json:"strategicWeight"`
	NormalizedRoi          float64 `json:"normalizedRoi"`
	CappedBidAmount        float64 `json:"cappedBidAmount"`
	BookingHistoryFactor   float64 `json:"bookingHistoryFactor"`
	SlotAvailabilityFactor float64 `json:"slotAvailabilityFactor"`
	TimeRestrictionFactor  float64 `json:"timeRestrictionFactor"`
	FinalScore             float64 `json:"finalScore"`
	Result                 string  `json:"result"`
	Frozen                 bool    `json:"frozen"`
}

// bidScore returns the latest fairness score for a bid, with the factor
// breakdown so bidders can see what moved it.
func (m ApiHandler) bidScore(c *gin.Context) {
	bidID, err := parseUuid(c.Param("id"), "id")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	score, err := m.FairnessScoreRepository.GetByBid(bidID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if score == nil {
		returnErrorJson(domain.ErrNotFound, c)
		return
	}

	c.JSON(200, BidScoreResponse{
		BidID:                  score.BidID.String(),
		BaseScore:              score.BaseScore,
		TimeFairness:           score.TimeFairness,
		StrategicWeight:        score.StrategicWeight,
		NormalizedRoi:          score.NormalizedRoi,
		CappedBidAmount:        score.CappedBidAmount,
		BookingHistoryFactor:   score.BookingHistoryFactor,
		SlotAvailabilityFactor: score.SlotAvailabilityFactor,
		TimeRestrictionFactor:  score.TimeRestrictionFactor,
		FinalScore:             score.FinalScore,
		Result:                 string(score.Result),
		Frozen:                 score.Frozen,
	})
}
