package api

import (
	"fmt"
	"time"

	l3_service "fairslot/internal/service/l3"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StartAuctionRequest struct {
	AssetID  string `json:"assetId"`
	Date     string `json:"date"`
	ClosesAt string `json:"closesAt"`
}

type StartAuctionResponse struct {
	AuctionID string `json:"auctionId"`
	AssetID   string `json:"assetId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	ClosesAt  string `json:"closesAt"`
}

func (m ApiHandler) startAuction(c *gin.Context) {
	var requestBody StartAuctionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	assetID, err := parseUuid(requestBody.AssetID, "assetId")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	date, err := time.Parse("2006-01-02", requestBody.Date)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid date: %w", err), c, 400)
		return
	}
	var closesAt time.Time
	if requestBody.ClosesAt != "" {
		closesAt, err = time.Parse(time.RFC3339, requestBody.ClosesAt)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid closesAt: %w", err), c, 400)
			return
		}
	}

	auction, err := m.AuctionService.Start(c.Request.Context(), l3_service.StartAuctionInput{
		AssetID:  assetID,
		Date:     date,
		ClosesAt: closesAt,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, StartAuctionResponse{
		AuctionID: auction.AuctionID.String(),
		AssetID:   auction.AssetID.String(),
		Date:      auction.Date.Format("2006-01-02"),
		Status:    auction.Status.String(),
		ClosesAt:  auction.ClosesAt.Format(time.RFC3339),
	})
}

type EndAuctionResponse struct {
	AuctionID    string          `json:"auctionId"`
	Status       string          `json:"status"`
	WinningBidID *string         `json:"winningBidId"`
	Winner       *ScoredBidView  `json:"winner"`
	Losers       []ScoredBidView `json:"losers"`
}

type ScoredBidView struct {
	BidID      string  `json:"bidId"`
	Lob        string  `json:"lob"`
	Amount     float64 `json:"amount"`
	FinalScore float64 `json:"finalScore"`
}

func (m ApiHandler) endAuction(c *gin.Context) {
	auctionID, err := parseUuid(c.Param("id"), "id")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out, err := m.AuctionService.End(c.Request.Context(), auctionID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	resp := EndAuctionResponse{
		AuctionID: out.Auction.AuctionID.String(),
		Status:    out.Auction.Status.String(),
		Losers:    []ScoredBidView{},
	}
	if out.Auction.WinningBidID != nil {
		winningBidID := out.Auction.WinningBidID.String()
		resp.WinningBidID = &winningBidID
	}
	if out.Winner != nil {
		view := newScoredBidView(*out.Winner)
		resp.Winner = &view
	}
	for _, loser := range out.Losers {
		resp.Losers = append(resp.Losers, newScoredBidView(loser))
	}

	c.JSON(200, resp)
}

func newScoredBidView(sb l3_service.ScoredBid) ScoredBidView {
	return ScoredBidView{
		BidID:      sb.Bid.BidID.String(),
		Lob:        sb.Bid.Lob,
		Amount:     sb.Bid.Amount.InexactFloat64(),
		FinalScore: sb.Score.FinalScore,
	}
}

func parseUuid(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s %q", field, raw)
	}
	return id, nil
}
