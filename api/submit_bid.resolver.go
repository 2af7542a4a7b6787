package api

import (
	"fmt"
	"time"

	"fairslot/internal/db/models/postgres/public/model"
	"fairslot/internal/domain"
	l3_service "fairslot/internal/service/l3"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SubmitBidRequest struct {
	CampaignID  string   `json:"campaignId"`
	Lob         string   `json:"lob"`
	BidderClass string   `json:"bidderClass"`
	AssetID     string   `json:"assetId"`
	Amount      float64  `json:"amount"`
	MaxAmount   *float64 `json:"maxAmount"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
}

type SubmitBidResponse struct {
	BidID       string                  `json:"bidId,omitempty"`
	Status      string                  `json:"status,omitempty"`
	FinalScore  *float64                `json:"finalScore,omitempty"`
	Resubmitted bool                    `json:"resubmitted"`
	Validation  domain.ValidationResult `json:"validation"`
}

func (m ApiHandler) submitBid(c *gin.Context) {
	in, err := m.parseSubmitBidRequest(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	out, err := m.BidService.Submit(c.Request.Context(), *in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	resp := SubmitBidResponse{
		Resubmitted: out.Resubmitted,
		Validation:  out.Validation,
	}
	if !out.Validation.Valid {
		c.JSON(422, resp)
		return
	}

	resp.BidID = out.Bid.BidID.String()
	resp.Status = out.Bid.Status.String()
	resp.FinalScore = &out.Score.FinalScore
	c.JSON(200, resp)
}

func (m ApiHandler) parseSubmitBidRequest(c *gin.Context) (*l3_service.SubmitBidInput, error) {
	var requestBody SubmitBidRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		return nil, err
	}

	userID, err := authenticatedUser(c)
	if err != nil {
		return nil, err
	}

	campaignID, err := parseUuid(requestBody.CampaignID, "campaignId")
	if err != nil {
		return nil, err
	}
	assetID, err := parseUuid(requestBody.AssetID, "assetId")
	if err != nil {
		return nil, err
	}

	var bidderClass model.BidderClass
	if err := bidderClass.Scan(requestBody.BidderClass); err != nil {
		return nil, fmt.Errorf("invalid bidderClass %q", requestBody.BidderClass)
	}

	startDate, err := time.Parse("2006-01-02", requestBody.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", requestBody.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid endDate: %w", err)
	}

	in := l3_service.SubmitBidInput{
		CampaignID:    campaignID,
		UserAccountID: userID,
		Lob:           requestBody.Lob,
		BidderClass:   bidderClass,
		AssetID:       assetID,
		Amount:        decimal.NewFromFloat(requestBody.Amount),
		StartDate:     startDate,
		EndDate:       endDate,
	}
	if requestBody.MaxAmount != nil {
		maxAmount := decimal.NewFromFloat(*requestBody.MaxAmount)
		in.MaxAmount = &maxAmount
	}

	return &in, nil
}
