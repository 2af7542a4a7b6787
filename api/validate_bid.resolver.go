package api

import (
	"fairslot/internal/domain"

	"github.com/gin-gonic/gin"
)

type ValidateBidResponse struct {
	Validation domain.ValidationResult `json:"validation"`
}

// validateBid runs the full validation stack without persisting anything,
// so bidders can pre-flight a submission.
func (m ApiHandler) validateBid(c *gin.Context) {
	in, err := m.parseSubmitBidRequest(c)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	validation, err := m.BidService.DryRun(c.Request.Context(), *in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, ValidateBidResponse{Validation: validation})
}
