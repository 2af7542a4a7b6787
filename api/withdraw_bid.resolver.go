package api

import (
	"github.com/gin-gonic/gin"
)

type WithdrawBidResponse struct {
	BidID  string `json:"bidId"`
	Status string `json:"status"`
}

func (m ApiHandler) withdrawBid(c *gin.Context) {
	bidID, err := parseUuid(c.Param("id"), "id")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	userID, err := authenticatedUser(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	bid, err := m.BidService.Withdraw(c.Request.Context(), bidID, userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, WithdrawBidResponse{
		BidID:  bid.BidID.String(),
		Status: bid.Status.String(),
	})
}
