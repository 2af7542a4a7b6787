package api

import (
	"github.com/gin-gonic/gin"
)

// bidSuggestions tells a losing bidder why they lost and where open
// capacity exists instead.
func (m ApiHandler) bidSuggestions(c *gin.Context) {
	bidID, err := parseUuid(c.Param("id"), "id")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	set, err := m.AuctionService.SuggestAlternatives(c.Request.Context(), bidID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, set)
}
