package api

import (
	"fmt"
	"time"

	"fairslot/internal/domain"
	"fairslot/internal/util"

	"github.com/gin-gonic/gin"
)

type AllocationsResponse struct {
	Allocations []domain.AllocationBreakdown `json:"allocations"`
}

// assetAllocations returns the per-day quota consumption for an asset over
// a date range, defaulting to the coming week.
func (m ApiHandler) assetAllocations(c *gin.Context) {
	assetID, err := parseUuid(c.Param("id"), "id")
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	from := util.StartOfDay(time.Now().UTC())
	to := from.AddDate(0, 0, 7)
	if raw := c.Query("from"); raw != "" {
		from, err = time.Parse("2006-01-02", raw)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid from date: %w", err), c, 400)
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		to, err = time.Parse("2006-01-02", raw)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid to date: %w", err), c, 400)
			return
		}
	}

	allocations, err := m.SlotAllocationRepository.List(assetID, from, to)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	resp := AllocationsResponse{Allocations: []domain.AllocationBreakdown{}}
	for _, sa := range allocations {
		resp.Allocations = append(resp.Allocations, domain.NewAllocationBreakdown(sa))
	}

	c.JSON(200, resp)
}
