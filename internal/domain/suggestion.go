package domain

import (
	"time"

	"github.com/google/uuid"
)

type RejectionReason string

const (
	RejectionReason_Conflict      RejectionReason = "conflict"
	RejectionReason_QuotaExceeded RejectionReason = "quota_exceeded"
	RejectionReason_Fairness      RejectionReason = "fairness"
)

// RemediationHint maps a rejection category to what the bidder can actually
// do about it.
func (r RejectionReason) RemediationHint() string {
	switch r {
	case RejectionReason_Conflict:
		return "the requested slot was won by another bid; try one of the suggested alternative dates"
	case RejectionReason_QuotaExceeded:
		return "the monetization quota for this asset is exhausted; bid on a larger asset or a later date"
	case RejectionReason_Fairness:
		return "a competing bid scored higher; raising the bid amount or targeting a less contested asset will improve the score"
	default:
		return ""
	}
}

type SuggestionPriority string

const (
	SuggestionPriority_High   SuggestionPriority = "high"   // days 1-7
	SuggestionPriority_Medium SuggestionPriority = "medium" // days 8-14
	SuggestionPriority_Low    SuggestionPriority = "low"    // days 15-30
)

func PriorityForOffset(daysOut int) SuggestionPriority {
	switch {
	case daysOut <= 7:
		return SuggestionPriority_High
	case daysOut <= 14:
		return SuggestionPriority_Medium
	default:
		return SuggestionPriority_Low
	}
}

// AlternativeSlot is one open slot offered to a losing bidder.
type AlternativeSlot struct {
	AssetID        uuid.UUID          `json:"assetId"`
	Date           time.Time          `json:"date"`
	SlotsRemaining int                `json:"slotsRemaining"`
	Priority       SuggestionPriority `json:"priority"`
}

type SuggestionSet struct {
	BidID        uuid.UUID         `json:"bidId"`
	Reason       RejectionReason   `json:"reason"`
	Hint         string            `json:"hint"`
	Alternatives []AlternativeSlot `json:"alternatives"`
}
