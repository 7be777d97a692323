package dto

import (
	"github.com/nestapt/nest_backend/internal/core/domain"
)

// Journey entry step states.
const (
	JourneyStepCompleted = "completed"
	JourneyStepCurrent   = "current"
	JourneyStepPending   = "pending"
)

// JourneyStepEntry is one step of a deal's journey tagged with its position
// relative to the deal's current step. The current entry of a live deal also
// carries the gate check result.
type JourneyStepEntry struct {
	Step          string  `json:"step"`
	Label         string  `json:"label"`
	Index         int     `json:"index"`
	Status        string  `json:"status"`
	CanProgress   bool    `json:"canProgress"`
	BlockedReason *string `json:"blockedReason"`
}

// JourneyResponse is the full journey view of a deal.
type JourneyResponse struct {
	DealID      string             `json:"dealID"`
	TermType    domain.TermType    `json:"termType"`
	CurrentStep string             `json:"currentStep"`
	Status      domain.DealStatus  `json:"status"`
	Steps       []JourneyStepEntry `json:"steps"`
}
