package services

import (
	"context"

	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/nestapt/nest_backend/internal/dto"
)

// JourneySvcFacade is the journey engine: it locates a deal inside its
// term-type journey, evaluates the current step's exit gate and performs
// step advancement. Advance mutates only the in-memory deal; persistence
// stays with the caller.
type JourneySvcFacade interface {
	// StepIndex returns the index of the deal's current step within its
	// journey, or 0 when the step is not a member of the sequence.
	StepIndex(deal *domain.Deal) int

	// CanProgress reports whether the current step's exit gate is satisfied,
	// and the human-readable blocking reason when it is not.
	CanProgress(ctx context.Context, deal *domain.Deal) (bool, *string, error)

	// Advance moves the deal to the next step, updates its status and clears
	// the blocked reason. At the terminal step it is a no-op. Returns the
	// resulting current step.
	Advance(deal *domain.Deal) domain.JourneyStep

	// JourneyStatus returns the ordered journey view with per-step
	// completed/current/pending tags and the live gate result on the
	// current entry.
	JourneyStatus(ctx context.Context, deal *domain.Deal) ([]dto.JourneyStepEntry, error)
}
