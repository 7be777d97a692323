package domain_test

import (
	"testing"

	"github.com/nestapt/nest_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestJourneySteps_AllTermTypes(t *testing.T) {
	terms := []domain.TermType{
		domain.TermDaily,
		domain.TermMonthly,
		domain.TermSixMonths,
		domain.TermTwelveMonths,
	}

	for _, term := range terms {
		steps := domain.JourneySteps(term)

		assert.NotEmpty(t, steps, "journey for %s must not be empty", term)
		assert.Equal(t, domain.StepSelectUnit, steps[0], "journey for %s must start with SELECT_UNIT", term)
		assert.Equal(t, domain.StepDealClosed, steps[len(steps)-1], "journey for %s must end with DEAL_CLOSED", term)

		seen := make(map[domain.JourneyStep]bool, len(steps))
		for _, step := range steps {
			assert.False(t, seen[step], "journey for %s contains duplicate step %s", term, step)
			seen[step] = true
		}
	}
}

func TestJourneySteps_UnknownTermDefaultsToMonthly(t *testing.T) {
	steps := domain.JourneySteps(domain.TermType("QUARTERLY"))
	assert.Equal(t, domain.MonthlyJourneySteps, steps)
}

func TestJourneySteps_PathLengths(t *testing.T) {
	assert.Len(t, domain.DailyJourneySteps, 7)
	assert.Len(t, domain.MonthlyJourneySteps, 10)
}

func TestStepDocuments_OnlyReferencesCatalogSteps(t *testing.T) {
	inMonthly := make(map[domain.JourneyStep]bool)
	for _, step := range domain.MonthlyJourneySteps {
		inMonthly[step] = true
	}
	inDaily := make(map[domain.JourneyStep]bool)
	for _, step := range domain.DailyJourneySteps {
		inDaily[step] = true
	}

	for step, docType := range domain.StepDocuments {
		assert.True(t, inMonthly[step] || inDaily[step], "step %s mapped to %s is in no journey", step, docType)
		assert.NotEmpty(t, domain.DocumentTypeLabels[docType], "document type %s has no label", docType)
	}
}

func TestStepLabel_FallsBackToRawName(t *testing.T) {
	assert.Equal(t, "Select Unit", domain.StepSelectUnit.Label())
	assert.Equal(t, "SOME_UNKNOWN_STEP", domain.JourneyStep("SOME_UNKNOWN_STEP").Label())
}

func TestUnit_PriceForTerm(t *testing.T) {
	monthly := decimal.NewFromInt(8_000_000)
	unit := domain.Unit{MonthlyPrice: &monthly}

	assert.Nil(t, unit.PriceForTerm(domain.TermDaily))
	assert.Nil(t, unit.PriceForTerm(domain.TermType("BOGUS")))

	got := unit.PriceForTerm(domain.TermMonthly)
	if assert.NotNil(t, got) {
		assert.True(t, got.Equal(monthly))
	}
}

func TestDeal_EffectivePrice(t *testing.T) {
	initial := decimal.NewFromInt(8_000_000)
	negotiated := decimal.NewFromInt(7_500_000)

	deal := domain.Deal{InitialPrice: initial}
	assert.True(t, deal.EffectivePrice().Equal(initial))

	deal.DealPrice = &negotiated
	assert.True(t, deal.EffectivePrice().Equal(negotiated))
}

func TestChannel_Executor(t *testing.T) {
	assert.Equal(t, "CLAWDBOT", domain.ChannelWhatsApp.Executor())
	assert.Equal(t, "WEB", domain.ChannelWeb.Executor())
}
