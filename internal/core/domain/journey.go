package domain

// JourneyStep is one named step in a deal's journey sequence.
type JourneyStep string

const (
	StepSelectUnit                  JourneyStep = "SELECT_UNIT"
	StepGenerateBookingConfirmation JourneyStep = "GENERATE_BOOKING_CONFIRMATION"
	StepGenerateLOODraft            JourneyStep = "GENERATE_LOO_DRAFT"
	StepFinalizeLOO                 JourneyStep = "FINALIZE_LOO"
	StepGenerateLeaseAgreement      JourneyStep = "GENERATE_LEASE_AGREEMENT"
	StepGenerateOfficialConfirm     JourneyStep = "GENERATE_OFFICIAL_CONFIRMATION"
	StepRequestInvoice              JourneyStep = "REQUEST_INVOICE"
	StepUploadInvoice               JourneyStep = "UPLOAD_INVOICE"
	StepGenerateMoveIn              JourneyStep = "GENERATE_MOVE_IN"
	StepGenerateHandover            JourneyStep = "GENERATE_HANDOVER"
	StepDealClosed                  JourneyStep = "DEAL_CLOSED"
)

// DailyJourneySteps is the short journey for daily-term deals.
var DailyJourneySteps = []JourneyStep{
	StepSelectUnit,
	StepGenerateBookingConfirmation,
	StepGenerateOfficialConfirm,
	StepRequestInvoice,
	StepUploadInvoice,
	StepGenerateHandover,
	StepDealClosed,
}

// MonthlyJourneySteps is the full journey for monthly and longer terms,
// including LOO drafting, lease and move-in steps.
var MonthlyJourneySteps = []JourneyStep{
	StepSelectUnit,
	StepGenerateLOODraft,
	StepFinalizeLOO,
	StepGenerateLeaseAgreement,
	StepGenerateOfficialConfirm,
	StepRequestInvoice,
	StepUploadInvoice,
	StepGenerateMoveIn,
	StepGenerateHandover,
	StepDealClosed,
}

// StepLabels maps journey steps to their human-readable labels.
var StepLabels = map[JourneyStep]string{
	StepSelectUnit:                  "Select Unit",
	StepGenerateBookingConfirmation: "Generate Booking Confirmation",
	StepGenerateOfficialConfirm:     "Generate Official Confirmation Letter",
	StepRequestInvoice:              "Request Invoice",
	StepUploadInvoice:               "Upload Invoice",
	StepGenerateHandover:            "Generate Unit Handover Certificate",
	StepDealClosed:                  "Deal Closed",
	StepGenerateLOODraft:            "Generate Offer (LOO Draft)",
	StepFinalizeLOO:                 "Finalize Offer (LOO Final)",
	StepGenerateLeaseAgreement:      "Generate Lease Agreement",
	StepGenerateMoveIn:              "Generate Move-in Confirmation",
}

// StepDocuments maps the steps that are gated on document generation to the
// document type they must produce.
var StepDocuments = map[JourneyStep]DocumentType{
	StepGenerateBookingConfirmation: DocBookingConfirmation,
	StepGenerateLOODraft:            DocLOODraft,
	StepFinalizeLOO:                 DocLOOFinal,
	StepGenerateLeaseAgreement:      DocLeaseAgreement,
	StepGenerateOfficialConfirm:     DocOfficialConfirmation,
	StepGenerateMoveIn:              DocMoveInConfirmation,
	StepGenerateHandover:            DocUnitHandover,
}

// JourneySteps returns the ordered journey for a term type. Daily deals
// follow the short path; every other term, known or not, follows the
// monthly path.
func JourneySteps(term TermType) []JourneyStep {
	if term == TermDaily {
		return DailyJourneySteps
	}
	return MonthlyJourneySteps
}

// Label returns the human-readable label for a step, falling back to the
// raw step name.
func (s JourneyStep) Label() string {
	if label, ok := StepLabels[s]; ok {
		return label
	}
	return string(s)
}
