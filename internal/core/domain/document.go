package domain

import "time"

// DocumentType identifies the kind of legal/financial document generated
// for a deal.
type DocumentType string

const (
	DocBookingConfirmation  DocumentType = "BOOKING_CONFIRMATION"
	DocLOODraft             DocumentType = "LOO_DRAFT"
	DocLOOFinal             DocumentType = "LOO_FINAL"
	DocLeaseAgreement       DocumentType = "LEASE_AGREEMENT"
	DocOfficialConfirmation DocumentType = "OFFICIAL_CONFIRMATION"
	DocMoveInConfirmation   DocumentType = "MOVE_IN_CONFIRMATION"
	DocUnitHandover         DocumentType = "UNIT_HANDOVER"
)

// DocumentTypeLabels maps document types to their human-readable labels.
var DocumentTypeLabels = map[DocumentType]string{
	DocBookingConfirmation:  "Booking Confirmation",
	DocLOODraft:             "Letter of Offer – Draft",
	DocLOOFinal:             "Letter of Offer – Final",
	DocLeaseAgreement:       "Lease Agreement",
	DocOfficialConfirmation: "Official Confirmation Letter",
	DocMoveInConfirmation:   "Move-in Confirmation",
	DocUnitHandover:         "Unit Handover Certificate",
}

// Document aggregates the ordered generated versions of one document type
// for one deal. Created lazily on first generation; LatestVersion counts
// generated versions and is 0 only for a document that has never been
// rendered.
type Document struct {
	DocumentID    string       `json:"documentID"`
	DealID        string       `json:"dealID"`
	DocType       DocumentType `json:"docType"`
	LatestVersion int          `json:"latestVersion"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// DocumentVersion is a single rendered artifact (HTML + PDF pair) of a
// document. Exactly one version per document carries IsLatest at any time.
type DocumentVersion struct {
	VersionID      string    `json:"versionID"`
	DocumentID     string    `json:"documentID"`
	VersionNo      int       `json:"versionNo"`
	HTMLPath       string    `json:"htmlPath"` // Relative to the storage root
	PDFPath        string    `json:"pdfPath"`
	SignatoryName  *string   `json:"signatoryName"`
	SignatoryTitle *string   `json:"signatoryTitle"`
	Channel        Channel   `json:"channel"`
	IsLatest       bool      `json:"isLatest"`
	GeneratedAt    time.Time `json:"generatedAt"`
}
