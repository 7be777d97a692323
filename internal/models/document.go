package models

import "time"

// Document represents a row of the documents table.
type Document struct {
	DocumentID    string    `db:"document_id"`
	DealID        string    `db:"deal_id"`
	DocType       string    `db:"doc_type"`
	LatestVersion int       `db:"latest_version"`
	CreatedAt     time.Time `db:"created_at"`
}

// DocumentVersion represents a row of the document_versions table.
type DocumentVersion struct {
	VersionID      string    `db:"version_id"`
	DocumentID     string    `db:"document_id"`
	VersionNo      int       `db:"version_no"`
	HTMLPath       string    `db:"html_path"`
	PDFPath        string    `db:"pdf_path"`
	SignatoryName  *string   `db:"signatory_name"`
	SignatoryTitle *string   `db:"signatory_title"`
	Channel        string    `db:"channel"`
	IsLatest       bool      `db:"is_latest"`
	GeneratedAt    time.Time `db:"generated_at"`
}
