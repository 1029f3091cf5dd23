package entity

import "time"

// DocumentSequence is a per-scope monotonic counter backing sequential
// document numbers (invoices per type, kitchen orders). Counters only ever
// move forward, so issued numbers are never reused even after a document is
// deleted. Increments happen in a single atomic upsert; a failed create
// leaves a gap, never a duplicate.
type DocumentSequence struct {
	Scope     string    `gorm:"primary_key;size:40" json:"scope"`
	Value     int64     `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the DocumentSequence model
func (DocumentSequence) TableName() string {
	return "document_sequences"
}
