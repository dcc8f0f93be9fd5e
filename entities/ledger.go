package entities

import "time"

// LedgerEntry is an immutable audit trail record. Every processed input is
// logged here for transparency; only a hash and a bounded preview of the raw
// input are kept, never the input itself.
type LedgerEntry struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Timestamp    time.Time `gorm:"index" json:"timestamp"`
	InputHash    string    `json:"input_hash"`
	InputPreview string    `json:"input_preview"`
	Actions      []string  `gorm:"serializer:json" json:"actions"`
	Results      []string  `gorm:"serializer:json" json:"results"`
	PlanID       string    `gorm:"index" json:"plan_id,omitempty"`
}
