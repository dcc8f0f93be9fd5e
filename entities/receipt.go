package entities

import "time"

// Receipt proves an action was executed. Shown after each plan execution so
// the user always knows what happened. Never mutated after creation.
type Receipt struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	PlanID            string    `gorm:"index" json:"plan_id"`
	ActionTool        string    `json:"action_tool"`
	ActionDescription string    `json:"action_description"`
	ResultSummary     string    `json:"result_summary"`
	Success           bool      `json:"success"`
	CreatedAt         time.Time `json:"created_at"`
	ExternalID        string    `json:"external_id,omitempty"`
}
