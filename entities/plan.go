package entities

import (
	"fmt"
	"time"
)

type RiskLevel string

const (
	RiskNone         RiskLevel = "none"
	RiskNeedsConfirm RiskLevel = "needsConfirm"
	RiskSensitive    RiskLevel = "sensitive"
)

type PlanStatus string

const (
	PlanDraft                PlanStatus = "draft"
	PlanAwaitingConfirmation PlanStatus = "awaitingConfirmation"
	PlanExecuting            PlanStatus = "executing"
	PlanCompleted            PlanStatus = "completed"
	PlanFailed               PlanStatus = "failed"
)

type ToolKind string

const (
	ToolCreateEvent     ToolKind = "createEvent"
	ToolCreateReminder  ToolKind = "createReminder"
	ToolCreateChecklist ToolKind = "createChecklist"
	ToolScanAndExtract  ToolKind = "scanAndExtract"
	ToolDailyBrief      ToolKind = "dailyBrief"
	ToolInboxToPlan     ToolKind = "inboxToPlan"
)

func KnownTool(s string) bool {
	switch ToolKind(s) {
	case ToolCreateEvent, ToolCreateReminder, ToolCreateChecklist,
		ToolScanAndExtract, ToolDailyBrief, ToolInboxToPlan:
		return true
	}
	return false
}

// Plan is a structured interpretation of one user input. The model produces
// it from natural language, then the executor runs each action and generates
// receipts.
type Plan struct {
	ID         string       `gorm:"primaryKey" json:"id"`
	UserID     string       `gorm:"index" json:"user_id"`
	Intent     string       `json:"intent"`
	RawInput   string       `json:"raw_input"`
	Entities   PlanEntities `gorm:"serializer:json" json:"entities"`
	Actions    []Action     `gorm:"serializer:json" json:"actions"`
	RiskLevel  RiskLevel    `json:"risk_level"`
	Status     PlanStatus   `gorm:"index" json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	ExecutedAt *time.Time   `json:"executed_at,omitempty"`
}

// PlanEntities holds the references extracted from the raw input.
type PlanEntities struct {
	Dates     []string `json:"dates"`
	Times     []string `json:"times"`
	Locations []string `json:"locations"`
	People    []string `json:"people"`
	Amounts   []string `json:"amounts"`
}

// Action is a single tool invocation the plan will execute.
type Action struct {
	ID                   string            `json:"id"`
	Tool                 ToolKind          `json:"tool"`
	Parameters           map[string]string `json:"parameters"`
	RequiresConfirmation bool              `json:"requires_confirmation"`
}

var planTransitions = map[PlanStatus][]PlanStatus{
	PlanDraft:                {PlanAwaitingConfirmation, PlanExecuting},
	PlanAwaitingConfirmation: {PlanExecuting, PlanFailed},
	PlanExecuting:            {PlanCompleted, PlanFailed},
}

// TransitionTo moves the plan along the lifecycle state machine.
// completed and failed are terminal; re-entry into executing is not allowed.
func (p *Plan) TransitionTo(next PlanStatus) error {
	for _, allowed := range planTransitions[p.Status] {
		if allowed == next {
			p.Status = next
			return nil
		}
	}
	return fmt.Errorf("plan %s: invalid transition %s -> %s", p.ID, p.Status, next)
}
