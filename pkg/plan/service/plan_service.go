package service

import (
	"context"

	"ada/entities"
)

// ProcessResult is what one lifecycle attempt hands back to the caller.
type ProcessResult struct {
	ConversationID string              `json:"conversation_id"`
	Plan           *entities.Plan      `json:"plan"`
	Receipts       []entities.Receipt  `json:"receipts"`
	Reply          string              `json:"reply"`
}

// InboxView lists everything parked for user attention.
type InboxView struct {
	Plans []entities.Plan `json:"plans"`
	Items []entities.Item `json:"items"`
}

// PlanService drives the plan lifecycle: generate, classify, execute or
// park, confirm, dismiss.
type PlanService interface {
	Process(ctx context.Context, userID, conversationID, text string) (*ProcessResult, error)
	Approve(userID, planID string) ([]entities.Receipt, error)
	Dismiss(userID, planID string) error
	Inbox(userID string) (*InboxView, error)
	List(userID string) ([]entities.Plan, error)
	Get(userID, planID string) (*entities.Plan, []entities.Receipt, error)
	Delete(userID, planID string) error
}
