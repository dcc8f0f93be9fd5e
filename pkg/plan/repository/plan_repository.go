package repository

import "ada/entities"

type PlanRepository interface {
	Create(p *entities.Plan) error
	Save(p *entities.Plan) error
	FindByID(id string) (*entities.Plan, error)
	ListByUser(userID string) ([]entities.Plan, error)
	ListAwaiting(userID string) ([]entities.Plan, error)
	// Delete removes the plan and cascades to its items and receipts.
	Delete(id string) error

	CreateReceipts(rs []entities.Receipt) error
	ReceiptsByPlan(planID string) ([]entities.Receipt, error)
}
