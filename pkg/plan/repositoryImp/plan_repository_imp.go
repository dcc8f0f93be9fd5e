package repositoryImp

import (
	"ada/entities"
	"ada/pkg/plan/repository"
	"gorm.io/gorm"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) Create(p *entities.Plan) error { return r.db.Create(p).Error }

func (r *planRepo) Save(p *entities.Plan) error { return r.db.Save(p).Error }

func (r *planRepo) FindByID(id string) (*entities.Plan, error) {
	var p entities.Plan
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) ListByUser(userID string) ([]entities.Plan, error) {
	var ps []entities.Plan
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *planRepo) ListAwaiting(userID string) ([]entities.Plan, error) {
	var ps []entities.Plan
	if err := r.db.Where("user_id = ? AND status = ?", userID, entities.PlanAwaitingConfirmation).
		Order("created_at DESC").Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

// Delete cascades: the plan owns its items and receipts, so they go in the
// same transaction.
func (r *planRepo) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", id).Delete(&entities.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Where("plan_id = ?", id).Delete(&entities.Receipt{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Plan{}).Error
	})
}

func (r *planRepo) CreateReceipts(rs []entities.Receipt) error {
	if len(rs) == 0 {
		return nil
	}
	return r.db.Create(&rs).Error
}

func (r *planRepo) ReceiptsByPlan(planID string) ([]entities.Receipt, error) {
	var out []entities.Receipt
	if err := r.db.Where("plan_id = ?", planID).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
