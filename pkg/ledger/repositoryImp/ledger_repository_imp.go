package repositoryImp

import (
	"ada/entities"
	"ada/pkg/ledger/repository"
	"gorm.io/gorm"
)

type ledgerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LedgerRepository { return &ledgerRepo{db} }

func (r *ledgerRepo) Append(e *entities.LedgerEntry) error { return r.db.Create(e).Error }

func (r *ledgerRepo) ListDescending() ([]entities.LedgerEntry, error) {
	var out []entities.LedgerEntry
	if err := r.db.Order("timestamp DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
