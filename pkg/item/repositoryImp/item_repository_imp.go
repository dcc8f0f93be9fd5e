package repositoryImp

import (
	"ada/entities"
	"ada/pkg/item/repository"
	"gorm.io/gorm"
)

type itemRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ItemRepository { return &itemRepo{db} }

func (r *itemRepo) Create(i *entities.Item) error { return r.db.Create(i).Error }

func (r *itemRepo) BulkInsert(items []entities.Item) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

func (r *itemRepo) Save(i *entities.Item) error { return r.db.Save(i).Error }

func (r *itemRepo) FindByID(id string) (*entities.Item, error) {
	var i entities.Item
	if err := r.db.Where("id = ?", id).First(&i).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *itemRepo) List(status entities.ItemStatus, kind entities.ItemKind) ([]entities.Item, error) {
	q := r.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	var out []entities.Item
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *itemRepo) ListPending() ([]entities.Item, error) {
	return r.List(entities.ItemPending, "")
}

func (r *itemRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&entities.Item{}).Error
}
