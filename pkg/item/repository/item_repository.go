package repository

import "ada/entities"

type ItemRepository interface {
	Create(i *entities.Item) error
	BulkInsert(items []entities.Item) error
	Save(i *entities.Item) error
	FindByID(id string) (*entities.Item, error)
	// List filters by status and kind; empty values mean no filter.
	List(status entities.ItemStatus, kind entities.ItemKind) ([]entities.Item, error)
	ListPending() ([]entities.Item, error)
	Delete(id string) error
}
