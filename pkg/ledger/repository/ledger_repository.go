package repository

import "ada/entities"

// LedgerRepository is append-only: entries are never updated or deleted by
// normal operation.
type LedgerRepository interface {
	Append(e *entities.LedgerEntry) error
	ListDescending() ([]entities.LedgerEntry, error)
}
