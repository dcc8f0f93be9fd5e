// pkg/reminder/service.go

package reminder

import (
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"ada/entities"
	"ada/pkg/permissions"
)

// Priority values follow the EventKit scale.
const (
	priorityHigh   = 1
	priorityMedium = 5
	priorityLow    = 9
)

// Service owns all access to the external reminders store.
type Service struct {
	db    *gorm.DB
	perms *permissions.Manager
}

func New(db *gorm.DB, perms *permissions.Manager) *Service {
	return &Service{db: db, perms: perms}
}

// RequestAccess asks the consent gate for reminders access.
func (s *Service) RequestAccess() bool {
	return s.perms.Request(permissions.Reminders)
}

// CreateReminder persists a reminder and returns a confirmation string.
// An absent or unparsable due date is not an error: the reminder is simply
// created without one.
func (s *Service) CreateReminder(title, dueDateString, priority, notes string) (string, string, error) {
	if !s.RequestAccess() {
		return "", "", fmt.Errorf("reminders access not granted")
	}

	r := entities.Reminder{
		Title:    title,
		Priority: mapPriority(priority),
		Notes:    notes,
	}
	if due, err := time.Parse("2006-01-02", dueDateString); err == nil {
		r.DueDate = &due
	}

	if err := s.db.Create(&r).Error; err != nil {
		return "", "", fmt.Errorf("creating reminder: %w", err)
	}

	result := fmt.Sprintf("Reminder '%s' created", title)
	if r.DueDate != nil {
		result += " due " + dueDateString
	}
	return result, strconv.FormatUint(uint64(r.ReminderID), 10), nil
}

// DueBy lists reminders due on or before the given time, oldest first.
// Reminders without a due date are not included.
func (s *Service) DueBy(t time.Time) ([]entities.Reminder, error) {
	if !s.RequestAccess() {
		return nil, nil
	}
	var out []entities.Reminder
	if err := s.db.Where("due_date IS NOT NULL AND due_date <= ?", t).
		Order("due_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func mapPriority(p string) int {
	switch p {
	case "high":
		return priorityHigh
	case "low":
		return priorityLow
	default:
		return priorityMedium
	}
}
