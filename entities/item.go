package entities

import "time"

type ItemKind string

const (
	ItemTask      ItemKind = "task"
	ItemEvent     ItemKind = "event"
	ItemNote      ItemKind = "note"
	ItemChecklist ItemKind = "checklist"
	ItemReminder  ItemKind = "reminder"
)

type ItemStatus string

const (
	ItemPending    ItemStatus = "pending"
	ItemInProgress ItemStatus = "inProgress"
	ItemCompleted  ItemStatus = "completed"
	ItemCancelled  ItemStatus = "cancelled"
)

type ItemPriority string

const (
	PriorityLow    ItemPriority = "low"
	PriorityNormal ItemPriority = "normal"
	PriorityHigh   ItemPriority = "high"
	PriorityUrgent ItemPriority = "urgent"
)

// Item is the unit of work managed for the user: a task, event, note,
// checklist or reminder. At most one plan owns it (weak back-reference).
type Item struct {
	ID          string       `gorm:"primaryKey" json:"id"`
	Title       string       `json:"title"`
	Detail      string       `json:"detail"`
	Kind        ItemKind     `gorm:"index" json:"kind"`
	Status      ItemStatus   `gorm:"index" json:"status"`
	Priority    ItemPriority `json:"priority"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	Location    string       `json:"location,omitempty"`
	People      []string     `gorm:"serializer:json" json:"people"`
	Tags        []string     `gorm:"serializer:json" json:"tags"`
	SourceText  string       `json:"source_text,omitempty"`
	PlanID      string       `gorm:"index" json:"plan_id,omitempty"`
}

// SetStatus keeps completedAt in lockstep with the status: set iff completed.
func (i *Item) SetStatus(s ItemStatus) {
	now := time.Now()
	i.Status = s
	i.UpdatedAt = now
	if s == ItemCompleted {
		i.CompletedAt = &now
	} else {
		i.CompletedAt = nil
	}
}
