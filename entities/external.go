package entities

import "time"

// CalendarEvent is a row in the external calendar store the calendar adapter
// writes to. Not owned by any plan; receipts reference it by ExternalID.
type CalendarEvent struct {
	EventID   uint      `gorm:"primaryKey" json:"event_id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Reminder is a row in the external reminders store.
// Priority follows the EventKit scale: 1 high, 5 medium, 9 low.
type Reminder struct {
	ReminderID uint       `gorm:"primaryKey" json:"reminder_id"`
	Title      string     `json:"title"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	Priority   int        `json:"priority"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
