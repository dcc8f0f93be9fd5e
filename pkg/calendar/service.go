// pkg/calendar/service.go

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"ada/entities"
	"ada/pkg/permissions"
)

// Service owns all access to the external calendar store. Every calendar
// write in the system goes through here, giving a single point of audit and
// permission management.
type Service struct {
	db    *gorm.DB
	perms *permissions.Manager
	now   func() time.Time
}

func New(db *gorm.DB, perms *permissions.Manager) *Service {
	return &Service{db: db, perms: perms, now: time.Now}
}

// RequestAccess asks the consent gate for calendar access.
func (s *Service) RequestAccess() bool {
	return s.perms.Request(permissions.Calendar)
}

// CreateEvent persists an event and returns a human-readable confirmation.
// dateString is full-date ISO-8601; times are HH:mm. An unparsable date
// falls back to "now"; a missing or unparsable end time defaults the event
// to one hour from start.
func (s *Service) CreateEvent(title, dateString, startTime, endTime, location, notes string) (string, string, error) {
	if !s.RequestAccess() {
		return "", "", fmt.Errorf("calendar access not granted")
	}

	var start, end time.Time
	if base, err := time.Parse("2006-01-02", dateString); err == nil {
		start = base
		if h, m, ok := parseTime(startTime); ok {
			start = time.Date(base.Year(), base.Month(), base.Day(), h, m, 0, 0, time.Local)
		}
		if h, m, ok := parseTime(endTime); ok {
			end = time.Date(base.Year(), base.Month(), base.Day(), h, m, 0, 0, time.Local)
		} else {
			end = start.Add(time.Hour)
		}
	} else {
		start = s.now()
		end = start.Add(time.Hour)
	}

	ev := entities.CalendarEvent{
		Title:    title,
		Start:    start,
		End:      end,
		Location: location,
		Notes:    notes,
	}
	if err := s.db.Create(&ev).Error; err != nil {
		return "", "", fmt.Errorf("creating event: %w", err)
	}

	result := fmt.Sprintf("Event '%s' created for %s", title, start.Format("Jan 2, 2006 15:04"))
	if location != "" {
		result += " at " + location
	}
	return result, strconv.FormatUint(uint64(ev.EventID), 10), nil
}

// EventsOn lists events whose start falls on the given day, in order.
func (s *Service) EventsOn(day time.Time) ([]entities.CalendarEvent, error) {
	if !s.RequestAccess() {
		return nil, nil
	}
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.AddDate(0, 0, 1)
	var out []entities.CalendarEvent
	if err := s.db.Where("start >= ? AND start < ?", from, to).
		Order("start ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func parseTime(t string) (hour, minute int, ok bool) {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
