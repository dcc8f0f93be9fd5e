// pkg/brief/service.go

package brief

import (
	"context"
	"fmt"
	"time"

	"ada/pkg/ai"
	"ada/pkg/calendar"
	itemrepo "ada/pkg/item/repository"
	"ada/pkg/reminder"
)

const maxBriefTasks = 10

// Service assembles the daily brief from whatever sources the user has
// granted. Ungranted capabilities just contribute nothing.
type Service struct {
	model ai.Client
	cal   *calendar.Service
	rem   *reminder.Service
	items itemrepo.ItemRepository
}

func NewService(model ai.Client, cal *calendar.Service, rem *reminder.Service,
	items itemrepo.ItemRepository) *Service {
	return &Service{model: model, cal: cal, rem: rem, items: items}
}

func (s *Service) Today(ctx context.Context) (*ai.DailyBriefOutput, error) {
	now := time.Now()
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	var events []string
	if evs, err := s.cal.EventsOn(now); err == nil {
		for _, ev := range evs {
			events = append(events, fmt.Sprintf("%s at %s", ev.Title, ev.Start.Format("15:04")))
		}
	}

	var tasks []string
	if pending, err := s.items.ListPending(); err == nil {
		for _, it := range pending {
			tasks = append(tasks, it.Title)
			if len(tasks) >= maxBriefTasks {
				break
			}
		}
	}

	var reminders []string
	if due, err := s.rem.DueBy(endOfDay); err == nil {
		for _, r := range due {
			reminders = append(reminders, r.Title)
		}
	}

	return s.model.GenerateDailyBrief(ctx, events, tasks, reminders)
}
