// pkg/scan/service.go

package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ada/entities"
	"ada/pkg/ai"
	itemrepo "ada/pkg/item/repository"
)

// Service turns scanned-document text into structured content and pending
// items. The model call is the same fallible contract as plan generation.
type Service struct {
	model ai.Client
	items itemrepo.ItemRepository
	log   zerolog.Logger
}

func NewService(model ai.Client, items itemrepo.ItemRepository, log zerolog.Logger) *Service {
	return &Service{model: model, items: items, log: log}
}

// ExtractText runs the extraction and persists each extracted task as a
// pending item for the inbox.
func (s *Service) ExtractText(ctx context.Context, ocrText string) (*ai.ExtractedContent, error) {
	content, err := s.model.ExtractContent(ctx, ocrText)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Item, 0, len(content.Tasks))
	for _, t := range content.Tasks {
		item := entities.Item{
			ID:         uuid.NewString(),
			Title:      t.Title,
			Kind:       entities.ItemTask,
			Status:     entities.ItemPending,
			Priority:   mapPriority(t.Priority),
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
			People:     []string{},
			Tags:       []string{"scanned"},
			SourceText: content.Summary,
		}
		if t.Assignee != "" {
			item.People = append(item.People, t.Assignee)
		}
		if due, err := time.Parse("2006-01-02", t.DueDate); err == nil {
			item.DueDate = &due
		}
		items = append(items, item)
	}
	if err := s.items.BulkInsert(items); err != nil {
		return nil, fmt.Errorf("persisting scanned tasks: %w", err)
	}

	s.log.Info().Int("tasks", len(items)).Str("type", content.DocumentType).Msg("scan extracted")
	return content, nil
}

func mapPriority(p string) entities.ItemPriority {
	switch p {
	case "low":
		return entities.PriorityLow
	case "high":
		return entities.PriorityHigh
	case "urgent":
		return entities.PriorityUrgent
	default:
		return entities.PriorityNormal
	}
}
