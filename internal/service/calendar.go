package service

import (
	"context"

	"taskflow/internal/apperrors"
	"taskflow/internal/models"
	"taskflow/internal/repository"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	completedSuffix = " (✓ Completada)"
	uncategorized   = "Sin categoría"
)

type eventPalette struct {
	background, border, text string
}

var (
	priorityPalette = map[models.Priority]eventPalette{
		models.PriorityHigh:   {"#f56565", "#c53030", "#fff"},
		models.PriorityMedium: {"#fbbf24", "#f59e0b", "#1f2937"},
		models.PriorityLow:    {"#48bb78", "#38a169", "#fff"},
	}
	completedPalette = eventPalette{"#a0aec0", "#718096", "#4a5568"}
)

type CalendarService struct {
	repo repository.Tasks
}

func NewCalendarService(repo repository.Tasks) *CalendarService {
	return &CalendarService{repo: repo}
}

func (s *CalendarService) CalendarEvents(ctx context.Context, userID int) ([]models.CalendarEvent, error) {
	tasks, err := s.repo.ListDatedByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "list dated tasks", err)
	}
	return BuildCalendarEvents(tasks), nil
}

// BuildCalendarEvents maps dated tasks to calendar events, keeping input order.
// Tasks without a due date are skipped.
func BuildCalendarEvents(tasks []models.Task) []models.CalendarEvent {
	label := cases.Title(language.Spanish)
	events := make([]models.CalendarEvent, 0, len(tasks))
	for _, t := range tasks {
		if t.DueDate.IsZero() {
			continue
		}
		pal, ok := priorityPalette[t.Priority]
		if !ok {
			pal = priorityPalette[models.PriorityMedium]
		}
		title := t.Title
		if t.Completed {
			pal = completedPalette
			title += completedSuffix
		}
		desc := ""
		if t.Description != nil {
			desc = *t.Description
		}
		category := uncategorized
		if t.Category != nil && *t.Category != "" {
			category = *t.Category
		}
		events = append(events, models.CalendarEvent{
			ID:              t.ID,
			Title:           title,
			Start:           t.DueDate.String(),
			AllDay:          true,
			BackgroundColor: pal.background,
			BorderColor:     pal.border,
			TextColor:       pal.text,
			Description:     desc,
			ExtendedProps: models.EventExtension{
				Category: category,
				Priority: label.String(t.Priority.Wire()),
			},
		})
	}
	return events
}
