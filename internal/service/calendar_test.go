package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskflow/internal/apperrors"
	"taskflow/internal/models"
)

func TestBuildCalendarEvents(t *testing.T) {
	desc := "two litres"
	cat := "Casa"

	tasks := []models.Task{
		{ID: 1, Title: "Buy milk", Priority: models.PriorityHigh, DueDate: models.NewDate(2025, time.June, 1), Description: &desc, Category: &cat},
		{ID: 2, Title: "Call mom", Priority: models.PriorityMedium, DueDate: models.NewDate(2025, time.June, 2)},
		{ID: 3, Title: "Walk", Priority: models.PriorityLow, DueDate: models.NewDate(2025, time.June, 3)},
		{ID: 4, Title: "Pay rent", Priority: models.PriorityHigh, DueDate: models.NewDate(2025, time.June, 4), Completed: true},
		{ID: 5, Title: "Someday", Priority: models.PriorityLow},
	}

	events := BuildCalendarEvents(tasks)
	if len(events) != 4 {
		t.Fatalf("expected 4 events (undated skipped), got %d", len(events))
	}

	tests := []struct {
		idx                   int
		title, start          string
		bg, border, text      string
		description, category string
		priority              string
	}{
		{0, "Buy milk", "2025-06-01", "#f56565", "#c53030", "#fff", "two litres", "Casa", "Alta"},
		{1, "Call mom", "2025-06-02", "#fbbf24", "#f59e0b", "#1f2937", "", "Sin categoría", "Media"},
		{2, "Walk", "2025-06-03", "#48bb78", "#38a169", "#fff", "", "Sin categoría", "Baja"},
		{3, "Pay rent (✓ Completada)", "2025-06-04", "#a0aec0", "#718096", "#4a5568", "", "Sin categoría", "Alta"},
	}
	for _, tt := range tests {
		ev := events[tt.idx]
		t.Run(tt.title, func(t *testing.T) {
			if ev.Title != tt.title || ev.Start != tt.start || !ev.AllDay {
				t.Errorf("title/start/allDay = %q/%q/%v", ev.Title, ev.Start, ev.AllDay)
			}
			if ev.BackgroundColor != tt.bg || ev.BorderColor != tt.border || ev.TextColor != tt.text {
				t.Errorf("colors = %s/%s/%s", ev.BackgroundColor, ev.BorderColor, ev.TextColor)
			}
			if ev.Description != tt.description {
				t.Errorf("description = %q", ev.Description)
			}
			if ev.ExtendedProps.Category != tt.category || ev.ExtendedProps.Priority != tt.priority {
				t.Errorf("extendedProps = %+v", ev.ExtendedProps)
			}
		})
	}
}

func TestBuildCalendarEvents_EmptyIsNotNil(t *testing.T) {
	if got := BuildCalendarEvents(nil); got == nil {
		t.Fatal("expected empty non-nil slice")
	}
}

func TestCalendarService_UsesDatedTasks(t *testing.T) {
	var owner int
	repo := &mockTasks{
		ListDatedByOwnerFn: func(userID int) ([]models.Task, error) {
			owner = userID
			return []models.Task{{ID: 9, Title: "x", Priority: models.PriorityLow, DueDate: models.NewDate(2025, 1, 2)}}, nil
		},
	}
	events, err := NewCalendarService(repo).CalendarEvents(context.Background(), 4)
	if err != nil {
		t.Fatalf("CalendarEvents: %v", err)
	}
	if owner != 4 || len(events) != 1 || events[0].ID != 9 {
		t.Fatalf("unexpected result owner=%d events=%+v", owner, events)
	}

	repo.ListDatedByOwnerFn = func(int) ([]models.Task, error) { return nil, errors.New("boom") }
	if _, err := NewCalendarService(repo).CalendarEvents(context.Background(), 4); apperrors.CodeOf(err) != apperrors.CodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}
