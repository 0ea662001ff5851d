package models

// CalendarEvent is the display form of a dated task, shaped for FullCalendar.
type CalendarEvent struct {
	ID              int            `json:"id"`
	Title           string         `json:"title"`
	Start           string         `json:"start"`
	AllDay          bool           `json:"allDay"`
	BackgroundColor string         `json:"backgroundColor"`
	BorderColor     string         `json:"borderColor"`
	TextColor       string         `json:"textColor"`
	Description     string         `json:"description"`
	ExtendedProps   EventExtension `json:"extendedProps"`
}

type EventExtension struct {
	Category string `json:"categoria"`
	Priority string `json:"prioridad"`
}
