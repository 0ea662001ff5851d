package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Priority of a task. Stored as low|medium|high, written on the wire as baja|media|alta.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var priorityWire = map[Priority]string{
	PriorityLow:    "baja",
	PriorityMedium: "media",
	PriorityHigh:   "alta",
}

// ParsePriority accepts both the English and the Spanish spelling, case-insensitive.
// An empty string yields PriorityMedium.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PriorityMedium, nil
	case "low", "baja":
		return PriorityLow, nil
	case "medium", "media":
		return PriorityMedium, nil
	case "high", "alta":
		return PriorityHigh, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Rank orders priorities for sorting: high=0, medium=1, low=2.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Wire returns the Spanish label used by API clients.
func (p Priority) Wire() string {
	if w, ok := priorityWire[p]; ok {
		return w
	}
	return string(p)
}

func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Wire())
}

func (p *Priority) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParsePriority(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
