package models

import (
	"encoding/json"
	"sort"
	"testing"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{"", PriorityMedium, false},
		{"alta", PriorityHigh, false},
		{"ALTA", PriorityHigh, false},
		{"high", PriorityHigh, false},
		{" media ", PriorityMedium, false},
		{"baja", PriorityLow, false},
		{"low", PriorityLow, false},
		{"urgent", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePriority(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPriority_RankOrdersHighFirst(t *testing.T) {
	ps := []Priority{PriorityLow, PriorityHigh, PriorityMedium}
	sort.Slice(ps, func(i, j int) bool { return ps[i].Rank() < ps[j].Rank() })
	want := []Priority{PriorityHigh, PriorityMedium, PriorityLow}
	for i := range want {
		if ps[i] != want[i] {
			t.Fatalf("order = %v, want %v", ps, want)
		}
	}
}

func TestPriority_JSONUsesSpanishLabels(t *testing.T) {
	b, err := json.Marshal(struct {
		P Priority `json:"p"`
	}{PriorityHigh})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"p":"alta"}` {
		t.Fatalf("got %s", b)
	}

	var in struct {
		P Priority `json:"p"`
	}
	if err := json.Unmarshal([]byte(`{"p":"baja"}`), &in); err != nil || in.P != PriorityLow {
		t.Fatalf("unmarshal = %q, %v", in.P, err)
	}
	if err := json.Unmarshal([]byte(`{"p":"urgent"}`), &in); err == nil {
		t.Fatal("expected error for unknown priority")
	}
}
