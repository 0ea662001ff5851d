package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"2025-06-01", "2025-06-01", false},
		{"2025-06-01T23:30:00Z", "2025-06-01", false},
		{"01/06/2025", "", true},
		{"2025-13-01", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got.String() != tt.want {
				t.Fatalf("got %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	type wrap struct {
		D Date `json:"d"`
	}
	b, _ := json.Marshal(wrap{})
	if string(b) != `{"d":null}` {
		t.Fatalf("zero date = %s", b)
	}
	b, _ = json.Marshal(wrap{NewDate(2025, time.June, 1)})
	if string(b) != `{"d":"2025-06-01"}` {
		t.Fatalf("date = %s", b)
	}

	var w wrap
	if err := json.Unmarshal([]byte(`{"d":"2025-06-02"}`), &w); err != nil || w.D.String() != "2025-06-02" {
		t.Fatalf("unmarshal = %q, %v", w.D.String(), err)
	}
	if err := json.Unmarshal([]byte(`{"d":null}`), &w); err != nil || !w.D.IsZero() {
		t.Fatalf("null should reset the date, got %q, %v", w.D.String(), err)
	}
}

func TestDate_ScanAndValue(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want string
	}{
		{"nil", nil, ""},
		{"time", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "2025-06-01"},
		{"bytes", []byte("2025-06-01"), "2025-06-01"},
		{"timestamp text", "2025-06-01 00:00:00", "2025-06-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tt.src); err != nil {
				t.Fatalf("Scan: %v", err)
			}
			if d.String() != tt.want {
				t.Fatalf("got %q, want %q", d.String(), tt.want)
			}
			v, err := d.Value()
			if err != nil {
				t.Fatalf("Value: %v", err)
			}
			if tt.want == "" && v != nil {
				t.Fatalf("zero date should store NULL, got %v", v)
			}
			if tt.want != "" && v != tt.want {
				t.Fatalf("Value = %v, want %q", v, tt.want)
			}
		})
	}

	var d Date
	if err := d.Scan(42); err == nil {
		t.Fatal("expected error scanning int")
	}
}

func TestUser_Has(t *testing.T) {
	admin := User{IsAdmin: true}
	user := User{}
	if !admin.Has(RoleAdmin) || !admin.Has(RoleUser) {
		t.Fatal("admin should hold both roles")
	}
	if user.Has(RoleAdmin) || !user.Has(RoleUser) {
		t.Fatal("user should only hold RoleUser")
	}
	if user.Has(Role("root")) {
		t.Fatal("unknown role must be denied")
	}
}
