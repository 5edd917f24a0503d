package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse_roundTrip(t *testing.T) {
	in := "2026-02-01T10:30:00"
	dt, err := Parse(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if dt.String() != in {
		t.Errorf("round trip: got %q, want %q", dt.String(), in)
	}
}

func TestParse_rejectsZoneOffset(t *testing.T) {
	if _, err := Parse("2026-02-01T10:30:00Z"); err == nil {
		t.Error("expected error for zoned input in Parse")
	}
	if _, err := Parse("2026-02-01"); err == nil {
		t.Error("expected error for date-only input")
	}
}

func TestParseQuery(t *testing.T) {
	dt, ok, err := ParseQuery("2026-02-01T10:30:00")
	if err != nil || !ok {
		t.Fatalf("expected ok, got ok=%v err=%v", ok, err)
	}
	if dt.Hour() != 10 || dt.Minute() != 30 {
		t.Errorf("unexpected time: %v", dt)
	}

	_, ok, err = ParseQuery("")
	if err != nil || ok {
		t.Errorf("empty input: want ok=false err=nil, got ok=%v err=%v", ok, err)
	}

	_, _, err = ParseQuery("yesterday")
	if err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestMarshalJSON(t *testing.T) {
	dt := New(time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC))
	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-02-01T10:30:00"` {
		t.Errorf("unexpected JSON: %s", b)
	}
}

func TestMarshalJSON_zeroIsNull(t *testing.T) {
	b, err := json.Marshal(LocalDateTime{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("expected null, got %s", b)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"local layout", `"2026-02-01T10:30:00"`, "2026-02-01T10:30:00"},
		{"rfc3339 fallback", `"2026-02-01T10:30:00Z"`, "2026-02-01T10:30:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dt LocalDateTime
			if err := json.Unmarshal([]byte(tt.in), &dt); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if dt.String() != tt.want {
				t.Errorf("got %q, want %q", dt.String(), tt.want)
			}
		})
	}
}

func TestUnmarshalJSON_null(t *testing.T) {
	var dt LocalDateTime
	if err := json.Unmarshal([]byte("null"), &dt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !dt.IsZero() {
		t.Errorf("expected zero value, got %v", dt)
	}
}

func TestUnmarshalJSON_malformed(t *testing.T) {
	var dt LocalDateTime
	if err := json.Unmarshal([]byte(`"02/01/2026"`), &dt); err == nil {
		t.Error("expected error for malformed datetime")
	}
}
