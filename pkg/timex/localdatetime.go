// Package timex provides the zone-less local datetime representation used on
// the wire. Business datetimes are supplied by callers without a zone offset
// ("2025-09-16T10:30:00") and must round-trip unchanged.
package timex

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the ISO-8601 local datetime layout, seconds precision, no zone.
const Layout = "2006-01-02T15:04:05"

// LocalDateTime is a time.Time that marshals to and from the zone-less
// ISO-8601 layout. The zero value marshals as JSON null.
type LocalDateTime struct {
	time.Time
}

// New returns a LocalDateTime for t truncated to seconds.
func New(t time.Time) LocalDateTime {
	return LocalDateTime{t.Truncate(time.Second)}
}

// Parse parses s in the local datetime layout.
func Parse(s string) (LocalDateTime, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return LocalDateTime{}, fmt.Errorf("parse local datetime %q: %w", s, err)
	}
	return LocalDateTime{t}, nil
}

// ParseQuery parses an optional query parameter. An empty string yields the
// zero value with ok=false, leaving the corresponding filter bound open.
func ParseQuery(s string) (LocalDateTime, bool, error) {
	if strings.TrimSpace(s) == "" {
		return LocalDateTime{}, false, nil
	}
	dt, err := Parse(s)
	if err != nil {
		return LocalDateTime{}, false, err
	}
	return dt, true, nil
}

// MarshalJSON renders the datetime as "2006-01-02T15:04:05", or null when zero.
func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(Layout) + `"`), nil
}

// UnmarshalJSON accepts the local layout and, for robustness, RFC 3339.
func (d *LocalDateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*d = LocalDateTime{}
		return nil
	}
	if t, err := time.Parse(Layout, s); err == nil {
		*d = LocalDateTime{t}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("parse local datetime %q: %w", s, err)
	}
	*d = LocalDateTime{t}
	return nil
}

// String implements fmt.Stringer using the wire layout.
func (d LocalDateTime) String() string {
	return d.Format(Layout)
}
