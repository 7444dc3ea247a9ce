package reconcile

import (
	"fmt"
	"strings"
	"time"
)

const civilDateLayout = "2006-01-02"

// TimezoneResolver converts absolute UTC instants into civil calendar
// dates in one target timezone. The resolver is built once per session
// (server start or request override), not once per comparison.
type TimezoneResolver struct {
	loc *time.Location
}

// NewTimezoneResolver loads the named IANA timezone ("America/Chicago").
// An empty name resolves to UTC.
func NewTimezoneResolver(name string) (*TimezoneResolver, error) {
	if name == "" {
		return &TimezoneResolver{loc: time.UTC}, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return &TimezoneResolver{loc: loc}, nil
}

// UTC returns a resolver pinned to UTC.
func UTC() *TimezoneResolver {
	return &TimezoneResolver{loc: time.UTC}
}

// Location exposes the underlying timezone.
func (r *TimezoneResolver) Location() *time.Location {
	return r.loc
}

// CivilDate formats a UTC instant string as YYYY-MM-DD in the resolver's
// timezone. When the instant does not parse it degrades to the substring
// before the first 'T', unconverted; a bare date string passes through.
// The result is empty only for empty input.
func (r *TimezoneResolver) CivilDate(instant string) string {
	s := strings.TrimSpace(instant)
	if s == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(r.loc).Format(civilDateLayout)
	}
	if i := strings.Index(s, "T"); i >= 0 {
		return s[:i]
	}
	return s
}
