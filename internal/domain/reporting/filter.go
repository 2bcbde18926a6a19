package reporting

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the accepted format for report date bounds
const DateLayout = "2006-01-02"

// ReportFilter scopes report queries
// Nil fields mean "no constraint on this dimension"; both date bounds are
// inclusive
type ReportFilter struct {
	HostelID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
}

// BuildReportFilter parses raw query parameters into a report filter.
// Parsing is permissive: a malformed hostel ID or date bound silently drops
// that constraint instead of failing the request, so a bad parameter widens
// the report rather than erroring. The builder never returns an error.
func BuildReportFilter(hostelID, startDate, endDate, search string) ReportFilter {
	var f ReportFilter

	if hostelID != "" {
		if id, err := uuid.Parse(hostelID); err == nil && id != uuid.Nil {
			f.HostelID = &id
		}
	}

	if startDate != "" {
		if t, err := time.Parse(DateLayout, startDate); err == nil {
			f.StartDate = &t
		}
	}

	if endDate != "" {
		if t, err := time.Parse(DateLayout, endDate); err == nil {
			// inclusive upper bound: extend to the end of the day
			t = t.Add(24*time.Hour - time.Nanosecond)
			f.EndDate = &t
		}
	}

	f.Search = strings.TrimSpace(search)

	return f
}

// HasDateRange returns true if at least one date bound is set
func (f ReportFilter) HasDateRange() bool {
	return f.StartDate != nil || f.EndDate != nil
}

// CacheKey returns a stable string identifying the full filter tuple,
// suitable as a report cache key component
func (f ReportFilter) CacheKey() string {
	var b strings.Builder

	b.WriteString("h=")
	if f.HostelID != nil {
		b.WriteString(f.HostelID.String())
	}
	b.WriteString(";s=")
	if f.StartDate != nil {
		b.WriteString(f.StartDate.Format(DateLayout))
	}
	b.WriteString(";e=")
	if f.EndDate != nil {
		b.WriteString(f.EndDate.Format(DateLayout))
	}
	b.WriteString(";q=")
	b.WriteString(strings.ToLower(f.Search))

	return b.String()
}
