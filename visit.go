package openowl

import (
	"context"
	"time"
)

// DayFormat is the calendar-date key format used to index visit history.
const DayFormat = "2006-01-02"

// Visit is a stored record of a page visit: the extraction result plus
// storage bookkeeping. Visits are keyed by calendar date for history
// queries.
type Visit struct {
	ID               string            `json:"id"`
	URL              string            `json:"url"`
	Title            string            `json:"title"`
	Domain           string            `json:"domain"`
	Content          string            `json:"content"`
	Type             string            `json:"type"`
	ExtractionMethod ExtractionMethod  `json:"extractionMethod"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	ContentHash      string            `json:"contentHash"`
	Day              string            `json:"day"`
	VisitedAt        time.Time         `json:"visitedAt"`
}

// Validate returns an error if the visit contains invalid fields.
func (v *Visit) Validate() error {
	if v.URL == "" {
		return Errorf(EINVALID, "visit URL required")
	}
	if v.Content == "" && v.Title == "" {
		return Errorf(EINVALID, "visit requires content or title")
	}
	return nil
}

// NewVisit builds a Visit from an extraction record. ID, ContentHash and
// Day are filled in by the visit service on record.
func NewVisit(c *ExtractedContent) *Visit {
	return &Visit{
		URL:              c.URL,
		Title:            c.Title,
		Domain:           c.Domain,
		Content:          c.Content,
		Type:             c.Type,
		ExtractionMethod: c.ExtractionMethod,
		Metadata:         c.Metadata,
		VisitedAt:        c.Timestamp,
	}
}

// VisitService represents a service for managing visit history.
type VisitService interface {
	// RecordVisit stores a visit. Recording a URL whose content hash
	// matches that URL's most recent visit is a no-op.
	RecordVisit(ctx context.Context, visit *Visit) error

	// FindVisitByID retrieves a visit by ID.
	// Returns ENOTFOUND if the visit does not exist.
	FindVisitByID(ctx context.Context, id string) (*Visit, error)

	// FindVisits retrieves visits matching the filter, newest first
	// unless the filter says otherwise.
	FindVisits(ctx context.Context, filter VisitFilter) ([]*Visit, error)

	// DeleteVisit permanently removes a visit.
	// Returns ENOTFOUND if the visit does not exist.
	DeleteVisit(ctx context.Context, id string) error

	// DeleteVisitsBefore removes all visits before the given day
	// (exclusive) and returns how many were removed.
	DeleteVisitsBefore(ctx context.Context, day string) (int, error)
}

// VisitFilter represents a filter for FindVisits.
type VisitFilter struct {
	ID     *string `json:"id"`
	URL    *string `json:"url"`
	Domain *string `json:"domain"`
	Day    *string `json:"day"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
