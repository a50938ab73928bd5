package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/ranjeethpt/openowl"
)

// Compile-time interface verification.
var _ openowl.VisitService = (*VisitService)(nil)

// VisitService implements openowl.VisitService using SQLite.
type VisitService struct {
	db *DB
}

// NewVisitService creates a new VisitService.
func NewVisitService(db *DB) *VisitService {
	return &VisitService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// RecordVisit stores a visit. Recording a URL whose content hash matches
// that URL's most recent visit is a no-op, so a page that hasn't changed
// between triggers is logged once.
func (s *VisitService) RecordVisit(ctx context.Context, visit *openowl.Visit) error {
	if err := visit.Validate(); err != nil {
		return err
	}

	if visit.VisitedAt.IsZero() {
		visit.VisitedAt = time.Now().UTC()
	}
	visit.ID = uuid.New().String()
	visit.ContentHash = hashContent(visit.Content)
	visit.Day = visit.VisitedAt.UTC().Format(openowl.DayFormat)

	// Duplicate check against the most recent visit for the same URL.
	var lastHash string
	err := s.db.QueryRowContext(ctx, `
		SELECT content_hash FROM visits
		WHERE url = ?
		ORDER BY visited_at DESC
		LIMIT 1
	`, visit.URL).Scan(&lastHash)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if err == nil && lastHash == visit.ContentHash {
		return nil
	}

	metadata, err := encodeMetadata(visit.Metadata)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO visits (id, url, title, domain, content, type, extraction_method, metadata, content_hash, day, visited_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, visit.ID, visit.URL, visit.Title, visit.Domain, visit.Content, visit.Type,
		string(visit.ExtractionMethod), metadata, visit.ContentHash, visit.Day,
		visit.VisitedAt.Format(time.RFC3339))

	return err
}

// FindVisitByID retrieves a visit by ID.
func (s *VisitService) FindVisitByID(ctx context.Context, id string) (*openowl.Visit, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, domain, content, type, extraction_method, metadata, content_hash, day, visited_at
		FROM visits
		WHERE id = ?
	`, id)

	visit, err := scanVisit(row.Scan)
	if err == sql.ErrNoRows {
		return nil, openowl.Errorf(openowl.ENOTFOUND, "visit not found")
	}
	if err != nil {
		return nil, err
	}
	return visit, nil
}

// FindVisits retrieves visits matching the filter, newest first.
func (s *VisitService) FindVisits(ctx context.Context, filter openowl.VisitFilter) ([]*openowl.Visit, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, domain, content, type, extraction_method, metadata, content_hash, day, visited_at FROM visits WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Domain != nil {
		query.WriteString(" AND domain = ?")
		args = append(args, *filter.Domain)
	}
	if filter.Day != nil {
		query.WriteString(" AND day = ?")
		args = append(args, *filter.Day)
	}

	query.WriteString(" ORDER BY visited_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []*openowl.Visit
	for rows.Next() {
		visit, err := scanVisit(rows.Scan)
		if err != nil {
			return nil, err
		}
		visits = append(visits, visit)
	}
	return visits, rows.Err()
}

// DeleteVisit permanently removes a visit.
func (s *VisitService) DeleteVisit(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM visits WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return openowl.Errorf(openowl.ENOTFOUND, "visit not found")
	}
	return nil
}

// DeleteVisitsBefore removes all visits before the given day (exclusive).
func (s *VisitService) DeleteVisitsBefore(ctx context.Context, day string) (int, error) {
	if _, err := time.Parse(openowl.DayFormat, day); err != nil {
		return 0, openowl.Errorf(openowl.EINVALID, "invalid day %q, want YYYY-MM-DD", day)
	}
	result, err := s.db.ExecContext(ctx, "DELETE FROM visits WHERE day < ?", day)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// scanVisit reads one visit row via the given scan function.
func scanVisit(scan func(dest ...any) error) (*openowl.Visit, error) {
	var visit openowl.Visit
	var method, metadata, visitedAt string

	if err := scan(&visit.ID, &visit.URL, &visit.Title, &visit.Domain, &visit.Content,
		&visit.Type, &method, &metadata, &visit.ContentHash, &visit.Day, &visitedAt); err != nil {
		return nil, err
	}

	visit.ExtractionMethod = openowl.ExtractionMethod(method)

	m, err := decodeMetadata(metadata)
	if err != nil {
		return nil, err
	}
	visit.Metadata = m

	visit.VisitedAt, err = parseRFC3339(visitedAt, "visited_at")
	if err != nil {
		return nil, err
	}

	return &visit, nil
}
