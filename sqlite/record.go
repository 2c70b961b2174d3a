package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/learnsearch/librarian"
)

// Compile-time interface verification.
var _ librarian.IndexService = (*RecordService)(nil)

// RecordService implements librarian.IndexService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

const recordColumns = `object_id, index_epoch, content_type, url, base_url, root_url, root_title,
	h1, h2, h3, h4, h5, h6, importance, priority, content, content_hash, date_indexed,
	thumbnail_url, keywords`

// SaveRecords saves records in a batch inside one transaction. Every record
// is validated before any is written. Saving an existing object ID replaces
// the previous version of the record.
func (s *RecordService) SaveRecords(ctx context.Context, records []*librarian.Record) error {
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		keywords, err := marshalKeywords(rec.Keywords)
		if err != nil {
			return err
		}
		_, err = stmt.ExecContext(ctx,
			rec.ObjectID, rec.IndexEpoch, string(rec.ContentType), rec.URL, rec.BaseURL,
			rec.RootURL, rec.RootTitle,
			rec.H1, rec.H2, rec.H3, rec.H4, rec.H5, rec.H6,
			rec.Importance, rec.Priority, rec.Content, rec.ContentHash,
			rec.DateIndexed.UTC().Format(time.RFC3339),
			rec.ThumbnailURL, keywords,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRecords retrieves records matching the filter, ordered by priority
// (descending) then object ID.
func (s *RecordService) FindRecords(ctx context.Context, filter librarian.RecordFilter) ([]*librarian.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.ObjectID != nil {
		query.WriteString(" AND object_id = ?")
		args = append(args, *filter.ObjectID)
	}
	if filter.RootURL != nil {
		query.WriteString(" AND root_url = ?")
		args = append(args, *filter.RootURL)
	}
	if filter.IndexEpoch != nil {
		query.WriteString(" AND index_epoch = ?")
		args = append(args, *filter.IndexEpoch)
	}

	query.WriteString(" ORDER BY priority DESC, object_id ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*librarian.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteByRootURL removes every record belonging to a root URL and returns
// the deleted object IDs.
func (s *RecordService) DeleteByRootURL(ctx context.Context, rootURL string) ([]string, error) {
	return s.deleteWhere(ctx, "root_url = ?", rootURL)
}

// ExpireRecords removes records of a root URL left over from indexing runs
// other than epoch, and returns the deleted object IDs.
func (s *RecordService) ExpireRecords(ctx context.Context, rootURL, epoch string) ([]string, error) {
	return s.deleteWhere(ctx, "root_url = ? AND index_epoch != ?", rootURL, epoch)
}

// deleteWhere deletes records matching the condition, returning their
// object IDs. The select and delete run in one transaction so the returned
// IDs exactly match what was removed.
func (s *RecordService) deleteWhere(ctx context.Context, cond string, args ...any) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, "SELECT object_id FROM records WHERE "+cond, args...)
	if err != nil {
		return nil, err
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records WHERE "+cond, args...); err != nil {
		return nil, err
	}

	return ids, tx.Commit()
}

// rowScanner abstracts sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*librarian.Record, error) {
	var rec librarian.Record
	var contentType, dateIndexed, keywords string

	err := row.Scan(
		&rec.ObjectID, &rec.IndexEpoch, &contentType, &rec.URL, &rec.BaseURL,
		&rec.RootURL, &rec.RootTitle,
		&rec.H1, &rec.H2, &rec.H3, &rec.H4, &rec.H5, &rec.H6,
		&rec.Importance, &rec.Priority, &rec.Content, &rec.ContentHash,
		&dateIndexed, &rec.ThumbnailURL, &keywords,
	)
	if err == sql.ErrNoRows {
		return nil, librarian.Errorf(librarian.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}

	rec.ContentType = librarian.ContentType(contentType)
	rec.DateIndexed, err = time.Parse(time.RFC3339, dateIndexed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date_indexed: %w", err)
	}
	rec.Keywords, err = unmarshalKeywords(keywords)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func marshalKeywords(keywords map[string][]string) (string, error) {
	if len(keywords) == 0 {
		return "", nil
	}
	b, err := json.Marshal(keywords)
	if err != nil {
		return "", fmt.Errorf("failed to encode keywords: %w", err)
	}
	return string(b), nil
}

func unmarshalKeywords(s string) (map[string][]string, error) {
	if s == "" {
		return nil, nil
	}
	var keywords map[string][]string
	if err := json.Unmarshal([]byte(s), &keywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}
	return keywords, nil
}
