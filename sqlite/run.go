package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/locrank"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ locrank.RunService = (*RunService)(nil)

// RunService implements locrank.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	var b [8]byte
	h := xxhash.Sum64String(content)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}

// CreateRun stores the run and all of its reports in one transaction.
func (s *RunService) CreateRun(ctx context.Context, run *locrank.Run, html string) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC().Truncate(time.Second)
	run.ContentHash = hashContent(html)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, url, content_hash, created_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.URL, run.ContentHash, run.CreatedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for i, report := range run.Reports {
		if err := insertReport(ctx, tx, run.ID, i, report); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertReport(ctx context.Context, tx *sql.Tx, runID string, position int, report *locrank.Report) error {
	result, err := tx.ExecContext(ctx, `
		INSERT INTO reports (run_id, position, tag, replaced)
		VALUES (?, ?, ?, ?)
	`, runID, position, report.Tag, report.Replaced)
	if err != nil {
		return err
	}
	reportID, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for i, entry := range report.Entries {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO entries (report_id, position, name)
			VALUES (?, ?, ?)
		`, reportID, i, entry.Name)
		if err != nil {
			return err
		}
		entryID, err := result.LastInsertId()
		if err != nil {
			return err
		}

		for j, loc := range entry.Locators {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO locators (entry_id, position, selector, rank)
				VALUES (?, ?, ?, ?)
			`, entryID, j, loc.Selector, loc.Rank); err != nil {
				return err
			}
		}
	}

	return nil
}

// FindRunByID retrieves a run with its reports in their original order.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*locrank.Run, error) {
	var run locrank.Run
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, content_hash, created_at
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.URL, &run.ContentHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, locrank.Errorf(locrank.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	if run.Reports, err = s.findReports(ctx, id); err != nil {
		return nil, err
	}

	return &run, nil
}

// findReports loads reports with one joined query. The connection pool
// holds a single connection, so rows must be drained before another query.
func (s *RunService) findReports(ctx context.Context, runID string) ([]*locrank.Report, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.tag, r.replaced, e.id, e.name, l.selector, l.rank
		FROM reports r
		LEFT JOIN entries e ON e.report_id = r.id
		LEFT JOIN locators l ON l.entry_id = e.id
		WHERE r.run_id = ?
		ORDER BY r.position, e.position, l.position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*locrank.Report
	var report *locrank.Report
	var lastReportID, lastEntryID int64 = -1, -1
	for rows.Next() {
		var (
			reportID int64
			tag      string
			replaced int
			entryID  sql.NullInt64
			name     sql.NullString
			selector sql.NullString
			rank     sql.NullInt64
		)
		if err := rows.Scan(&reportID, &tag, &replaced, &entryID, &name, &selector, &rank); err != nil {
			return nil, err
		}

		if reportID != lastReportID {
			report = locrank.NewReport(tag)
			report.Replaced = replaced
			reports = append(reports, report)
			lastReportID = reportID
		}
		if !entryID.Valid {
			continue
		}
		if entryID.Int64 != lastEntryID {
			report.Put(name.String, []locrank.Locator{})
			lastEntryID = entryID.Int64
		}
		if selector.Valid {
			last := &report.Entries[len(report.Entries)-1]
			last.Locators = append(last.Locators, locrank.Locator{Selector: selector.String, Rank: int(rank.Int64)})
		}
	}

	return reports, rows.Err()
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter locrank.RunFilter) ([]*locrank.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, content_hash, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*locrank.Run
	for rows.Next() {
		var run locrank.Run
		var createdAt string
		if err := rows.Scan(&run.ID, &run.URL, &run.ContentHash, &createdAt); err != nil {
			return nil, err
		}
		if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

// DeleteRun permanently removes a run. Reports, entries and locators
// cascade.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return locrank.Errorf(locrank.ENOTFOUND, "run not found")
	}

	return nil
}
