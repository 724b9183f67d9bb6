// internal/daily/tracker.go
//
// SQLite-backed completion tracking for daily puzzles. One row per
// (slot, length, maxRows, date); marking is idempotent via INSERT OR
// IGNORE. The canonical parameter order everywhere is
// (length, maxRows, dateISO).

package daily

import (
	"context"
	"database/sql"
)

// Tracker records which daily puzzles a player slot has completed.
type Tracker struct {
	db   *sql.DB
	slot string
}

// NewTracker binds a Tracker to a player slot.
func NewTracker(db *sql.DB, slot string) *Tracker {
	return &Tracker{db: db, slot: slot}
}

// IsDailyCompleted reports whether the puzzle has been finished or
// abandoned.
func (t *Tracker) IsDailyCompleted(ctx context.Context, length, maxRows int, dateISO string) (bool, error) {
	var cnt int
	err := t.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_completions WHERE slot=? AND length=? AND max_rows=? AND date=?`,
		t.slot, length, maxRows, dateISO,
	).Scan(&cnt)
	return cnt > 0, err
}

// MarkDailyCompleted records the puzzle as done. Marking twice is a no-op.
func (t *Tracker) MarkDailyCompleted(ctx context.Context, length, maxRows int, dateISO string) error {
	_, err := t.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_completions(slot, length, max_rows, date) VALUES(?,?,?,?)`,
		t.slot, length, maxRows, dateISO,
	)
	return err
}

// CompletedDates lists the completed dates for a word length, ascending.
func (t *Tracker) CompletedDates(ctx context.Context, length int) ([]string, error) {
	rows, err := t.db.QueryContext(ctx,
		`SELECT date FROM daily_completions WHERE slot=? AND length=? ORDER BY date ASC`,
		t.slot, length,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ClearCompletion removes a completion record, reopening the puzzle.
func (t *Tracker) ClearCompletion(ctx context.Context, length, maxRows int, dateISO string) error {
	_, err := t.db.ExecContext(ctx,
		`DELETE FROM daily_completions WHERE slot=? AND length=? AND max_rows=? AND date=?`,
		t.slot, length, maxRows, dateISO,
	)
	return err
}
