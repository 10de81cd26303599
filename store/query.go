package store

import "time"

// Revision is one entry in the append-only write audit log.
type Revision struct {
	ID            string
	WeekStartDate string
	SavedAt       time.Time
}

// ListDates returns every stored week-start date, descending, so the UI's
// week picker shows most recent first. Callers rely on this order.
func (s *SQLite) ListDates() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT week_start_date
		FROM weeks
		ORDER BY week_start_date DESC`)
	if err != nil {
		return nil, persistence("list dates", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, persistence("list dates", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("list dates", err)
	}
	return out, nil
}

// Delete removes the record for a week-start date and reports whether it
// existed. Revision rows are kept; the audit log is append-only.
func (s *SQLite) Delete(date string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM weeks WHERE week_start_date = ?`, date)
	if err != nil {
		return false, persistence("delete week", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, persistence("delete week", err)
	}
	return n > 0, nil
}

// Revisions lists the write history for one week, newest first. ULIDs are
// time-sortable so ordering by id orders by save time.
func (s *SQLite) Revisions(date string) ([]Revision, error) {
	rows, err := s.db.Query(`
		SELECT revision_id, week_start_date, saved_at
		FROM revisions
		WHERE week_start_date = ?
		ORDER BY revision_id DESC`, date)
	if err != nil {
		return nil, persistence("list revisions", err)
	}
	defer rows.Close()

	var out []Revision
	for rows.Next() {
		var r Revision
		if err := rows.Scan(&r.ID, &r.WeekStartDate, &r.SavedAt); err != nil {
			return nil, persistence("list revisions", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, persistence("list revisions", err)
	}
	return out, nil
}
