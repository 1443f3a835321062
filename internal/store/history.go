package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"jobtrack-engine/internal/domain"
)

// SearchHistory is an append-only record of past searches and what they
// returned. It doubles as a secondary read-through cache; it is never
// authoritative, and a missing or broken database only costs latency.
type SearchHistory struct {
	DB *sql.DB
}

func historyKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Append records one completed search. Rows are never updated or deleted.
func (h *SearchHistory) Append(ctx context.Context, query, location string, jobs []domain.Posting) error {
	b, err := json.Marshal(jobs)
	if err != nil {
		return err
	}

	_, err = h.DB.ExecContext(ctx, `
INSERT INTO searches(query, location, searched_at, jobs)
VALUES(?,?,?,?);`,
		historyKey(query),
		historyKey(location),
		time.Now().UTC().Format(time.RFC3339),
		string(b),
	)
	return err
}

// Recent returns the postings of the newest recorded search for (query,
// location) if it happened within maxAge, else nil.
func (h *SearchHistory) Recent(ctx context.Context, query, location string, maxAge time.Duration) ([]domain.Posting, error) {
	row := h.DB.QueryRowContext(ctx, `
SELECT searched_at, jobs
FROM searches
WHERE query = ? AND location = ?
ORDER BY searched_at DESC
LIMIT 1;`,
		historyKey(query), historyKey(location),
	)

	var atStr, jobsJSON string
	if err := row.Scan(&atStr, &jobsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	at, err := time.Parse(time.RFC3339, atStr)
	if err != nil {
		return nil, err
	}
	if time.Since(at) > maxAge {
		return nil, nil
	}

	var jobs []domain.Posting
	if err := json.Unmarshal([]byte(jobsJSON), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
