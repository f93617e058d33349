package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/greenmtn-data/scent.report/internal/config"
)

// StandProfileRepo persists the stand-profile snapshot that
// config.StandProfileStore reloads into memory. preferred_winds is
// stored as a JSON blob since it's a variable-length list specific to
// each profile and never queried by field.
type StandProfileRepo struct {
	db *sql.DB
}

// NewStandProfileRepo wraps db for stand-profile persistence.
func NewStandProfileRepo(db *DB) *StandProfileRepo {
	return &StandProfileRepo{db: db.DB}
}

// Load returns every persisted stand profile, suitable for feeding
// directly into config.NewStandProfileStore or an existing store's
// Reload.
func (r *StandProfileRepo) Load() ([]config.StandProfile, error) {
	rows, err := r.db.Query(`
		SELECT id, display_name, preferred_winds_json, max_gust_mph, strategy_match, notes
		FROM stand_profiles
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("store: load stand profiles: %w", err)
	}
	defer rows.Close()

	var out []config.StandProfile
	for rows.Next() {
		var (
			p               config.StandProfile
			windsJSON       string
			maxGust         sql.NullFloat64
			strategyMatch   sql.NullString
			notes           sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.DisplayName, &windsJSON, &maxGust, &strategyMatch, &notes); err != nil {
			return nil, fmt.Errorf("store: scan stand profile: %w", err)
		}
		if err := json.Unmarshal([]byte(windsJSON), &p.PreferredWinds); err != nil {
			return nil, fmt.Errorf("store: stand profile %q: preferred_winds_json: %w", p.ID, err)
		}
		if maxGust.Valid {
			v := maxGust.Float64
			p.MaxGustMPH = &v
		}
		if strategyMatch.Valid {
			v := strategyMatch.String
			p.StrategyMatch = &v
		}
		if notes.Valid {
			v := notes.String
			p.Notes = &v
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Save upserts profiles in a single transaction, replacing any
// existing rows with matching IDs.
func (r *StandProfileRepo) Save(profiles []config.StandProfile) error {
	return retryOnBusy(func() error {
		tx, err := r.db.Begin()
		if err != nil {
			return fmt.Errorf("store: begin stand profile save: %w", err)
		}
		defer tx.Rollback()

		for _, p := range profiles {
			windsJSON, err := json.Marshal(p.PreferredWinds)
			if err != nil {
				return fmt.Errorf("store: stand profile %q: marshal preferred_winds: %w", p.ID, err)
			}
			_, err = tx.Exec(`
				INSERT INTO stand_profiles (id, display_name, preferred_winds_json, max_gust_mph, strategy_match, notes, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					display_name = excluded.display_name,
					preferred_winds_json = excluded.preferred_winds_json,
					max_gust_mph = excluded.max_gust_mph,
					strategy_match = excluded.strategy_match,
					notes = excluded.notes,
					updated_at = excluded.updated_at`,
				p.ID, p.DisplayName, string(windsJSON), p.MaxGustMPH, p.StrategyMatch, p.Notes, time.Now().Unix())
			if err != nil {
				return fmt.Errorf("store: upsert stand profile %q: %w", p.ID, err)
			}
		}
		return tx.Commit()
	})
}

// isSQLiteBusy reports whether err is sqlite's single-writer
// contention error, the only case retryOnBusy retries.
func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}

// retryOnBusy retries operation with exponential backoff when sqlite
// reports writer contention; any other error returns immediately.
func retryOnBusy(operation func() error) error {
	const maxRetries = 5
	const baseDelay = 10 * time.Millisecond

	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = operation()
		if err == nil {
			return nil
		}
		if !isSQLiteBusy(err) {
			return err
		}
		if attempt < maxRetries-1 {
			time.Sleep(baseDelay * (1 << uint(attempt)))
		}
	}
	return fmt.Errorf("store: operation failed after %d retries: %w", maxRetries, err)
}
