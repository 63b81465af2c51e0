package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vijay-prabhu/careerfit/internal/artifact"
)

// ReplaceIndustryJobs swaps the stored industry table for records, keeping
// their order, and records the import source
func (db *DB) ReplaceIndustryJobs(ctx context.Context, records []artifact.IndustryRecord, source string) error {
	now := time.Now()

	return db.Transaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM industry_records`); err != nil {
			return fmt.Errorf("failed to clear industry records: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO industry_records (id, position, job_title, required_skills, created_at)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, rec := range records {
			var skills sql.NullString
			if rec.HasSkills {
				skills = sql.NullString{String: rec.RequiredSkills, Valid: true}
			}
			if _, err := stmt.ExecContext(ctx, uuid.New().String(), i, rec.JobTitle, skills, now); err != nil {
				return fmt.Errorf("failed to insert %q: %w", rec.JobTitle, err)
			}
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE import_state SET
				last_import_at = ?, source = ?, records_imported = ?
			WHERE id = 1
		`, now, source, len(records))
		return err
	})
}

// ListIndustryJobs lists stored jobs in import order
func (db *DB) ListIndustryJobs(ctx context.Context, opts ListOptions) ([]IndustryJob, error) {
	query := `
		SELECT id, position, job_title, required_skills, created_at
		FROM industry_records
	`
	var conditions []string
	var args []interface{}

	if opts.Title != nil {
		conditions = append(conditions, "LOWER(job_title) LIKE LOWER(?)")
		args = append(args, "%"+*opts.Title+"%")
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY position"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []IndustryJob
	for rows.Next() {
		var j IndustryJob
		var skills sql.NullString
		if err := rows.Scan(&j.ID, &j.Position, &j.JobTitle, &skills, &j.CreatedAt); err != nil {
			return nil, err
		}
		j.RequiredSkills = StringPtr(skills)
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

// IndustryRecords returns the whole stored table in import order
func (db *DB) IndustryRecords(ctx context.Context) ([]artifact.IndustryRecord, error) {
	jobs, err := db.ListIndustryJobs(ctx, ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list industry records: %w", err)
	}

	records := make([]artifact.IndustryRecord, len(jobs))
	for i, j := range jobs {
		records[i] = j.Record()
	}
	return records, nil
}

// CountIndustryJobs returns the number of stored jobs
func (db *DB) CountIndustryJobs(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM industry_records`).Scan(&count)
	return count, err
}

// GetImportState retrieves the last import bookkeeping
func (db *DB) GetImportState(ctx context.Context) (*ImportState, error) {
	state := &ImportState{}
	var lastImportAt sql.NullTime
	var source sql.NullString

	err := db.QueryRowContext(ctx, `
		SELECT last_import_at, source, records_imported
		FROM import_state WHERE id = 1
	`).Scan(&lastImportAt, &source, &state.RecordsImported)
	if err != nil {
		return nil, err
	}

	if lastImportAt.Valid {
		state.LastImportAt = &lastImportAt.Time
	}
	state.Source = StringPtr(source)
	return state, nil
}
