package database

import (
	"database/sql"
	"time"

	"github.com/vijay-prabhu/careerfit/internal/artifact"
)

// IndustryJob is a stored reference job
type IndustryJob struct {
	ID             string    `json:"id"`
	Position       int       `json:"position"`
	JobTitle       string    `json:"job_title"`
	RequiredSkills *string   `json:"required_skills,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Record converts the row into the form the analyzer reads
func (j IndustryJob) Record() artifact.IndustryRecord {
	rec := artifact.IndustryRecord{JobTitle: j.JobTitle}
	if j.RequiredSkills != nil {
		rec.RequiredSkills = *j.RequiredSkills
		rec.HasSkills = true
	}
	return rec
}

// ImportState tracks the last import
type ImportState struct {
	LastImportAt    *time.Time `json:"last_import_at,omitempty"`
	Source          *string    `json:"source,omitempty"`
	RecordsImported int        `json:"records_imported"`
}

// ListOptions contains options for listing industry jobs
type ListOptions struct {
	// Title filters by a case-insensitive substring of the job title
	Title  *string
	Limit  int
	Offset int
}

// NullString is a helper to convert *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr converts sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
