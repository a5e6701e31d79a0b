package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	id UUID PRIMARY KEY,
	jd_text TEXT NOT NULL,
	company_name TEXT,
	company_type TEXT,
	recommendation TEXT,
	risk_level TEXT,
	fresher_alignment TEXT,
	confidence_score DOUBLE PRECISION,
	full_result JSONB,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	is_saved BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_analyses_recommendation ON analyses (recommendation);

CREATE TABLE IF NOT EXISTS companies (
	id UUID PRIMARY KEY,
	name TEXT UNIQUE NOT NULL,
	aliases JSONB NOT NULL DEFAULT '[]'::jsonb,
	type TEXT NOT NULL,
	tier TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and ensures the schema exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// CreateAnalysis inserts a record, assigning ID and CreatedAt when unset.
func (s *PostgresStore) CreateAnalysis(ctx context.Context, rec *AnalysisRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO analyses
		 (id, jd_text, company_name, company_type, recommendation, risk_level,
		  fresher_alignment, confidence_score, full_result, created_at, is_saved)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.ID, rec.JDText, rec.CompanyName, rec.CompanyType, rec.Recommendation,
		rec.RiskLevel, rec.FresherAlignment, rec.ConfidenceScore, rec.FullResult,
		rec.CreatedAt, rec.IsSaved,
	)
	if err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

// GetAnalysis retrieves one analysis, or (nil, nil) when absent.
func (s *PostgresStore) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	err := s.pool.QueryRow(ctx,
		`SELECT id, jd_text, company_name, company_type, recommendation, risk_level,
		        fresher_alignment, confidence_score, full_result, created_at, is_saved
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.JDText, &rec.CompanyName, &rec.CompanyType, &rec.Recommendation,
		&rec.RiskLevel, &rec.FresherAlignment, &rec.ConfidenceScore, &rec.FullResult,
		&rec.CreatedAt, &rec.IsSaved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &rec, nil
}

// ListAnalyses returns summaries ordered newest first.
func (s *PostgresStore) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]AnalysisSummary, error) {
	if filters.Limit <= 0 {
		filters.Limit = defaultListLimit
	}

	query := `SELECT id, company_name, company_type, recommendation, risk_level,
	                 confidence_score, created_at, is_saved
	          FROM analyses WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Recommendation != "" {
		query += fmt.Sprintf(" AND recommendation = $%d", argNum)
		args = append(args, filters.Recommendation)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC OFFSET $%d LIMIT $%d", argNum, argNum+1)
	args = append(args, filters.Skip, filters.Limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var out []AnalysisSummary
	for rows.Next() {
		var a AnalysisSummary
		if err := rows.Scan(&a.ID, &a.CompanyName, &a.CompanyType, &a.Recommendation,
			&a.RiskLevel, &a.ConfidenceScore, &a.CreatedAt, &a.IsSaved); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// MarkSaved flags an analysis as kept by the user.
func (s *PostgresStore) MarkSaved(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.pool.Exec(ctx, `UPDATE analyses SET is_saved = TRUE WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to save analysis: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// DeleteAnalysis removes an analysis.
func (s *PostgresStore) DeleteAnalysis(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// ListCompanies returns the companies catalog ordered by name.
func (s *PostgresStore) ListCompanies(ctx context.Context) ([]CompanyRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, aliases, type, tier FROM companies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var out []CompanyRecord
	for rows.Next() {
		var c CompanyRecord
		var aliases []byte
		if err := rows.Scan(&c.ID, &c.Name, &aliases, &c.Type, &c.Tier); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		if err := json.Unmarshal(aliases, &c.Aliases); err != nil {
			return nil, fmt.Errorf("failed to decode aliases for %s: %w", c.Name, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SeedCompanies inserts missing records and returns how many were added.
func (s *PostgresStore) SeedCompanies(ctx context.Context, records []CompanyRecord) (int, error) {
	added := 0
	for _, rec := range records {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		aliases, err := json.Marshal(rec.Aliases)
		if err != nil {
			return added, fmt.Errorf("failed to encode aliases for %s: %w", rec.Name, err)
		}

		result, err := s.pool.Exec(ctx,
			`INSERT INTO companies (id, name, aliases, type, tier)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (name) DO NOTHING`,
			rec.ID, rec.Name, aliases, rec.Type, rec.Tier,
		)
		if err != nil {
			return added, fmt.Errorf("failed to seed company %s: %w", rec.Name, err)
		}
		added += int(result.RowsAffected())
	}
	return added, nil
}
