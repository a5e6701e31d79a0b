package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	id TEXT PRIMARY KEY,
	jd_text TEXT NOT NULL,
	company_name TEXT,
	company_type TEXT,
	recommendation TEXT,
	risk_level TEXT,
	fresher_alignment TEXT,
	confidence_score REAL,
	full_result TEXT,
	created_at TIMESTAMP NOT NULL,
	is_saved INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_analyses_recommendation ON analyses (recommendation);

CREATE TABLE IF NOT EXISTS companies (
	id TEXT PRIMARY KEY,
	name TEXT UNIQUE NOT NULL,
	aliases TEXT NOT NULL DEFAULT '[]',
	type TEXT NOT NULL,
	tier TEXT NOT NULL
);
`

// SQLiteStore implements Store on an embedded SQLite database. It serves
// single-binary local deployments where running PostgreSQL is overkill.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a SQLite database at the given path.
// ":memory:" gives an ephemeral store.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// The sqlite driver does not support concurrent writers on one file.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if _, err := sqlDB.ExecContext(ctx, sqliteSchema); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: sqlDB}, nil
}

// Close closes the database handle.
func (s *SQLiteStore) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// CreateAnalysis inserts a record, assigning ID and CreatedAt when unset.
func (s *SQLiteStore) CreateAnalysis(ctx context.Context, rec *AnalysisRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses
		 (id, jd_text, company_name, company_type, recommendation, risk_level,
		  fresher_alignment, confidence_score, full_result, created_at, is_saved)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.JDText, rec.CompanyName, rec.CompanyType, rec.Recommendation,
		rec.RiskLevel, rec.FresherAlignment, rec.ConfidenceScore, string(rec.FullResult),
		rec.CreatedAt.Format(time.RFC3339Nano), boolToInt(rec.IsSaved),
	)
	if err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

// GetAnalysis retrieves one analysis, or (nil, nil) when absent.
func (s *SQLiteStore) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var (
		rec        AnalysisRecord
		rawID      string
		fullResult string
		createdAt  string
		isSaved    int
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, jd_text, company_name, company_type, recommendation, risk_level,
		        fresher_alignment, confidence_score, full_result, created_at, is_saved
		 FROM analyses WHERE id = ?`,
		id.String(),
	).Scan(&rawID, &rec.JDText, &rec.CompanyName, &rec.CompanyType, &rec.Recommendation,
		&rec.RiskLevel, &rec.FresherAlignment, &rec.ConfidenceScore, &fullResult,
		&createdAt, &isSaved)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	rec.ID, err = uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("corrupt analysis id %q: %w", rawID, err)
	}
	rec.FullResult = []byte(fullResult)
	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("corrupt created_at %q: %w", createdAt, err)
	}
	rec.IsSaved = isSaved != 0
	return &rec, nil
}

// ListAnalyses returns summaries ordered newest first.
func (s *SQLiteStore) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]AnalysisSummary, error) {
	if filters.Limit <= 0 {
		filters.Limit = defaultListLimit
	}

	query := `SELECT id, company_name, company_type, recommendation, risk_level,
	                 confidence_score, created_at, is_saved
	          FROM analyses WHERE 1=1`
	args := []any{}

	if filters.Recommendation != "" {
		query += " AND recommendation = ?"
		args = append(args, filters.Recommendation)
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filters.Limit, filters.Skip)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var out []AnalysisSummary
	for rows.Next() {
		var (
			a         AnalysisSummary
			rawID     string
			createdAt string
			isSaved   int
		)
		if err := rows.Scan(&rawID, &a.CompanyName, &a.CompanyType, &a.Recommendation,
			&a.RiskLevel, &a.ConfidenceScore, &createdAt, &isSaved); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		if a.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("corrupt analysis id %q: %w", rawID, err)
		}
		if a.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("corrupt created_at %q: %w", createdAt, err)
		}
		a.IsSaved = isSaved != 0
		out = append(out, a)
	}
	return out, rows.Err()
}

// MarkSaved flags an analysis as kept by the user.
func (s *SQLiteStore) MarkSaved(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE analyses SET is_saved = 1 WHERE id = ?`, id.String())
	if err != nil {
		return false, fmt.Errorf("failed to save analysis: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to save analysis: %w", err)
	}
	return n > 0, nil
}

// DeleteAnalysis removes an analysis.
func (s *SQLiteStore) DeleteAnalysis(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM analyses WHERE id = ?`, id.String())
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return n > 0, nil
}

// ListCompanies returns the companies catalog ordered by name.
func (s *SQLiteStore) ListCompanies(ctx context.Context) ([]CompanyRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, aliases, type, tier FROM companies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var out []CompanyRecord
	for rows.Next() {
		var (
			c       CompanyRecord
			rawID   string
			aliases string
		)
		if err := rows.Scan(&rawID, &c.Name, &aliases, &c.Type, &c.Tier); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		if c.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("corrupt company id %q: %w", rawID, err)
		}
		if err := json.Unmarshal([]byte(aliases), &c.Aliases); err != nil {
			return nil, fmt.Errorf("failed to decode aliases for %s: %w", c.Name, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SeedCompanies inserts missing records and returns how many were added.
func (s *SQLiteStore) SeedCompanies(ctx context.Context, records []CompanyRecord) (int, error) {
	added := 0
	for _, rec := range records {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		aliases, err := json.Marshal(rec.Aliases)
		if err != nil {
			return added, fmt.Errorf("failed to encode aliases for %s: %w", rec.Name, err)
		}

		result, err := s.db.ExecContext(ctx,
			`INSERT INTO companies (id, name, aliases, type, tier)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT (name) DO NOTHING`,
			rec.ID.String(), rec.Name, string(aliases), rec.Type, rec.Tier,
		)
		if err != nil {
			return added, fmt.Errorf("failed to seed company %s: %w", rec.Name, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return added, fmt.Errorf("failed to seed company %s: %w", rec.Name, err)
		}
		added += int(n)
	}
	return added, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
