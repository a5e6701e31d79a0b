// Package db provides analysis and company storage. Two backends implement
// the same Store interface: PostgreSQL for deployments and SQLite for local
// single-binary use; the DATABASE_URL scheme selects between them.
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// defaultListLimit applies when a listing filter leaves Limit at zero.
const defaultListLimit = 20

// Store is the persistence boundary the server depends on. Lookup methods
// return (nil, nil) when the row does not exist; mutating methods that target
// a row report existence through their bool return.
type Store interface {
	// CreateAnalysis inserts a record, assigning ID and CreatedAt when unset.
	CreateAnalysis(ctx context.Context, rec *AnalysisRecord) error
	GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error)
	ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]AnalysisSummary, error)
	// MarkSaved flags an analysis as kept by the user.
	MarkSaved(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteAnalysis(ctx context.Context, id uuid.UUID) (bool, error)

	ListCompanies(ctx context.Context) ([]CompanyRecord, error)
	// SeedCompanies inserts the records that are not already present and
	// returns how many were added.
	SeedCompanies(ctx context.Context, records []CompanyRecord) (int, error)

	Close()
}

// Open connects to the store selected by the URL scheme: postgres:// or
// postgresql:// for PostgreSQL, sqlite:// (or a bare file path) for SQLite.
// Both backends create their tables on first use.
func Open(ctx context.Context, databaseURL string) (Store, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return ConnectPostgres(ctx, databaseURL)
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return OpenSQLite(ctx, strings.TrimPrefix(databaseURL, "sqlite://"))
	case databaseURL == "":
		return nil, fmt.Errorf("database URL is required")
	default:
		// Bare paths are treated as SQLite files.
		return OpenSQLite(ctx, databaseURL)
	}
}
