package db

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func sampleRecord(company, recommendation string) *AnalysisRecord {
	return &AnalysisRecord{
		JDText:           "A job description long enough to have been analyzed.",
		CompanyName:      company,
		CompanyType:      "Service",
		Recommendation:   recommendation,
		RiskLevel:        "Medium",
		FresherAlignment: "Good",
		ConfidenceScore:  0.72,
		FullResult:       []byte(`{"confidence":{"overall_confidence":0.72}}`),
	}
}

func TestCreateAndGetAnalysis(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := sampleRecord("Infosys", "Apply with Caution")
	require.NoError(t, store.CreateAnalysis(ctx, rec))
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := store.GetAnalysis(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "Infosys", got.CompanyName)
	assert.Equal(t, "Apply with Caution", got.Recommendation)
	assert.Equal(t, 0.72, got.ConfidenceScore)
	assert.JSONEq(t, string(rec.FullResult), string(got.FullResult))
	assert.False(t, got.IsSaved)
}

func TestGetAnalysis_NotFound(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetAnalysis(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListAnalyses_OrderAndPaging(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	ids := make([]uuid.UUID, 5)
	for i := 0; i < 5; i++ {
		rec := sampleRecord("TCS", "Skip")
		rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.CreateAnalysis(ctx, rec))
		ids[i] = rec.ID
	}

	// Newest first.
	all, err := store.ListAnalyses(ctx, AnalysisFilters{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, ids[4], all[0].ID)
	assert.Equal(t, ids[0], all[4].ID)

	// Skip and limit.
	page, err := store.ListAnalyses(ctx, AnalysisFilters{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[3], page[0].ID)
	assert.Equal(t, ids[2], page[1].ID)
}

func TestListAnalyses_RecommendationFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateAnalysis(ctx, sampleRecord("Google", "Apply")))
	require.NoError(t, store.CreateAnalysis(ctx, sampleRecord("TCS", "Skip")))
	require.NoError(t, store.CreateAnalysis(ctx, sampleRecord("Wipro", "Skip")))

	skips, err := store.ListAnalyses(ctx, AnalysisFilters{Recommendation: "Skip"})
	require.NoError(t, err)
	assert.Len(t, skips, 2)
	for _, a := range skips {
		assert.Equal(t, "Skip", a.Recommendation)
	}
}

func TestListAnalyses_DefaultLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < defaultListLimit+5; i++ {
		require.NoError(t, store.CreateAnalysis(ctx, sampleRecord("X", "Apply")))
	}

	all, err := store.ListAnalyses(ctx, AnalysisFilters{})
	require.NoError(t, err)
	assert.Len(t, all, defaultListLimit)
}

func TestMarkSaved(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := sampleRecord("Zerodha", "Apply")
	require.NoError(t, store.CreateAnalysis(ctx, rec))

	ok, err := store.MarkSaved(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := store.GetAnalysis(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSaved)

	ok, err = store.MarkSaved(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteAnalysis(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := sampleRecord("Paytm", "Apply")
	require.NoError(t, store.CreateAnalysis(ctx, rec))

	ok, err := store.DeleteAnalysis(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := store.GetAnalysis(ctx, rec.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = store.DeleteAnalysis(ctx, rec.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSeedAndListCompanies(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	records := []CompanyRecord{
		{Name: "TCS", Aliases: []string{"tcs", "tata consultancy services"}, Type: "Service", Tier: "Tier-1"},
		{Name: "Google", Aliases: []string{"google"}, Type: "Product", Tier: "FAANGM"},
	}

	added, err := store.SeedCompanies(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	// Seeding again adds nothing.
	added, err = store.SeedCompanies(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	got, err := store.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Google", got[0].Name)
	assert.Equal(t, []string{"google"}, got[0].Aliases)
	assert.Equal(t, "TCS", got[1].Name)
}

func TestOpen_SchemeDispatch(t *testing.T) {
	store, err := Open(context.Background(), "sqlite://:memory:")
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*SQLiteStore)
	assert.True(t, ok)
}

func TestOpen_EmptyURL(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}
