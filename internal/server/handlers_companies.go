package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/analyzejd/analyzejd/internal/companies"
	"github.com/analyzejd/analyzejd/internal/db"
)

// handleListCompanies returns all companies known to the store.
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.ListCompanies(r.Context())
	if err != nil {
		s.log.Error("listing companies", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list companies")
		return
	}

	if records == nil {
		records = []db.CompanyRecord{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"count":     len(records),
		"companies": records,
	})
}

// handleSeedCompanies loads the built-in company catalog into the store.
// Companies already present are left untouched.
func (s *Server) handleSeedCompanies(w http.ResponseWriter, r *http.Request) {
	entries := companies.All()
	records := make([]db.CompanyRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, db.CompanyRecord{
			Name:    e.Name,
			Aliases: e.Aliases,
			Type:    string(e.Type),
			Tier:    string(e.Tier),
		})
	}

	added, err := s.store.SeedCompanies(r.Context(), records)
	if err != nil {
		s.log.Error("seeding companies", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to seed companies")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":          "seeded",
		"companies_added": added,
	})
}
