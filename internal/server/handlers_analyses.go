package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/analyzejd/analyzejd/internal/db"
	"github.com/analyzejd/analyzejd/internal/types"
)

// handleAnalyze runs the analysis pipeline on a job description and stores
// the result.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Job description must be at least 50 characters")
		return
	}

	result := s.pipeline.Analyze(r.Context(), req.JobDescription)

	fullResult, err := json.Marshal(result.Response)
	if err != nil {
		s.log.Error("marshaling analysis result", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to encode analysis")
		return
	}

	rec := &db.AnalysisRecord{
		JDText:           req.JobDescription,
		CompanyName:      result.Quick.CompanyName,
		CompanyType:      string(result.Quick.Company.Type),
		Recommendation:   string(result.Verdict.Recommendation),
		RiskLevel:        string(result.Verdict.RiskLevel),
		FresherAlignment: string(result.Verdict.FresherAlignment),
		ConfidenceScore:  result.Quick.ConfidenceScore,
		FullResult:       fullResult,
	}
	if err := s.store.CreateAnalysis(r.Context(), rec); err != nil {
		s.log.Error("storing analysis", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to store analysis")
		return
	}

	result.Response.ID = rec.ID.String()
	s.jsonResponse(w, http.StatusOK, result.Response)
}

// handleListAnalyses returns past analysis summaries, newest first.
// Supports skip, limit, and recommendation query parameters.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := db.AnalysisFilters{
		Skip:           queryInt(q.Get("skip"), 0),
		Limit:          queryInt(q.Get("limit"), 0),
		Recommendation: q.Get("recommendation"),
	}

	analyses, err := s.store.ListAnalyses(r.Context(), filters)
	if err != nil {
		s.log.Error("listing analyses", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}

	if analyses == nil {
		analyses = []db.AnalysisSummary{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"count":    len(analyses),
		"analyses": analyses,
	})
}

// handleGetAnalysis returns a single stored analysis, including the original
// JD text and the full result document.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := s.analysisID(w, r)
	if err != nil {
		return
	}

	rec, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.log.Error("fetching analysis", zap.Error(err), zap.String("id", id.String()))
		s.errorResponse(w, http.StatusInternalServerError, "failed to fetch analysis")
		return
	}
	if rec == nil {
		s.errorResponse(w, HTTPStatus(&ErrAnalysisNotFound{ID: id}), "Analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":                rec.ID,
		"jd_text":           rec.JDText,
		"company_name":      rec.CompanyName,
		"company_type":      rec.CompanyType,
		"recommendation":    rec.Recommendation,
		"risk_level":        rec.RiskLevel,
		"fresher_alignment": rec.FresherAlignment,
		"confidence_score":  rec.ConfidenceScore,
		"full_result":       json.RawMessage(rec.FullResult),
		"created_at":        rec.CreatedAt,
		"is_saved":          rec.IsSaved,
	})
}

// handleSaveAnalysis marks an analysis as saved.
func (s *Server) handleSaveAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := s.analysisID(w, r)
	if err != nil {
		return
	}

	ok, err := s.store.MarkSaved(r.Context(), id)
	if err != nil {
		s.log.Error("saving analysis", zap.Error(err), zap.String("id", id.String()))
		s.errorResponse(w, http.StatusInternalServerError, "failed to save analysis")
		return
	}
	if !ok {
		s.errorResponse(w, HTTPStatus(&ErrAnalysisNotFound{ID: id}), "Analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"status": "saved", "id": id})
}

// handleDeleteAnalysis removes an analysis.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := s.analysisID(w, r)
	if err != nil {
		return
	}

	ok, err := s.store.DeleteAnalysis(r.Context(), id)
	if err != nil {
		s.log.Error("deleting analysis", zap.Error(err), zap.String("id", id.String()))
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete analysis")
		return
	}
	if !ok {
		s.errorResponse(w, HTTPStatus(&ErrAnalysisNotFound{ID: id}), "Analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"status": "deleted", "id": id})
}

// analysisID parses the {id} path parameter, writing the error response
// itself when the value is not a UUID.
func (s *Server) analysisID(w http.ResponseWriter, r *http.Request) (uuid.UUID, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		invalid := &ErrInvalidID{Value: raw}
		s.errorResponse(w, HTTPStatus(invalid), invalid.Error())
		return uuid.Nil, invalid
	}
	return id, nil
}

// queryInt parses a non-negative integer query parameter.
func queryInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}
