package handlers

import (
	"net/http"

	"talentrank/internal/app"
	"talentrank/internal/common"
	"talentrank/internal/http/metrics"
	"talentrank/internal/http/middleware"
	"talentrank/internal/http/response"
)

type CandidateHandler struct {
	importer   *app.ImportService
	rankings   *app.RankingService
	candidates *app.CandidateService
	limiter    middleware.Limiter
	collector  *metrics.Collector
}

func NewCandidateHandler(importer *app.ImportService, rankings *app.RankingService, candidates *app.CandidateService, limiter middleware.Limiter, collector *metrics.Collector) *CandidateHandler {
	return &CandidateHandler{importer: importer, rankings: rankings, candidates: candidates, limiter: limiter, collector: collector}
}

type importResponse struct {
	Imported int `json:"imported"`
}

func (h *CandidateHandler) Import(w http.ResponseWriter, r *http.Request) {
	positionID, err := idFromPath(r, 3)
	if err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		key := middleware.ImportKey(positionID.String(), middleware.ClientIP(r))
		if !h.limiter.Allow(key, middleware.ImportLimit) {
			response.Error(w, common.NewError(common.CodeRateLimited, "import rate limit exceeded", nil))
			return
		}
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "file is required", err))
		return
	}
	defer file.Close()

	imported, err := h.importer.ImportCSV(r.Context(), positionID, file)
	if err != nil {
		response.Error(w, err)
		return
	}
	if h.collector != nil {
		h.collector.IncImports()
	}
	response.JSON(w, http.StatusCreated, importResponse{Imported: imported})
}

func (h *CandidateHandler) Rank(w http.ResponseWriter, r *http.Request) {
	positionID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		key := middleware.RankKey(positionID.String(), middleware.ClientIP(r))
		if !h.limiter.Allow(key, middleware.RankLimit) {
			response.Error(w, common.NewError(common.CodeRateLimited, "rank rate limit exceeded", nil))
			return
		}
	}
	ranked, err := h.rankings.Rank(r.Context(), positionID)
	if err != nil {
		response.Error(w, err)
		return
	}
	if h.collector != nil {
		h.collector.IncRankings()
	}
	response.JSON(w, http.StatusOK, ranked)
}

func (h *CandidateHandler) ListByPosition(w http.ResponseWriter, r *http.Request) {
	positionID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.candidates.ListByPosition(r.Context(), positionID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	candidateID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.candidates.Delete(r.Context(), candidateID); err != nil {
		response.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
