package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"talentrank/internal/app"
	"talentrank/internal/common"
	"talentrank/internal/domain/position"
	"talentrank/internal/http/response"
)

type PositionHandler struct {
	positions *app.PositionService
}

func NewPositionHandler(positions *app.PositionService) *PositionHandler {
	return &PositionHandler{positions: positions}
}

type positionRequest struct {
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Status       string   `json:"status"`
}

type positionStatusRequest struct {
	Status string `json:"status"`
}

func (h *PositionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if req.Title == "" {
		response.Error(w, common.NewError(common.CodeValidation, "title is required", nil))
		return
	}
	created, err := h.positions.Create(r.Context(), position.Position{
		Title:        req.Title,
		Department:   req.Department,
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       position.Status(req.Status),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *PositionHandler) Get(w http.ResponseWriter, r *http.Request) {
	positionID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.positions.Get(r.Context(), positionID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *PositionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 20
	offset := 0
	if value := r.URL.Query().Get("limit"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if value := r.URL.Query().Get("offset"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	status := position.Status(r.URL.Query().Get("status"))
	items, err := h.positions.List(r.Context(), limit, offset, status)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []position.Position{}
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *PositionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	positionID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req positionStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		response.Error(w, common.NewError(common.CodeValidation, "status is required", nil))
		return
	}
	updated, err := h.positions.UpdateStatus(r.Context(), positionID, position.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
