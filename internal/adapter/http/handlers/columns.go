package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gmllt/kanban/internal/adapter/http/dto"
)

func (h *BoardHandler) AddColumn(w http.ResponseWriter, r *http.Request) {
	var req dto.AddColumnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid column payload")
		return
	}
	col, err := h.service.AddColumn(r.Context(), mux.Vars(r)["id"], req.Title, req.Status, req.WIPLimit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, col)
}

func (h *BoardHandler) RemoveColumn(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.service.RemoveColumn(r.Context(), vars["id"], vars["columnId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BoardHandler) ReorderColumns(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderColumnsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid order payload")
		return
	}
	rec, err := h.service.ReorderColumns(r.Context(), mux.Vars(r)["id"], req.Order)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
