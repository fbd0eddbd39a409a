package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/gmllt/kanban/internal/adapter/http/dto"
	"github.com/gmllt/kanban/internal/core/ports"
)

// BoardHandler translates the HTTP surface into board service calls.
type BoardHandler struct {
	service ports.BoardService
}

func NewBoardHandler(service ports.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ListBoards(r.Context()))
}

func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid board payload")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeBadRequest(w, "board title is required")
		return
	}
	rec, err := h.service.CreateBoard(r.Context(), req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.GetBoard(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBoard(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
