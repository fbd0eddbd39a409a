package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gmllt/kanban/internal/adapter/http/dto"
	"github.com/gmllt/kanban/internal/adapter/http/mapper"
	"github.com/gmllt/kanban/internal/core/domain"
)

func (h *BoardHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid card payload")
		return
	}
	data, err := mapper.ToCardData(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	vars := mux.Vars(r)
	card, err := h.service.AddCard(r.Context(), vars["id"], vars["columnId"], data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (h *BoardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid card payload")
		return
	}
	patch, err := mapper.ToCardPatch(req)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	vars := mux.Vars(r)
	card, err := h.service.UpdateCard(r.Context(), vars["id"], vars["cardId"], patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (h *BoardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.service.DeleteCard(r.Context(), vars["id"], vars["cardId"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BoardHandler) MoveCard(w http.ResponseWriter, r *http.Request) {
	var req dto.MoveCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid move payload")
		return
	}
	vars := mux.Vars(r)
	rec, err := h.service.MoveCard(r.Context(), vars["id"], vars["cardId"], req.SourceColumnID, req.TargetColumnID, req.Position)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// FilterCards answers the board filter query with a card-id to visibility
// map; the frontend applies it to the DOM.
func (h *BoardHandler) FilterCards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var filters domain.CardFilters
	if p := q.Get("priority"); p != "" {
		priority, err := domain.ParsePriority(p)
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}
		filters.Priority = priority
	}
	filters.Label = q.Get("label")
	switch due := domain.DueBucket(q.Get("due")); due {
	case "", domain.DueOverdue, domain.DueToday, domain.DueWeek:
		filters.Due = due
	default:
		writeBadRequest(w, "invalid due filter")
		return
	}
	visible, err := h.service.FilterCards(r.Context(), mux.Vars(r)["id"], q.Get("q"), filters)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, visible)
}
