package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/gmllt/kanban/internal/adapter/http/dto"
	"github.com/gmllt/kanban/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

// writeError maps domain errors onto HTTP statuses. Anything unrecognized
// is treated as a store fault.
func writeError(w http.ResponseWriter, err error) {
	var capErr *domain.CapacityError
	switch {
	case errors.As(err, &capErr):
		writeJSON(w, http.StatusConflict, dto.ErrorResponse{
			Error:  capErr.Error(),
			Column: capErr.ColumnTitle,
			Limit:  capErr.Limit,
		})
	case errors.Is(err, domain.ErrBoardNotFound),
		errors.Is(err, domain.ErrColumnNotFound),
		errors.Is(err, domain.ErrCardNotFound):
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrStatusConflict):
		writeJSON(w, http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrMissingID),
		errors.Is(err, domain.ErrMalformedImport):
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		zap.L().Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}
