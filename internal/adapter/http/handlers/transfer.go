package handlers

import (
	"io"
	"net/http"
)

func (h *BoardHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Export(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="boards.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *BoardHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeBadRequest(w, "failed to read import body")
		return
	}
	if err := h.service.Import(r.Context(), data); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
