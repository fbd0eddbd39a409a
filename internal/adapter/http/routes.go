package http

import (
	"github.com/gorilla/mux"

	"github.com/gmllt/kanban/internal/adapter/http/handlers"
)

func RegisterRoutes(r *mux.Router, h *handlers.BoardHandler) {
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/boards", h.ListBoards).Methods("GET")
	api.HandleFunc("/boards", h.CreateBoard).Methods("POST")
	api.HandleFunc("/boards/{id}", h.GetBoard).Methods("GET")
	api.HandleFunc("/boards/{id}", h.DeleteBoard).Methods("DELETE")

	api.HandleFunc("/boards/{id}/columns", h.AddColumn).Methods("POST")
	api.HandleFunc("/boards/{id}/columns/order", h.ReorderColumns).Methods("PUT")
	api.HandleFunc("/boards/{id}/columns/{columnId}", h.RemoveColumn).Methods("DELETE")
	api.HandleFunc("/boards/{id}/columns/{columnId}/cards", h.AddCard).Methods("POST")

	api.HandleFunc("/boards/{id}/cards", h.FilterCards).Methods("GET")
	api.HandleFunc("/boards/{id}/cards/{cardId}", h.UpdateCard).Methods("PATCH")
	api.HandleFunc("/boards/{id}/cards/{cardId}", h.DeleteCard).Methods("DELETE")
	api.HandleFunc("/boards/{id}/cards/{cardId}/move", h.MoveCard).Methods("POST")

	api.HandleFunc("/export", h.Export).Methods("GET")
	api.HandleFunc("/import", h.Import).Methods("POST")
}
