package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"collab-api/security"
	"collab-api/service"

	"github.com/gorilla/mux"
)

type ConnectionHandler struct {
	logger  *log.Logger
	service *service.ConnectionService
}

func NewConnectionHandler(logger *log.Logger, s *service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{logger: logger, service: s}
}

func (h *ConnectionHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())

	var req struct {
		To string `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	created, err := h.service.SendRequest(r.Context(), actorID, req.To)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ConnectionHandler) Respond(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())

	var req struct {
		RequestID string `json:"requestId"`
		Action    string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	if err := h.service.Respond(r.Context(), actorID, req.RequestID, req.Action); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Request " + req.Action + "ed"})
}

func (h *ConnectionHandler) ListConnections(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())

	connections, err := h.service.ListConnections(r.Context(), actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, connections)
}

func (h *ConnectionHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())

	requests, err := h.service.ListPending(r.Context(), actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *ConnectionHandler) RemoveConnection(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	if err := h.service.RemoveConnection(r.Context(), actorID, vars["userId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Connection removed"})
}
