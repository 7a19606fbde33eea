package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"collab-api/security"
	"collab-api/service"

	"github.com/gorilla/mux"
)

type InvitationHandler struct {
	logger  *log.Logger
	service *service.InvitationService
}

func NewInvitationHandler(logger *log.Logger, s *service.InvitationService) *InvitationHandler {
	return &InvitationHandler{logger: logger, service: s}
}

func (h *InvitationHandler) Invite(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	invitation, err := h.service.Invite(r.Context(), actorID, vars["id"], req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, invitation)
}

func (h *InvitationHandler) Respond(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())

	var req struct {
		InvitationID string `json:"invitationId"`
		Action       string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	if err := h.service.Respond(r.Context(), actorID, req.InvitationID, req.Action); err != nil {
		writeError(w, err)
		return
	}
	message := "Invitation accepted"
	if req.Action == "decline" {
		message = "Invitation declined"
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *InvitationHandler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())

	invitations, err := h.service.ListForUser(r.Context(), actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invitations)
}
