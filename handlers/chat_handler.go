package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"collab-api/security"
	"collab-api/service"

	"github.com/gorilla/mux"
)

type ChatHandler struct {
	logger  *log.Logger
	service *service.ChatService
}

func NewChatHandler(logger *log.Logger, s *service.ChatService) *ChatHandler {
	return &ChatHandler{logger: logger, service: s}
}

func (h *ChatHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())

	var req struct {
		PeerID string `json:"peerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	conversation, err := h.service.CreateDirect(r.Context(), actorID, req.PeerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, conversation)
}

func (h *ChatHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())

	conversations, err := h.service.ListForUser(r.Context(), actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversations)
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	var req struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	message, err := h.service.SendMessage(r.Context(), actorID, vars["id"], req.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	messages, err := h.service.ListMessages(r.Context(), actorID, vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *ChatHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	if err := h.service.MarkRead(r.Context(), actorID, vars["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Conversation marked as read"})
}
