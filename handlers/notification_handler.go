package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"collab-api/security"
	"collab-api/service"
)

type NotificationHandler struct {
	logger  *log.Logger
	service *service.NotificationService
}

func NewNotificationHandler(logger *log.Logger, s *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{logger: logger, service: s}
}

func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())

	notifications, err := h.service.ListForUser(actorID)
	if err != nil {
		h.logger.Println("Database exception:", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())

	var req struct {
		CreatedAt time.Time `json:"created_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	if err := h.service.MarkRead(actorID, req.CreatedAt); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}
