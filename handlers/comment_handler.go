package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"collab-api/security"
	"collab-api/service"

	"github.com/gorilla/mux"
)

type CommentHandler struct {
	logger  *log.Logger
	service *service.CommentService
}

func NewCommentHandler(logger *log.Logger, s *service.CommentService) *CommentHandler {
	return &CommentHandler{logger: logger, service: s}
}

func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	var req struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	comment, err := h.service.Add(r.Context(), actorID, vars["id"], req.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	comments, err := h.service.ListByProject(r.Context(), actorID, vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	if err := h.service.Delete(r.Context(), actorID, vars["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted"})
}
