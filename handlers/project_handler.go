package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"collab-api/security"
	"collab-api/service"

	"github.com/gorilla/mux"
)

type ProjectHandler struct {
	logger  *log.Logger
	service *service.ProjectService
}

func NewProjectHandler(logger *log.Logger, s *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{logger: logger, service: s}
}

func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())

	var req struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Deadline    time.Time `json:"deadline"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	project, err := h.service.Create(r.Context(), actorID, req.Title, req.Description, req.Deadline)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	project, err := h.service.Get(r.Context(), actorID, vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())

	projects, err := h.service.ListForUser(r.Context(), actorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	var req struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Status      string    `json:"status"`
		Deadline    time.Time `json:"deadline"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	project, err := h.service.UpdateMeta(r.Context(), actorID, vars["id"], req.Title, req.Description, req.Status, req.Deadline)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	if err := h.service.Delete(r.Context(), actorID, vars["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}

func (h *ProjectHandler) LeaveProject(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	if err := h.service.Leave(r.Context(), actorID, vars["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Left project"})
}

func (h *ProjectHandler) RemoveCollaborator(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	if err := h.service.RemoveCollaborator(r.Context(), actorID, vars["id"], req.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Collaborator removed"})
}
