package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"collab-api/models"
	"collab-api/security"
	"collab-api/service"

	"github.com/gorilla/mux"
)

type TaskHandler struct {
	logger  *log.Logger
	service *service.TaskService
}

func NewTaskHandler(logger *log.Logger, s *service.TaskService) *TaskHandler {
	return &TaskHandler{logger: logger, service: s}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	var req struct {
		Description string             `json:"description"`
		Milestones  []models.Milestone `json:"milestones"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	task, err := h.service.Create(r.Context(), actorID, vars["id"], req.Description, req.Milestones)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	tasks, err := h.service.ListByProject(r.Context(), actorID, vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	var req struct {
		Description string             `json:"description"`
		Milestones  []models.Milestone `json:"milestones"`
		Completed   bool               `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid input"})
		return
	}

	task, err := h.service.Update(r.Context(), actorID, vars["id"], req.Description, req.Milestones, req.Completed)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	if err := h.service.Delete(r.Context(), actorID, vars["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}
