package handlers

import (
	"io"
	"log"
	"net/http"

	"collab-api/security"
	"collab-api/service"

	"github.com/gorilla/mux"
)

const maxUploadSize = 32 << 20

type StorageHandler struct {
	logger  *log.Logger
	service *service.AttachmentService
}

func NewStorageHandler(logger *log.Logger, s *service.AttachmentService) *StorageHandler {
	return &StorageHandler{logger: logger, service: s}
}

func (h *StorageHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing file field"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Println("Error reading upload:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to read file"})
		return
	}

	if err := h.service.Upload(r.Context(), actorID, vars["id"], header.Filename, content); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "File uploaded", "name": header.Filename})
}

func (h *StorageHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	names, err := h.service.List(r.Context(), actorID, vars["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (h *StorageHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	content, err := h.service.Download(r.Context(), actorID, vars["id"], vars["name"])
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+vars["name"]+"\"")
	w.Write(content)
}

func (h *StorageHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	actorID := security.UserIDFromContext(r.Context())
	vars := mux.Vars(r)

	if err := h.service.Remove(r.Context(), actorID, vars["id"], vars["name"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "File deleted"})
}
