package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"founderforge/db"
	"founderforge/models"
	"founderforge/services/userlock"

	"github.com/gorilla/mux"
)

type ProjectsResponse struct {
	Projects []*models.Project `json:"projects"`
}

type ProjectsRequest struct {
	Projects []*models.Project `json:"projects"`
}

type ProjectHandler struct {
	repo     db.ProjectRepository
	locks    *userlock.Locker
	identity *Identity
}

func NewProjectHandler(repo db.ProjectRepository, locks *userlock.Locker, identity *Identity) *ProjectHandler {
	return &ProjectHandler{repo: repo, locks: locks, identity: identity}
}

func (h *ProjectHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/projects", h.GetProjects).Methods("GET")
	router.HandleFunc("/projects", h.SaveProjects).Methods("POST")
}

func (h *ProjectHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity.Resolve(r)
	if !ok {
		h.writeErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	projects, err := h.repo.GetProjects(userID)
	if err != nil {
		log.Printf("[ERROR] Failed to get projects for user %s: %v", userID, err)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, ProjectsResponse{Projects: projects})
}

// SaveProjects replaces the user's project collection. The write takes the
// same per-user lock as a live exchange so the two can't interleave.
func (h *ProjectHandler) SaveProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity.Resolve(r)
	if !ok {
		h.writeErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ProjectsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode projects JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	for _, project := range req.Projects {
		project.Normalize()
	}

	unlock := h.locks.Lock(userID)
	err := h.repo.SaveProjects(userID, req.Projects)
	unlock()
	if err != nil {
		log.Printf("[ERROR] Failed to save projects for user %s: %v", userID, err)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to save projects")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

func (h *ProjectHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *ProjectHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
