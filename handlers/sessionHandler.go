package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"founderforge/services/session"

	"github.com/gorilla/mux"
)

type SessionRequest struct {
	UserID string `json:"userId"`
}

type SessionResponse struct {
	Token string `json:"token"`
}

// SessionHandler owns session lifecycle: created on login, invalidated on
// logout. The actual credential check belongs to the authentication
// collaborator in front of this service.
type SessionHandler struct {
	sessions *session.Store
}

func NewSessionHandler(sessions *session.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/session", h.CreateSession).Methods("POST")
	router.HandleFunc("/session", h.DeleteSession).Methods("DELETE")
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "userId is required")
		return
	}

	token := h.sessions.Create(req.UserID)
	log.Printf("[INFO] Session created for user %s", req.UserID)
	h.writeJSONResponse(w, http.StatusOK, SessionResponse{Token: token})
}

func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		h.writeErrorResponse(w, http.StatusBadRequest, "Missing session token")
		return
	}

	h.sessions.Invalidate(strings.TrimPrefix(auth, "Bearer "))
	h.writeJSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

func (h *SessionHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *SessionHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
