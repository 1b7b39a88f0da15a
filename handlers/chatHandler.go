package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"founderforge/db"
	"founderforge/models"
	"founderforge/services/mentor"

	"github.com/gorilla/mux"
)

// How long one external model call may take before the exchange is abandoned
// with nothing committed.
const exchangeTimeout = 60 * time.Second

type ChatHandler struct {
	service         *mentor.Service
	personalityRepo db.PersonalityRepository
	identity        *Identity
}

func NewChatHandler(service *mentor.Service, personalityRepo db.PersonalityRepository, identity *Identity) *ChatHandler {
	return &ChatHandler{service: service, personalityRepo: personalityRepo, identity: identity}
}

func (h *ChatHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/chat", h.Exchange).Methods("POST")
}

func (h *ChatHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity.Resolve(r)
	if !ok {
		h.writeErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req models.ExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode chat request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	// A stored profile fills in when the client didn't send one.
	if req.Personality == nil {
		personality, err := h.personalityRepo.GetPersonality(userID)
		if err != nil {
			log.Printf("[ERROR] Failed to load personality for user %s: %v", userID, err)
		} else {
			req.Personality = personality
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), exchangeTimeout)
	defer cancel()

	result, err := h.service.Exchange(ctx, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, mentor.ErrInvalidReference):
			log.Printf("[ERROR] Invalid exchange reference: %v", err)
			h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, mentor.ErrModelCall):
			log.Printf("[ERROR] Exchange model call failed: %v", err)
			h.writeJSONResponse(w, http.StatusBadGateway, map[string]any{
				"error":     "Connection issue — try again.",
				"retryable": true,
			})
		default:
			log.Printf("[ERROR] Exchange failed: %v", err)
			h.writeJSONResponse(w, http.StatusInternalServerError, map[string]any{
				"error":     "Exchange failed",
				"retryable": true,
			})
		}
		return
	}

	log.Printf("[INFO] Exchange completed for user %s (complete=%t)", userID, result.IsComplete)
	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *ChatHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *ChatHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
