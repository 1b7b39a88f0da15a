package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"founderforge/db"
	"founderforge/models"
	"founderforge/services/personality"

	"github.com/gorilla/mux"
)

type PersonalityHandler struct {
	repo     db.PersonalityRepository
	identity *Identity
}

func NewPersonalityHandler(repo db.PersonalityRepository, identity *Identity) *PersonalityHandler {
	return &PersonalityHandler{repo: repo, identity: identity}
}

func (h *PersonalityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/personality", h.GetPersonality).Methods("GET")
	router.HandleFunc("/personality", h.SavePersonality).Methods("POST")
	router.HandleFunc("/personality", h.DeletePersonality).Methods("DELETE")
	router.HandleFunc("/personality/traits", h.GetTraits).Methods("GET")
}

// GetTraits serves the assessment catalog for the UI.
func (h *PersonalityHandler) GetTraits(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]any{"traits": personality.Traits})
}

func (h *PersonalityHandler) GetPersonality(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity.Resolve(r)
	if !ok {
		h.writeErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.repo.GetPersonality(userID)
	if err != nil {
		log.Printf("[ERROR] Failed to get personality for user %s: %v", userID, err)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch personality")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]any{
		"personality": profile,
		"summary":     personality.Summary(profile),
		"complete":    personality.IsComplete(profile),
	})
}

// SavePersonality replaces the profile wholesale after validating every
// provided option id against the trait catalog.
func (h *PersonalityHandler) SavePersonality(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity.Resolve(r)
	if !ok {
		h.writeErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var profile models.Personality
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Printf("[ERROR] Failed to decode personality JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := validateProfile(&profile); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.SavePersonality(userID, &profile); err != nil {
		log.Printf("[ERROR] Failed to save personality for user %s: %v", userID, err)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to save personality")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]any{"success": true, "personality": profile})
}

func (h *PersonalityHandler) DeletePersonality(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity.Resolve(r)
	if !ok {
		h.writeErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.repo.DeletePersonality(userID); err != nil {
		log.Printf("[ERROR] Failed to delete personality for user %s: %v", userID, err)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to delete personality")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

func validateProfile(profile *models.Personality) error {
	selected := map[string]string{
		"workStyle":  profile.WorkStyle,
		"experience": profile.Experience,
		"motivation": profile.Motivation,
		"learning":   profile.Learning,
		"pace":       profile.Pace,
	}
	for _, trait := range personality.Traits {
		id := selected[trait.Key]
		if id == "" {
			continue
		}
		valid := false
		for _, option := range trait.Options {
			if option.ID == id {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown option %q for trait %q", id, trait.Key)
		}
	}
	return nil
}

func (h *PersonalityHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *PersonalityHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
