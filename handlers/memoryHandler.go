package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"founderforge/models"
	"founderforge/services/memory"

	"github.com/gorilla/mux"
)

type MemoryHandler struct {
	service  *memory.Service
	identity *Identity
}

func NewMemoryHandler(service *memory.Service, identity *Identity) *MemoryHandler {
	return &MemoryHandler{service: service, identity: identity}
}

func (h *MemoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/memory", h.Query).Methods("GET")
	router.HandleFunc("/memory", h.Mutate).Methods("POST")
	router.HandleFunc("/memory", h.Clear).Methods("DELETE")
}

// Query serves the read path: a relevant-context digest, the aggregate
// summary, the health diagnostic, a download export, or the full record.
func (h *MemoryHandler) Query(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity.Resolve(r)
	if !ok {
		h.writeErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	record, err := h.service.Get(userID)
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch memory")
		return
	}

	switch r.URL.Query().Get("action") {
	case "context":
		projectID := r.URL.Query().Get("projectId")
		h.writeJSONResponse(w, http.StatusOK, map[string]any{"context": memory.Context(record, projectID)})
	case "summary":
		h.writeJSONResponse(w, http.StatusOK, map[string]any{"summary": memory.Summarize(record)})
	case "health":
		h.writeJSONResponse(w, http.StatusOK, map[string]any{"health": memory.CheckHealth(record)})
	case "export":
		h.writeJSONResponse(w, http.StatusOK, memory.ExportRecord(record))
	default:
		h.writeJSONResponse(w, http.StatusOK, map[string]any{"memory": record})
	}
}

type memoryMutation struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type updateProjectPayload struct {
	ProjectID string                     `json:"projectId"`
	Update    memory.ProjectMemoryUpdate `json:"update"`
}

type addInsightPayload struct {
	Insight string                `json:"insight"`
	Context models.InsightContext `json:"context"`
}

type recordDecisionPayload struct {
	Decision  string `json:"decision"`
	Reasoning string `json:"reasoning"`
	ProjectID string `json:"projectId"`
}

type updatePatternPayload struct {
	Type    string `json:"type"`
	Pattern string `json:"pattern"`
}

type addMilestonePayload struct {
	Milestone string `json:"milestone"`
	ProjectID string `json:"projectId"`
}

type sessionSummaryPayload struct {
	Summary models.SessionSummary `json:"summary"`
}

type updateProfilePayload struct {
	Profile models.MemoryProfile `json:"profile"`
}

type importPayload struct {
	Memory *models.UserMemory `json:"memory"`
}

// Mutate serves the write path; each action maps onto one store operation.
func (h *MemoryHandler) Mutate(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity.Resolve(r)
	if !ok {
		h.writeErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var mutation memoryMutation
	if err := json.NewDecoder(r.Body).Decode(&mutation); err != nil {
		log.Printf("[ERROR] Failed to decode memory mutation JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	apply, err := h.mutationFor(mutation)
	if err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.service.Mutate(userID, apply)
	if err != nil {
		log.Printf("[ERROR] Memory mutation %q failed for user %s: %v", mutation.Action, userID, err)
		h.writeErrorResponse(w, http.StatusInternalServerError, "Failed to update memory")
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]any{"success": true, "memory": record})
}

func (h *MemoryHandler) mutationFor(mutation memoryMutation) (func(*models.UserMemory) error, error) {
	switch mutation.Action {
	case "updateProject":
		var p updateProjectPayload
		if err := json.Unmarshal(mutation.Data, &p); err != nil {
			return nil, errInvalidPayload(err)
		}
		return func(m *models.UserMemory) error {
			memory.UpdateProjectMemory(m, p.ProjectID, p.Update)
			return nil
		}, nil

	case "addInsight":
		var p addInsightPayload
		if err := json.Unmarshal(mutation.Data, &p); err != nil {
			return nil, errInvalidPayload(err)
		}
		return func(m *models.UserMemory) error {
			memory.AddInsight(m, p.Insight, p.Context)
			return nil
		}, nil

	case "recordDecision":
		var p recordDecisionPayload
		if err := json.Unmarshal(mutation.Data, &p); err != nil {
			return nil, errInvalidPayload(err)
		}
		return func(m *models.UserMemory) error {
			memory.RecordDecision(m, p.Decision, p.Reasoning, p.ProjectID)
			return nil
		}, nil

	case "updatePattern":
		var p updatePatternPayload
		if err := json.Unmarshal(mutation.Data, &p); err != nil {
			return nil, errInvalidPayload(err)
		}
		return func(m *models.UserMemory) error {
			memory.UpdatePatterns(m, p.Type, p.Pattern)
			return nil
		}, nil

	case "addMilestone":
		var p addMilestonePayload
		if err := json.Unmarshal(mutation.Data, &p); err != nil {
			return nil, errInvalidPayload(err)
		}
		return func(m *models.UserMemory) error {
			memory.AddMilestone(m, p.Milestone, p.ProjectID)
			return nil
		}, nil

	case "sessionSummary":
		var p sessionSummaryPayload
		if err := json.Unmarshal(mutation.Data, &p); err != nil {
			return nil, errInvalidPayload(err)
		}
		return func(m *models.UserMemory) error {
			memory.AddSessionSummary(m, p.Summary)
			return nil
		}, nil

	case "updateProfile":
		var p updateProfilePayload
		if err := json.Unmarshal(mutation.Data, &p); err != nil {
			return nil, errInvalidPayload(err)
		}
		return func(m *models.UserMemory) error {
			mergeProfile(&m.Profile, p.Profile)
			return nil
		}, nil

	case "import":
		var p importPayload
		if err := json.Unmarshal(mutation.Data, &p); err != nil {
			return nil, errInvalidPayload(err)
		}
		return func(m *models.UserMemory) error {
			memory.Import(m, p.Memory)
			return nil
		}, nil

	case "prune":
		return func(m *models.UserMemory) error {
			memory.Prune(m)
			return nil
		}, nil

	default:
		return nil, errInvalidAction(mutation.Action)
	}
}

// Clear resets one memory section (or the whole record).
func (h *MemoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.identity.Resolve(r)
	if !ok {
		h.writeErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	section := r.URL.Query().Get("section")
	projectID := r.URL.Query().Get("projectId")

	_, err := h.service.Mutate(userID, func(m *models.UserMemory) error {
		return memory.ClearSection(m, section, projectID)
	})
	if err != nil {
		log.Printf("[ERROR] Failed to clear memory section %q for user %s: %v", section, userID, err)
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]any{"success": true})
}

// mergeProfile overlays the submitted profile: provided lists replace,
// provided background replaces, everything omitted stays.
func mergeProfile(current *models.MemoryProfile, update models.MemoryProfile) {
	if update.Goals != nil {
		current.Goals = update.Goals
	}
	if update.Challenges != nil {
		current.Challenges = update.Challenges
	}
	if update.Strengths != nil {
		current.Strengths = update.Strengths
	}
	if update.Preferences != nil {
		current.Preferences = update.Preferences
	}
	if update.Background != "" {
		current.Background = update.Background
	}
}

func (h *MemoryHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *MemoryHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
