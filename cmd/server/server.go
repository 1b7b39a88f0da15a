package main

import (
	"fmt"
	"log"
	"net/http"

	"founderforge/config"
	"founderforge/db"
	"founderforge/handlers"
	"founderforge/services/memory"
	"founderforge/services/mentor"
	"founderforge/services/session"
	"founderforge/services/userlock"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	projectRepo, err := db.NewPostgresProjectRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize project database: %v", err)
	}
	defer projectRepo.Close()

	memoryRepo, err := db.NewPostgresMemoryRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize memory database: %v", err)
	}
	defer memoryRepo.Close()

	personalityRepo, err := db.NewPostgresPersonalityRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize personality database: %v", err)
	}
	defer personalityRepo.Close()

	modelClient, err := buildModelClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize model client: %v", err)
	}

	locks := userlock.New()
	sessions := session.NewStore(session.DefaultTTL)
	identity := handlers.NewIdentity(sessions)

	memoryService := memory.NewService(memoryRepo, locks)
	memoryHandler := handlers.NewMemoryHandler(memoryService, identity)

	mentorService := mentor.NewService(modelClient, projectRepo, memoryRepo, locks)
	chatHandler := handlers.NewChatHandler(mentorService, personalityRepo, identity)

	projectHandler := handlers.NewProjectHandler(projectRepo, locks, identity)
	personalityHandler := handlers.NewPersonalityHandler(personalityRepo, identity)
	sessionHandler := handlers.NewSessionHandler(sessions)

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	chatHandler.RegisterRoutes(router)
	memoryHandler.RegisterRoutes(router)
	projectHandler.RegisterRoutes(router)
	personalityHandler.RegisterRoutes(router)
	sessionHandler.RegisterRoutes(router)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func buildModelClient(cfg *config.Config) (mentor.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
		return mentor.NewOpenAIClient(cfg.OpenAIAPIKey)
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}
		return mentor.NewAnthropicClient(cfg.AnthropicAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.LLMProvider)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
