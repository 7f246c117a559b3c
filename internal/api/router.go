package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "inner-story/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(chatHandler *ChatHandler, storyHandler *StoryHandler, statusHandler *StatusHandler) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	// These are applied to every request.
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request with useful info.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// The frontend is served from a different origin in every deployment of
	// this service, so CORS stays permissive.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// A simple liveness endpoint for container orchestration probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	// All primary API endpoints are grouped under the /api/v1 prefix. Every
	// route gets a request timeout; there are no streaming endpoints here, a
	// chat call either fully completes or fails.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(90 * time.Second))

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Hello World"})
		})
		r.Get("/health", chatHandler.HandleHealth)

		// --- Chat ---
		r.Post("/chat", chatHandler.HandleChat)
		r.Get("/provider-info", chatHandler.HandleProviderInfo)

		// --- Story ---
		r.Post("/story/init", storyHandler.HandleInitStory)
		r.Put("/story/save", storyHandler.HandleSaveStory)
		r.Get("/story/{storyID}", storyHandler.HandleGetStory)

		// --- Status ---
		r.Post("/status", statusHandler.HandleCreateStatus)
		r.Get("/status", statusHandler.HandleListStatus)
	})

	return r
}
