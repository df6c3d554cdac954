package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes wires every route with its guards and request logging.
func setupRoutes(r chi.Router, handlers *routeHandlers, g guards, startupTime time.Time) {
	r.Get("/healthz", healthHandler(startupTime))

	r.Group(func(r chi.Router) {
		r.Use(RequestLoggingMiddleware)

		// Developer endpoints
		r.Post("/developers", handlers.developerHandler.createDeveloper())
		r.Get("/developers", handlers.developerHandler.listDevelopers())
		r.With(g.RequireDeveloper).Get("/developers/{id}", handlers.developerHandler.getDeveloper())
		r.With(g.RequireDeveloper).Post("/developers/{id}/infos", handlers.developerHandler.createDeveloperInfo())
		r.With(g.RequireDeveloper).Patch("/developers/{id}", handlers.developerHandler.updateDeveloper())
		r.With(g.RequireDeveloper).Patch("/developers/{id}/infos", handlers.developerHandler.updateDeveloperInfo())
		r.With(g.RequireDeveloper).Delete("/developers/{id}", handlers.developerHandler.deleteDeveloper())
		r.With(g.RequireDeveloper).Get("/developers/{id}/projects", handlers.projectHandler.listDeveloperProjects())

		// Project endpoints
		r.With(g.RequireDeveloper).Post("/projects", handlers.projectHandler.createProject())
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.With(g.RequireProject).Get("/projects/{pid}", handlers.projectHandler.getProject())
		r.With(g.RequireProject, g.RequireDeveloper).Patch("/projects/{pid}", handlers.projectHandler.updateProject())
		r.With(g.RequireProject).Delete("/projects/{pid}", handlers.projectHandler.deleteProject())

		// Project technology endpoints
		r.With(g.RequireProject).Post("/projects/{pid}/technologies", handlers.projectHandler.addTechnology())
		r.With(g.RequireProject, g.RequireProjectTechnology).Delete("/projects/{pid}/technologies/{name}", handlers.projectHandler.deleteTechnology())
	})
}

func healthHandler(startupTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		NewResponder(log.Logger).WriteJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"uptime": time.Since(startupTime).String(),
		})
	}
}
