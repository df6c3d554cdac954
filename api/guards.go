package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rmonte/devfolio-backend/database"
	"github.com/rmonte/devfolio-backend/errs"
	"github.com/rmonte/devfolio-backend/validate"
	"github.com/rs/zerolog/log"
)

// guards are the pre-handler existence checks. Each resolves an identifier
// from the path or body, verifies the referenced row exists, and
// short-circuits the request otherwise. Guards query independently and pass
// nothing downstream; handlers re-query what they need.
type guards struct {
	responder Responder
	db        database.Database
}

func newGuards(db database.Database) guards {
	logger := log.With().Str("handlerName", "guards").Logger()
	return guards{
		responder: NewResponder(logger),
		db:        db,
	}
}

// RequireDeveloper resolves a developer id from the {id} path param if
// present, else from the developerId body field. Routes with neither pass
// through untouched.
func (g guards) RequireDeveloper(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id int

		if raw := chi.URLParam(r, "id"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				g.responder.WriteError(w, errs.NewBadRequest("developer id must be a positive integer"))
				return
			}
			id = parsed
		} else {
			// The identifier may arrive as the developerId body field. The
			// body is restored so the handler can decode it again.
			bodyBytes, err := io.ReadAll(r.Body)
			if err != nil {
				g.responder.WriteError(w, errs.NewBadRequest("failed to read request body"))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

			var payload map[string]any
			if err := json.Unmarshal(bodyBytes, &payload); err != nil {
				// Malformed bodies are rejected by the handler's own decode.
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := payload["developerId"]
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			n, isNumber := raw.(float64)
			if !isNumber || n <= 0 || math.Trunc(n) != n {
				g.responder.WriteError(w, errs.NewBadRequest("type of \"developerId\" must be a positive integer"))
				return
			}
			id = int(n)
		}

		developer, err := g.db.DeveloperRepo().FindByID(id)
		if err != nil {
			g.responder.WriteError(w, errs.Database("find", "developer", err))
			return
		}
		if developer == nil {
			g.responder.WriteError(w, errs.NewNotFound(fmt.Sprintf("developer with id %d not found", id)))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireProject resolves the {pid} path param to an existing project.
func (g guards) RequireProject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "pid"))
		if err != nil || id <= 0 {
			g.responder.WriteError(w, errs.NewBadRequest("project id must be a positive integer"))
			return
		}

		project, repoErr := g.db.ProjectRepo().FindByID(id)
		if repoErr != nil {
			g.responder.WriteError(w, errs.Database("find", "project", repoErr))
			return
		}
		if project == nil {
			g.responder.WriteError(w, errs.NewNotFound(fmt.Sprintf("project with id %d not found", id)))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireProjectTechnology checks that the {name} path param is an accepted
// technology and that it is linked to the {pid} project. Runs after
// RequireProject, so the pid is already validated.
func (g guards) RequireProjectTechnology(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		projectID, _ := strconv.Atoi(chi.URLParam(r, "pid"))

		name, err := validate.TechnologyName(chi.URLParam(r, "name"))
		if err != nil {
			// An unaccepted name is reported as not-found on this gate, with
			// the validation message listing the accepted set.
			g.responder.WriteError(w, errs.NewNotFound(err.Error()))
			return
		}

		technology, repoErr := g.db.TechnologyRepo().FindByName(name)
		if repoErr != nil {
			g.responder.WriteError(w, errs.Database("find", "technology", repoErr))
			return
		}
		if technology == nil {
			g.responder.WriteError(w, errs.NewNotFound(fmt.Sprintf("technology %q not found", name)))
			return
		}

		linked, repoErr := g.db.ProjectTechnologyRepo().Exists(projectID, technology.ID)
		if repoErr != nil {
			g.responder.WriteError(w, errs.Database("find", "project technology", repoErr))
			return
		}
		if !linked {
			g.responder.WriteError(w, errs.NewNotFound(fmt.Sprintf("technology %q not found on this project", name)))
			return
		}

		next.ServeHTTP(w, r)
	})
}
