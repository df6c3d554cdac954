package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rmonte/devfolio-backend/database"
	"github.com/rmonte/devfolio-backend/errs"
	"github.com/rmonte/devfolio-backend/models"
	"github.com/rmonte/devfolio-backend/validate"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newProjectHandler(db database.Database) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// createProject handles POST /projects. The owning developer is checked by
// the RequireDeveloper guard. The project row and its placeholder
// association are written in one transaction.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		cleaned, err := validate.Create(payload, validate.ProjectSchema)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := models.Project{
			Name:          cleaned["name"].(string),
			Description:   cleaned["description"].(string),
			EstimatedTime: cleaned["estimated_time"].(string),
			Repository:    cleaned["repository"].(string),
			StartDate:     cleaned["start_date"].(time.Time),
			DeveloperID:   cleaned["developer_id"].(int),
		}
		if endDate, ok := cleaned["end_date"].(time.Time); ok {
			project.EndDate = &endDate
		}

		err = h.db.Transaction(func(tx database.Database) error {
			if err := tx.ProjectRepo().Add(&project); err != nil {
				return errs.Database("create", "project", err)
			}
			placeholder := models.ProjectTechnology{
				AddedIn:   time.Now().UTC(),
				ProjectID: project.ID,
			}
			if err := tx.ProjectTechnologyRepo().Add(&placeholder); err != nil {
				return errs.Database("create", "project technology", err)
			}
			return nil
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, project)
	}
}

// listProjects handles GET /projects.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := h.db.ProjectRepo().FindAllViews()
		if err != nil {
			h.responder.WriteError(w, errs.Database("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, views)
	}
}

// getProject handles GET /projects/{pid}, returning one row per technology
// association.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r, "pid")

		views, err := h.db.ProjectRepo().FindViewsByProjectID(id)
		if err != nil {
			h.responder.WriteError(w, errs.Database("find", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, views)
	}
}

// updateProject handles PATCH /projects/{pid}.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r, "pid")

		payload, err := decodeBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		cleaned, err := validate.Update(payload, validate.ProjectSchema)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.db.ProjectRepo().UpdateFields(id, cleaned)
		if err != nil {
			h.responder.WriteError(w, errs.Database("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, project)
	}
}

// deleteProject handles DELETE /projects/{pid}. Association rows and the
// project row are removed in one transaction.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r, "pid")

		err := h.db.Transaction(func(tx database.Database) error {
			if err := tx.ProjectTechnologyRepo().DeleteByProjectID(id); err != nil {
				return errs.Database("delete", "project technologies", err)
			}
			if err := tx.ProjectRepo().Delete(id); err != nil {
				return errs.Database("delete", "project", err)
			}
			return nil
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteNoContent(w)
	}
}

// listDeveloperProjects handles GET /developers/{id}/projects.
func (h projectHandler) listDeveloperProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r, "id")

		views, err := h.db.ProjectRepo().FindViewsByDeveloperID(id)
		if err != nil {
			h.responder.WriteError(w, errs.Database("find", "developer projects", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, views)
	}
}

// addTechnology handles POST /projects/{pid}/technologies. The first real
// technology fills the placeholder association in place; later ones append
// rows; duplicates conflict. All of it runs in one transaction.
func (h projectHandler) addTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r, "pid")

		payload, err := decodeBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		raw, ok := payload["name"].(string)
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequest("missing required key: \"name\""))
			return
		}
		name, err := validate.TechnologyName(raw)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		technology, err := h.db.TechnologyRepo().FindByName(name)
		if err != nil {
			h.responder.WriteError(w, errs.Database("find", "technology", err))
			return
		}
		if technology == nil {
			h.responder.WriteError(w, errs.NewNotFound(fmt.Sprintf("technology %q not found", name)))
			return
		}

		err = h.db.Transaction(func(tx database.Database) error {
			links, err := tx.ProjectTechnologyRepo().FindByProjectID(id)
			if err != nil {
				return errs.Database("find", "project technologies", err)
			}

			var placeholder *models.ProjectTechnology
			for i := range links {
				if links[i].TechnologyID == nil {
					placeholder = &links[i]
					break
				}
			}
			if placeholder != nil {
				if err := tx.ProjectTechnologyRepo().SetTechnology(placeholder.ID, technology.ID, time.Now().UTC()); err != nil {
					return errs.Database("update", "project technology", err)
				}
				return nil
			}

			for _, link := range links {
				if link.TechnologyID != nil && *link.TechnologyID == technology.ID {
					return errs.NewConflict(fmt.Sprintf("%q is already linked to project %d", name, id))
				}
			}

			link := models.ProjectTechnology{
				AddedIn:      time.Now().UTC(),
				ProjectID:    id,
				TechnologyID: &technology.ID,
			}
			if err := tx.ProjectTechnologyRepo().Add(&link); err != nil {
				return errs.Database("create", "project technology", err)
			}
			return nil
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		view, err := h.db.ProjectRepo().FindViewByTechnology(id, technology.ID)
		if err != nil {
			h.responder.WriteError(w, errs.Database("find", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, view)
	}
}

// deleteTechnology handles DELETE /projects/{pid}/technologies/{name}. The
// RequireProjectTechnology guard has already verified the link exists.
func (h projectHandler) deleteTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r, "pid")

		name, err := validate.TechnologyName(chi.URLParam(r, "name"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		technology, err := h.db.TechnologyRepo().FindByName(name)
		if err != nil {
			h.responder.WriteError(w, errs.Database("find", "technology", err))
			return
		}
		if technology == nil {
			h.responder.WriteError(w, errs.NewNotFound(fmt.Sprintf("technology %q not found", name)))
			return
		}

		if err := h.db.ProjectTechnologyRepo().DeleteByProjectAndTechnology(id, technology.ID); err != nil {
			h.responder.WriteError(w, errs.Database("delete", "project technology", err))
			return
		}

		h.responder.WriteNoContent(w)
	}
}
