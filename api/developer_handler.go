package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rmonte/devfolio-backend/database"
	"github.com/rmonte/devfolio-backend/errs"
	"github.com/rmonte/devfolio-backend/models"
	"github.com/rmonte/devfolio-backend/validate"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type developerHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newDeveloperHandler(db database.Database) developerHandler {
	logger := log.With().Str("handlerName", "developerHandler").Logger()

	return developerHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// createDeveloper handles POST /developers.
func (h developerHandler) createDeveloper() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		cleaned, err := validate.Create(payload, validate.DeveloperSchema)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		email := cleaned["email"].(string)
		existing, err := h.db.DeveloperRepo().FindByEmail(email)
		if err != nil {
			h.responder.WriteError(w, errs.Database("find", "developer", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewConflict("email already in use"))
			return
		}

		developer := models.Developer{
			Name:  cleaned["name"].(string),
			Email: email,
		}
		if err := h.db.DeveloperRepo().Add(&developer); err != nil {
			h.responder.WriteError(w, errs.Database("create", "developer", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, developer)
	}
}

// listDevelopers handles GET /developers.
func (h developerHandler) listDevelopers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := h.db.DeveloperRepo().FindAllViews()
		if err != nil {
			h.responder.WriteError(w, errs.Database("find", "developers", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, views)
	}
}

// getDeveloper handles GET /developers/{id}. Existence is checked by the
// RequireDeveloper guard.
func (h developerHandler) getDeveloper() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r, "id")

		view, err := h.db.DeveloperRepo().FindViewByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.Database("find", "developer", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, view)
	}
}

// createDeveloperInfo handles POST /developers/{id}/infos. The info row and
// the back-link on the developer are written in one transaction.
func (h developerHandler) createDeveloperInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r, "id")

		payload, err := decodeBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Normalize before validation so the membership check sees the
		// corrected casing. Non-string values fall through to the schema
		// type check.
		if raw, ok := payload["preferredOS"].(string); ok {
			normalized, err := validate.OperatingSystem(raw)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			payload["preferredOS"] = normalized
		}

		cleaned, err := validate.Create(payload, validate.DeveloperInfoSchema)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		developer, err := h.db.DeveloperRepo().FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.Database("find", "developer", err))
			return
		}
		if developer == nil {
			h.responder.WriteError(w, errs.NewNotFound(fmt.Sprintf("developer with id %d not found", id)))
			return
		}
		if developer.DeveloperInfoID != nil {
			h.responder.WriteError(w, errs.NewConflict("developer already has an info record"))
			return
		}

		info := models.DeveloperInfo{
			DeveloperSince: cleaned["developer_since"].(time.Time),
			PreferredOS:    cleaned["preferred_os"].(string),
		}

		err = h.db.Transaction(func(tx database.Database) error {
			if err := tx.DeveloperInfoRepo().Add(&info); err != nil {
				return errs.Database("create", "developer info", err)
			}
			if _, err := tx.DeveloperRepo().UpdateFields(id, map[string]any{"developer_info_id": info.ID}); err != nil {
				return errs.Database("update", "developer", err)
			}
			return nil
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, info)
	}
}

// updateDeveloper handles PATCH /developers/{id}.
func (h developerHandler) updateDeveloper() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r, "id")

		payload, err := decodeBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		cleaned, err := validate.Update(payload, validate.DeveloperSchema)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if email, ok := cleaned["email"].(string); ok {
			existing, err := h.db.DeveloperRepo().FindByEmail(email)
			if err != nil {
				h.responder.WriteError(w, errs.Database("find", "developer", err))
				return
			}
			if existing != nil && existing.ID != id {
				h.responder.WriteError(w, errs.NewConflict("email already in use"))
				return
			}
		}

		developer, err := h.db.DeveloperRepo().UpdateFields(id, cleaned)
		if err != nil {
			h.responder.WriteError(w, errs.Database("update", "developer", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, developer)
	}
}

// updateDeveloperInfo handles PATCH /developers/{id}/infos.
func (h developerHandler) updateDeveloperInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r, "id")

		developer, err := h.db.DeveloperRepo().FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.Database("find", "developer", err))
			return
		}
		if developer == nil {
			h.responder.WriteError(w, errs.NewNotFound(fmt.Sprintf("developer with id %d not found", id)))
			return
		}
		if developer.DeveloperInfoID == nil {
			h.responder.WriteError(w, errs.NewBadRequest("developer has no info record"))
			return
		}

		payload, err := decodeBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if raw, ok := payload["preferredOS"].(string); ok {
			normalized, err := validate.OperatingSystem(raw)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			payload["preferredOS"] = normalized
		}

		cleaned, err := validate.Update(payload, validate.DeveloperInfoSchema)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		info, err := h.db.DeveloperInfoRepo().UpdateFields(*developer.DeveloperInfoID, cleaned)
		if err != nil {
			h.responder.WriteError(w, errs.Database("update", "developer info", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, info)
	}
}

// deleteDeveloper handles DELETE /developers/{id}. The developer row and any
// linked info row are removed in one transaction.
func (h developerHandler) deleteDeveloper() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r, "id")

		err := h.db.Transaction(func(tx database.Database) error {
			developer, err := tx.DeveloperRepo().FindByID(id)
			if err != nil {
				return errs.Database("find", "developer", err)
			}
			if developer == nil {
				return errs.NewNotFound(fmt.Sprintf("developer with id %d not found", id))
			}
			if err := tx.DeveloperRepo().Delete(id); err != nil {
				return errs.Database("delete", "developer", err)
			}
			if developer.DeveloperInfoID != nil {
				if err := tx.DeveloperInfoRepo().Delete(*developer.DeveloperInfoID); err != nil {
					return errs.Database("delete", "developer info", err)
				}
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
