package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rmonte/devfolio-backend/database"
	"github.com/rmonte/devfolio-backend/errs"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database) *routeHandlers {
	return &routeHandlers{
		developerHandler: newDeveloperHandler(db),
		projectHandler:   newProjectHandler(db),
	}
}

// decodeBody reads the request body as a dynamic JSON object. An empty body
// decodes to an empty payload so the field-presence rules produce the
// validation error instead of a decode error.
func decodeBody(r *http.Request) (map[string]any, error) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errs.NewBadRequest("failed to read request body")
	}

	payload := map[string]any{}
	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(bodyBytes, &payload); err != nil {
		return nil, errs.NewBadRequest("malformed request body")
	}
	return payload, nil
}

// pathID returns a numeric path parameter already vetted by a guard.
func pathID(r *http.Request, key string) int {
	id, _ := strconv.Atoi(chi.URLParam(r, key))
	return id
}
