package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProject(t *testing.T) {
	handler, db := newTestAPI(t)
	developerID := seedDeveloper(t, handler, "Ana", "ana@x.com")

	// Nonexistent owner is caught by the developer guard.
	rec := doRequest(t, handler, http.MethodPost, "/projects", map[string]any{
		"name":          "API",
		"description":   "backend service",
		"estimatedTime": "2 weeks",
		"repository":    "https://git.example/api",
		"startDate":     "2023-01-10",
		"developerId":   9999,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	projectID := seedProject(t, handler, developerID)

	// Exactly one placeholder association row exists.
	links, err := db.ProjectTechnologyRepo().FindByProjectID(projectID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Nil(t, links[0].TechnologyID)
}

func TestCreateProjectValidation(t *testing.T) {
	handler, _ := newTestAPI(t)
	developerID := seedDeveloper(t, handler, "Ana", "ana@x.com")

	// Missing fields.
	rec := doRequest(t, handler, http.MethodPost, "/projects", map[string]any{
		"name":        "API",
		"developerId": developerID,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeError(t, rec)
	assert.Equal(t, "validation_error", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Message, `"description"`)

	// Unparsable start date.
	rec = doRequest(t, handler, http.MethodPost, "/projects", map[string]any{
		"name":          "API",
		"description":   "backend service",
		"estimatedTime": "2 weeks",
		"repository":    "https://git.example/api",
		"startDate":     "someday",
		"developerId":   developerID,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error.Message, `"startDate"`)

	// Non-numeric developerId is rejected by the guard.
	rec = doRequest(t, handler, http.MethodPost, "/projects", map[string]any{
		"name":          "API",
		"description":   "backend service",
		"estimatedTime": "2 weeks",
		"repository":    "https://git.example/api",
		"startDate":     "2023-01-10",
		"developerId":   "one",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error.Message, `"developerId"`)
}

func TestGetProject(t *testing.T) {
	handler, _ := newTestAPI(t)
	developerID := seedDeveloper(t, handler, "Ana", "ana@x.com")
	projectID := seedProject(t, handler, developerID)

	rec := doRequest(t, handler, http.MethodGet, fmt.Sprintf("/projects/%d", projectID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []map[string]any
	decodeInto(t, rec, &views)
	require.Len(t, views, 1, "one row for the placeholder association")
	assert.Equal(t, "API", views[0]["projectName"])
	assert.Nil(t, views[0]["technologyId"])
	assert.Nil(t, views[0]["technologyName"])

	rec = doRequest(t, handler, http.MethodGet, "/projects/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, handler, http.MethodGet, "/projects/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListProjects(t *testing.T) {
	handler, _ := newTestAPI(t)
	developerID := seedDeveloper(t, handler, "Ana", "ana@x.com")
	seedProject(t, handler, developerID)

	rec := doRequest(t, handler, http.MethodGet, "/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []map[string]any
	decodeInto(t, rec, &views)
	assert.Len(t, views, 1)
}

func TestUpdateProject(t *testing.T) {
	handler, _ := newTestAPI(t)
	developerID := seedDeveloper(t, handler, "Ana", "ana@x.com")
	projectID := seedProject(t, handler, developerID)
	path := fmt.Sprintf("/projects/%d", projectID)

	rec := doRequest(t, handler, http.MethodPatch, path, map[string]any{"name": "API v2"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated map[string]any
	decodeInto(t, rec, &updated)
	assert.Equal(t, "API v2", updated["name"])
	assert.Equal(t, "backend service", updated["description"])

	// Empty payload fails the at-least-one rule.
	rec = doRequest(t, handler, http.MethodPatch, path, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Reassigning to a nonexistent developer is caught by the guard.
	rec = doRequest(t, handler, http.MethodPatch, path, map[string]any{"developerId": 9999})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Reassigning to a real developer works.
	otherID := seedDeveloper(t, handler, "Bia", "bia@x.com")
	rec = doRequest(t, handler, http.MethodPatch, path, map[string]any{"developerId": otherID})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteProject(t *testing.T) {
	handler, db := newTestAPI(t)
	developerID := seedDeveloper(t, handler, "Ana", "ana@x.com")
	projectID := seedProject(t, handler, developerID)

	rec := doRequest(t, handler, http.MethodPost, fmt.Sprintf("/projects/%d/technologies", projectID), map[string]any{"name": "Python"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, handler, http.MethodDelete, fmt.Sprintf("/projects/%d", projectID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// No orphaned association rows remain.
	links, err := db.ProjectTechnologyRepo().FindByProjectID(projectID)
	require.NoError(t, err)
	assert.Empty(t, links)

	rec = doRequest(t, handler, http.MethodGet, fmt.Sprintf("/projects/%d", projectID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListDeveloperProjects(t *testing.T) {
	handler, _ := newTestAPI(t)
	developerID := seedDeveloper(t, handler, "Ana", "ana@x.com")
	seedProject(t, handler, developerID)

	rec := doRequest(t, handler, http.MethodGet, fmt.Sprintf("/developers/%d/projects", developerID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []map[string]any
	decodeInto(t, rec, &views)
	require.Len(t, views, 1)
	assert.Equal(t, "Ana", views[0]["developerName"])
	assert.Equal(t, "API", views[0]["projectName"])

	rec = doRequest(t, handler, http.MethodGet, "/developers/9999/projects", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddTechnology(t *testing.T) {
	handler, db := newTestAPI(t)
	developerID := seedDeveloper(t, handler, "Ana", "ana@x.com")
	projectID := seedProject(t, handler, developerID)
	path := fmt.Sprintf("/projects/%d/technologies", projectID)

	// First technology fills the placeholder in place.
	rec := doRequest(t, handler, http.MethodPost, path, map[string]any{"name": "python"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var view map[string]any
	decodeInto(t, rec, &view)
	assert.Equal(t, "Python", view["technologyName"])
	assert.Equal(t, "API", view["projectName"])

	links, err := db.ProjectTechnologyRepo().FindByProjectID(projectID)
	require.NoError(t, err)
	require.Len(t, links, 1, "placeholder reused, not appended")
	require.NotNil(t, links[0].TechnologyID)

	// Second technology appends a row.
	rec = doRequest(t, handler, http.MethodPost, path, map[string]any{"name": "react"})
	require.Equal(t, http.StatusCreated, rec.Code)
	links, err = db.ProjectTechnologyRepo().FindByProjectID(projectID)
	require.NoError(t, err)
	assert.Len(t, links, 2)

	// Re-adding the same technology, any casing, is a conflict.
	rec = doRequest(t, handler, http.MethodPost, path, map[string]any{"name": "Python"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", decodeError(t, rec).Error.Code)
	links, err = db.ProjectTechnologyRepo().FindByProjectID(projectID)
	require.NoError(t, err)
	assert.Len(t, links, 2, "conflict leaves the row count unchanged")

	// Unknown technology name.
	rec = doRequest(t, handler, http.MethodPost, path, map[string]any{"name": "ruby"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error.Message, "JavaScript")

	// Missing name key.
	rec = doRequest(t, handler, http.MethodPost, path, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTechnology(t *testing.T) {
	handler, db := newTestAPI(t)
	developerID := seedDeveloper(t, handler, "Ana", "ana@x.com")
	projectID := seedProject(t, handler, developerID)

	// Never linked: the guard reports not found.
	rec := doRequest(t, handler, http.MethodDelete, fmt.Sprintf("/projects/%d/technologies/Python", projectID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, handler, http.MethodPost, fmt.Sprintf("/projects/%d/technologies", projectID), map[string]any{"name": "Python"})
	require.Equal(t, http.StatusCreated, rec.Code)

	// The path name is normalized before lookup.
	rec = doRequest(t, handler, http.MethodDelete, fmt.Sprintf("/projects/%d/technologies/python", projectID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	python, err := db.TechnologyRepo().FindByName("Python")
	require.NoError(t, err)
	linked, err := db.ProjectTechnologyRepo().Exists(projectID, python.ID)
	require.NoError(t, err)
	assert.False(t, linked)

	// Unknown names on the path 404 with the accepted-set message.
	rec = doRequest(t, handler, http.MethodDelete, fmt.Sprintf("/projects/%d/technologies/ruby", projectID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error.Message, "JavaScript")
}
