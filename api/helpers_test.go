package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rmonte/devfolio-backend/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

// errEnvelope mirrors the unified error body.
type errEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func openTestDB(t *testing.T) database.Database {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(5000)&_time_format=sqlite"
	sqlDB, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	db := database.New(gdb)
	require.NoError(t, db.Migrate())
	return db
}

func newTestAPI(t *testing.T) (http.Handler, database.Database) {
	t.Helper()
	db := openTestDB(t)
	handler := newRouter(db, withConfig(map[string]string{}), withStartupTime(time.Now()))
	return handler, db
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errEnvelope {
	t.Helper()
	var envelope errEnvelope
	decodeInto(t, rec, &envelope)
	return envelope
}

// seedDeveloper creates a developer through the API and returns its id.
func seedDeveloper(t *testing.T, handler http.Handler, name, email string) int {
	t.Helper()

	rec := doRequest(t, handler, http.MethodPost, "/developers", map[string]any{
		"name":  name,
		"email": email,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID int `json:"id"`
	}
	decodeInto(t, rec, &created)
	require.NotZero(t, created.ID)
	return created.ID
}

// seedProject creates a project for the developer through the API and
// returns its id.
func seedProject(t *testing.T, handler http.Handler, developerID int) int {
	t.Helper()

	rec := doRequest(t, handler, http.MethodPost, "/projects", map[string]any{
		"name":          "API",
		"description":   "backend service",
		"estimatedTime": "2 weeks",
		"repository":    "https://git.example/api",
		"startDate":     "2023-01-10",
		"developerId":   developerID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID int `json:"id"`
	}
	decodeInto(t, rec, &created)
	require.NotZero(t, created.ID)
	return created.ID
}
