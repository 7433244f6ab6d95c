package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/devfolio/dashboard-backend/auth"
	"github.com/devfolio/dashboard-backend/database"
	"github.com/devfolio/dashboard-backend/models"
	"github.com/devfolio/dashboard-backend/storage"
)

type testServer struct {
	handler http.Handler
	db      database.Database
	tokens  *auth.TokenService
}

func setupTestServer(t *testing.T) testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.AutoMigrate(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	db := database.New(gdb)

	tokens, err := auth.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	uploader, err := storage.NewDiskUploader(t.TempDir())
	require.NoError(t, err)

	handler := newRouter(db, Deps{
		Tokens:   tokens,
		Uploader: uploader,
	}, withConfig(map[string]string{"SECURE_COOKIES": "false"}))

	return testServer{handler: handler, db: db, tokens: tokens}
}

func (s testServer) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s testServer) mintToken(t *testing.T) string {
	t.Helper()
	token, err := s.tokens.Mint(auth.Principal{Subject: "1", Name: "Ada", Provider: auth.ProviderGitHub}, time.Now())
	require.NoError(t, err)
	return token
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestWritesRequireCredential(t *testing.T) {
	s := setupTestServer(t)

	payload := map[string]any{"icon": "go", "name": "Go"}

	rec := s.request(t, http.MethodPost, "/stacks", payload, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Collection unchanged after the rejected write.
	rec = s.request(t, http.MethodGet, "/stacks", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]models.Skill](t, rec))

	// The same call succeeds once a valid credential is supplied.
	rec = s.request(t, http.MethodPost, "/stacks", payload, s.mintToken(t))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.request(t, http.MethodGet, "/stacks", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Skill](t, rec), 1)
}

func TestWritesRejectExpiredCredential(t *testing.T) {
	s := setupTestServer(t)

	expired, err := s.tokens.Mint(auth.Principal{Subject: "1"}, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	rec := s.request(t, http.MethodPost, "/stacks", map[string]any{"icon": "go", "name": "Go"}, expired)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateValidationLeavesCollectionUnchanged(t *testing.T) {
	s := setupTestServer(t)
	token := s.mintToken(t)

	rec := s.request(t, http.MethodPost, "/stacks", map[string]any{"name": "Go"}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "icon", body["field"])

	rec = s.request(t, http.MethodGet, "/stacks", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]models.Skill](t, rec))
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/techs", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.mintToken(t))

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidIDParamIsBadRequest(t *testing.T) {
	s := setupTestServer(t)

	rec := s.request(t, http.MethodDelete, "/techs/not-a-uuid", nil, s.mintToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAbsentIsNotFound(t *testing.T) {
	s := setupTestServer(t)

	payload := map[string]any{"icon": "go", "name": "Go"}
	rec := s.request(t, http.MethodPut, "/stacks/"+uuid.NewString(), payload, s.mintToken(t))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteAbsentIsNoOp(t *testing.T) {
	s := setupTestServer(t)
	token := s.mintToken(t)

	id := uuid.NewString()
	rec := s.request(t, http.MethodDelete, "/contacts/"+id, nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.request(t, http.MethodDelete, "/contacts/"+id, nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProjectLifecycle(t *testing.T) {
	s := setupTestServer(t)
	token := s.mintToken(t)

	createTech := func(name string) models.Tech {
		rec := s.request(t, http.MethodPost, "/techs", map[string]any{"name": name}, token)
		require.Equal(t, http.StatusCreated, rec.Code)
		return decodeBody[models.Tech](t, rec)
	}

	techA := createTech("A")
	techB := createTech("B")
	techC := createTech("C")

	create := map[string]any{
		"title":       "Portfolio",
		"description": "my portfolio",
		"image":       "https://example.com/img.png",
		"demoUrl":     "https://example.com",
		"repoUrl":     "https://github.com/example/repo",
		"isFeatured":  true,
		"techs": []map[string]any{
			{"techId": techA.ID, "ordem": 1},
			{"techId": techB.ID, "ordem": 2},
		},
	}

	rec := s.request(t, http.MethodPost, "/projects", create, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.Project](t, rec)
	require.Len(t, created.Techs, 2)
	assert.Equal(t, "A", created.Techs[0].Tech.Name)
	assert.Equal(t, "B", created.Techs[1].Tech.Name)

	// Replacing the association set leaves no residue of A or B.
	update := map[string]any{
		"title":       "Portfolio v2",
		"description": "my portfolio",
		"image":       "https://example.com/img.png",
		"demoUrl":     "https://example.com",
		"repoUrl":     "https://github.com/example/repo",
		"isFeatured":  false,
		"techs": []map[string]any{
			{"techId": techC.ID, "ordem": 1},
		},
	}

	rec = s.request(t, http.MethodPut, "/projects/"+created.ID.String(), update, token)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[models.Project](t, rec)
	assert.Equal(t, "Portfolio v2", updated.Title)
	require.Len(t, updated.Techs, 1)
	assert.Equal(t, "C", updated.Techs[0].Tech.Name)
	assert.Equal(t, created.ID, updated.ID, "id is immutable across updates")

	rec = s.request(t, http.MethodDelete, "/projects/"+created.ID.String(), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.request(t, http.MethodGet, "/projects", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]models.Project](t, rec))
}

func TestProjectCreateRequiresTechs(t *testing.T) {
	s := setupTestServer(t)

	create := map[string]any{
		"title":       "Portfolio",
		"description": "my portfolio",
		"image":       "https://example.com/img.png",
		"demoUrl":     "https://example.com",
		"repoUrl":     "https://github.com/example/repo",
	}

	rec := s.request(t, http.MethodPost, "/projects", create, s.mintToken(t))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "techs", body["field"])
}

func TestSummaryAndLastUpdate(t *testing.T) {
	s := setupTestServer(t)
	token := s.mintToken(t)

	rec := s.request(t, http.MethodGet, "/meta/last-update", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody[map[string]*time.Time](t, rec)["lastUpdate"])

	rec = s.request(t, http.MethodGet, "/contacts/summary", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeBody[map[string]any](t, rec)
	assert.EqualValues(t, 0, summary["total"])
	assert.Nil(t, summary["lastUpdate"])

	contact := map[string]any{"icon": "github", "name": "GitHub", "user": "ada", "link": "https://github.com/ada"}
	rec = s.request(t, http.MethodPost, "/contacts", contact, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.request(t, http.MethodGet, "/contacts/summary", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary = decodeBody[map[string]any](t, rec)
	assert.EqualValues(t, 1, summary["total"])
	assert.NotNil(t, summary["lastUpdate"])

	rec = s.request(t, http.MethodGet, "/meta/last-update", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, decodeBody[map[string]*time.Time](t, rec)["lastUpdate"])
}

func TestAnalyticsEndpoints(t *testing.T) {
	s := setupTestServer(t)
	token := s.mintToken(t)

	rec := s.request(t, http.MethodPost, "/techs", map[string]any{"name": "Go"}, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	tech := decodeBody[models.Tech](t, rec)

	create := map[string]any{
		"title":       "Portfolio",
		"description": "my portfolio",
		"image":       "https://example.com/img.png",
		"demoUrl":     "https://example.com",
		"repoUrl":     "https://github.com/example/repo",
		"techs":       []map[string]any{{"techId": tech.ID, "ordem": 1}},
	}
	rec = s.request(t, http.MethodPost, "/projects", create, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.request(t, http.MethodGet, "/analytics/projects-over-time", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	days := decodeBody[[]map[string]any](t, rec)
	require.Len(t, days, 1)
	assert.EqualValues(t, 1, days[0]["count"])

	rec = s.request(t, http.MethodGet, "/analytics/techs-most-used", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	used := decodeBody[[]map[string]any](t, rec)
	require.Len(t, used, 1)
	assert.Equal(t, "Go", used[0]["name"])
	assert.EqualValues(t, 1, used[0]["count"])

	rec = s.request(t, http.MethodGet, "/analytics/projects-by-tech", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	dist := decodeBody[[]map[string]any](t, rec)
	require.Len(t, dist, 1)
	assert.Equal(t, "Go", dist[0]["tech"])
}

func TestAuthMe(t *testing.T) {
	s := setupTestServer(t)

	rec := s.request(t, http.MethodGet, "/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.request(t, http.MethodGet, "/auth/me", nil, s.mintToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	principal := decodeBody[auth.Principal](t, rec)
	assert.Equal(t, "Ada", principal.Name)
}

func TestUpload(t *testing.T) {
	s := setupTestServer(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "my avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.mintToken(t))

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "/uploads/my-avatar.png", body["url"])
}
