package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/portfolli/backend/internal/api"
	"github.com/portfolli/backend/internal/identity"
	"github.com/portfolli/backend/internal/models"
	"github.com/portfolli/backend/internal/service"
)

const testJWTSecret = "test-secret"

// memStore is an in-memory ObjectStore for end-to-end tests.
type memStore struct {
	objects map[string][]byte
}

func (m *memStore) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	m.objects[key] = data
	return "https://store.test/" + key, nil
}

func (m *memStore) Remove(ctx context.Context, fileURL string) error {
	delete(m.objects, fileURL[len("https://store.test/"):])
	return nil
}

type testApp struct {
	db     *gorm.DB
	store  *memStore
	router *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Certificate{},
		&models.Project{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
	))

	store := &memStore{objects: map[string][]byte{}}

	profiles := service.NewProfileService(db)
	certificates := service.NewCertificateService(db, store)
	projects := service.NewProjectService(db)
	posts := service.NewPostService(db)
	comments := service.NewCommentService(db)
	admin := service.NewAdminService(db)
	roles := service.NewRoleService(db)

	handlers := Handlers{
		Health:       api.NewHealthHandler(db),
		Profiles:     api.NewProfileHandler(profiles),
		Certificates: api.NewCertificateHandler(certificates),
		Projects:     api.NewProjectHandler(projects),
		Posts:        api.NewPostHandler(posts),
		Comments:     api.NewCommentHandler(comments),
		Admin:        api.NewAdminHandler(admin, posts),
	}

	engine := Setup(handlers, identity.NewJWTVerifier(testJWTSecret), roles, nil, "http://localhost:5173")
	return &testApp{db: db, store: store, router: engine}
}

// newUser provisions a profile row and returns its id with a valid token.
func (a *testApp) newUser(t *testing.T, email string) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	require.NoError(t, a.db.Create(&models.Profile{ID: id, Email: email, Role: models.RoleUser}).Error)
	return id, a.tokenFor(t, id, email)
}

func (a *testApp) newAdmin(t *testing.T, email string) (uuid.UUID, string) {
	t.Helper()
	id, token := a.newUser(t, email)
	require.NoError(t, a.db.Model(&models.Profile{}).Where("id = ?", id).Update("role", models.RoleAdmin).Error)
	return id, token
}

func (a *testApp) tokenFor(t *testing.T, id uuid.UUID, email string) string {
	t.Helper()
	token, err := identity.SignToken(testJWTSecret, id, email, time.Hour)
	require.NoError(t, err)
	return token
}

func (a *testApp) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// uploadCertificate posts a multipart certificate with an attached file.
func (a *testApp) uploadCertificate(t *testing.T, token, title string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", title))
	require.NoError(t, mw.WriteField("issuer", "Test Issuer"))
	require.NoError(t, mw.WriteField("issue_date", "2024-01-15"))
	fw, err := mw.CreateFormFile("file", "cert.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 test"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/certificates", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}

func jsonField(t *testing.T, w *httptest.ResponseRecorder, field string) interface{} {
	t.Helper()
	var m map[string]interface{}
	decodeJSON(t, w, &m)
	return m[field]
}
