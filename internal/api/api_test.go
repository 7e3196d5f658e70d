package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastybook/backend/config"
	"github.com/tastybook/backend/internal/api"
	"github.com/tastybook/backend/internal/mocks"
	"github.com/tastybook/backend/internal/testhelpers"
)

type testServer struct {
	router *gin.Engine
	store  *mocks.BlobStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	store := mocks.NewBlobStore()
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		MaxUploadSize: config.MaxUploadSizeDefault,
	}

	router := gin.New()
	api.RegisterRoutes(router, db, store, nil, cfg)
	return &testServer{router: router, store: store}
}

// do performs a JSON request and returns the recorder. An empty token
// sends no Authorization header.
func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
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
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// register creates an account and returns its bearer token.
func (s *testServer) register(t *testing.T, email string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"first_name": "Test",
		"last_name":  "User",
		"email":      email,
		"password":   "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token, ok := decode(t, w)["token"].(string)
	require.True(t, ok)
	return token
}

// createRecipe creates a recipe over the API and returns its id.
func (s *testServer) createRecipe(t *testing.T, token, name, visibility string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/recipes", token, gin.H{
		"name":         name,
		"ingredients":  []string{"flour", "eggs"},
		"instructions": "Mix and bake.",
		"visibility":   visibility,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id, ok := decode(t, w)["id"].(string)
	require.True(t, ok)
	return id
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])
}

func TestInvalidRecipeID(t *testing.T) {
	srv := newTestServer(t)
	token := srv.register(t, "user@example.com")

	w := srv.do(t, http.MethodGet, "/api/v1/recipes/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid recipe id", decode(t, w)["error"])
}
