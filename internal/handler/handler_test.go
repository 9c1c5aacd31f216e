package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindtree/internal/model"
	"mindtree/internal/service"
	"mindtree/internal/store"
)

var testSite = fstest.MapFS{
	"signup.html":             {Data: []byte("<h1>signup</h1>")},
	"app.html":                {Data: []byte("<h1>app</h1>")},
	"login.html":              {Data: []byte("<h1>login</h1>")},
	"images/tree-healthy.png": {Data: []byte("\x89PNG")},
}

type brokenStore struct {
	store.MemoryStore
}

func (b *brokenStore) Save(ctx context.Context, doc model.Document) error {
	return errors.New("read-only filesystem")
}

func newTestRouter(t *testing.T, st store.DocumentStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ai := service.NewAIService(service.NewMockLLM())
	r, err := NewRouter(service.NewCheckinService(ai, ai, st, 0), testSite)
	require.NoError(t, err)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCheckinOK(t *testing.T) {
	st := store.NewMemoryStore()
	r := newTestRouter(t, st)

	w := do(r, http.MethodPost, "/checkin",
		`{"mood":5,"anxiety":5,"motivation":5,"connection":5,"free_text":"I feel great today"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp model.CheckinResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.MoodGood, resp.MoodRating)
	assert.Equal(t, 55, resp.NewHealthScore)
	assert.False(t, resp.IsEmergency)
	assert.NotEmpty(t, resp.Feedback)

	doc := st.Load(context.Background())
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, 20, doc.Entries[0].MCQScore)
	assert.Equal(t, model.SentimentPositive, doc.Entries[0].Sentiment)
}

func TestCheckinEmergency(t *testing.T) {
	r := newTestRouter(t, store.NewMemoryStore())

	w := do(r, http.MethodPost, "/checkin",
		`{"mood":5,"anxiety":5,"motivation":5,"connection":5,"free_text":"I want to die"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.CheckinResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsEmergency)
	assert.Equal(t, 7, resp.NewHealthScore)
}

func TestCheckinEmptyTextIsAccepted(t *testing.T) {
	r := newTestRouter(t, store.NewMemoryStore())

	w := do(r, http.MethodPost, "/checkin",
		`{"mood":3,"anxiety":3,"motivation":3,"connection":3,"free_text":""}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.CheckinResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.MoodLow, resp.MoodRating)
	assert.Equal(t, 45, resp.NewHealthScore)
}

func TestCheckinRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing field", `{"mood":3,"anxiety":3,"motivation":3,"free_text":"ok"}`},
		{"missing text", `{"mood":3,"anxiety":3,"motivation":3,"connection":3}`},
		{"wrong type", `{"mood":"high","anxiety":3,"motivation":3,"connection":3,"free_text":"ok"}`},
		{"not json", `mood=3`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewMemoryStore()
			r := newTestRouter(t, st)

			w := do(r, http.MethodPost, "/checkin", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "invalid request")
			assert.Empty(t, st.Load(context.Background()).Entries)
		})
	}
}

func TestCheckinPersistFailure(t *testing.T) {
	r := newTestRouter(t, &brokenStore{})

	w := do(r, http.MethodPost, "/checkin",
		`{"mood":4,"anxiety":4,"motivation":4,"connection":4,"free_text":"fine"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "check-in could not be saved")
}

func TestTreeHealth(t *testing.T) {
	doc := model.NewDocument()
	doc.CurrentHealth = 65
	r := newTestRouter(t, store.NewMemoryStoreWith(doc))

	w := do(r, http.MethodGet, "/tree-health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.TreeHealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 65, resp.HealthScore)
	assert.Equal(t, "healthy", resp.Tier)
	assert.Equal(t, "tree-healthy.png", resp.ImageFile)
}

func TestTreeHealthFirstUse(t *testing.T) {
	r := newTestRouter(t, store.NewMemoryStore())

	w := do(r, http.MethodGet, "/tree-health", "")
	var resp model.TreeHealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 50, resp.HealthScore)
	assert.Equal(t, "neutral", resp.Tier)
}

func TestHistory(t *testing.T) {
	r := newTestRouter(t, store.NewMemoryStore())
	do(r, http.MethodPost, "/checkin", `{"mood":2,"anxiety":2,"motivation":2,"connection":2,"free_text":""}`)
	do(r, http.MethodPost, "/checkin", `{"mood":4,"anxiety":4,"motivation":4,"connection":4,"free_text":""}`)

	w := do(r, http.MethodGet, "/history", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc model.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, 8, doc.Entries[0].MCQScore)
	assert.Equal(t, 16, doc.Entries[1].MCQScore)
	assert.Equal(t, 46, doc.CurrentHealth)
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t, store.NewMemoryStore())
	w := do(r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestStaticPages(t *testing.T) {
	r := newTestRouter(t, store.NewMemoryStore())

	for path, want := range map[string]string{
		"/":      "signup",
		"/app":   "app",
		"/login": "login",
	} {
		w := do(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), want, path)
	}

	// results.html is absent from the test site.
	w := do(r, http.MethodGet, "/results", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImages(t *testing.T) {
	r := newTestRouter(t, store.NewMemoryStore())

	w := do(r, http.MethodGet, "/images/tree-healthy.png", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/images/tree-missing.png", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResponsesCarryRequestID(t *testing.T) {
	r := newTestRouter(t, store.NewMemoryStore())
	w := do(r, http.MethodGet, "/healthz", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
