package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/flashpapers/internal/paper"
	"github.com/at-ishikawa/flashpapers/internal/srs"
	"github.com/at-ishikawa/flashpapers/internal/store"
)

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()

	paperStore, err := store.Open(filepath.Join(t.TempDir(), "flashpapers.json"), srs.DefaultParameters)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(paperStore, srs.DefaultParameters, []string{"*"}, logger)
	s.now = func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	return s, paperStore
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	s.ServeHTTP(recorder, request)
	return recorder
}

func TestServer_PaperCRUD(t *testing.T) {
	s, _ := newTestServer(t)

	createBody := map[string]any{
		"paper_title": "Attention Is All You Need",
		"authors":     "Vaswani et al.",
		"methodology": "Transformer architecture",
		"category":    []string{"nlp"},
	}
	recorder := doRequest(t, s, http.MethodPost, "/api/papers/", createBody)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created paper.Paper
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Attention Is All You Need", created.PaperTitle)
	assert.Equal(t, 0, created.ReviewCount)

	recorder = doRequest(t, s, http.MethodGet, "/api/papers/"+created.ID, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	createBody["notes"] = "updated notes"
	recorder = doRequest(t, s, http.MethodPut, "/api/papers/"+created.ID, createBody)
	require.Equal(t, http.StatusOK, recorder.Code)
	var updated paper.Paper
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &updated))
	assert.Equal(t, "updated notes", updated.Notes)

	recorder = doRequest(t, s, http.MethodGet, "/api/papers/", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var papers []paper.Paper
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &papers))
	assert.Len(t, papers, 1)

	recorder = doRequest(t, s, http.MethodDelete, "/api/papers/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = doRequest(t, s, http.MethodGet, "/api/papers/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestServer_CreatePaperValidation(t *testing.T) {
	s, _ := newTestServer(t)

	recorder := doRequest(t, s, http.MethodPost, "/api/papers/", map[string]any{
		"authors": "Anon",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "paper_title")
}

func TestServer_RecordReview(t *testing.T) {
	s, paperStore := newTestServer(t)

	p := paper.New("To review", "Anon", srs.DefaultParameters, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, paperStore.Add(p))

	recorder := doRequest(t, s, http.MethodPost, "/api/reviews/", map[string]any{
		"paper_id": p.ID,
		"grade":    "easy",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var response reviewResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 1, response.ReviewCount)
	assert.Equal(t, 1, response.IntervalDays)
	assert.Equal(t, "2026-03-16", response.NextReviewDate)

	stored, err := paperStore.FindByID(p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.25, stored.EaseFactor, 0.0001)
}

func TestServer_RecordReviewErrors(t *testing.T) {
	s, paperStore := newTestServer(t)
	p := paper.New("To review", "Anon", srs.DefaultParameters, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, paperStore.Add(p))

	t.Run("unknown grade", func(t *testing.T) {
		recorder := doRequest(t, s, http.MethodPost, "/api/reviews/", map[string]any{
			"paper_id": p.ID,
			"grade":    "impossible",
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown paper", func(t *testing.T) {
		recorder := doRequest(t, s, http.MethodPost, "/api/reviews/", map[string]any{
			"paper_id": "no-such-id",
			"grade":    "easy",
		})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		recorder := doRequest(t, s, http.MethodPost, "/api/reviews/", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestServer_ListDueReviews(t *testing.T) {
	s, paperStore := newTestServer(t)

	due := paper.New("Due", "Anon", srs.DefaultParameters, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, paperStore.Add(due))

	scheduled := paper.New("Scheduled", "Anon", srs.DefaultParameters, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	futureDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	scheduled.NextReviewDate = &futureDate
	require.NoError(t, paperStore.Add(scheduled))

	recorder := doRequest(t, s, http.MethodGet, "/api/reviews/due", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var papers []paper.Paper
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &papers))
	require.Len(t, papers, 1)
	assert.Equal(t, "Due", papers[0].PaperTitle)

	recorder = doRequest(t, s, http.MethodGet, "/api/reviews/due?limit=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestServer_Search(t *testing.T) {
	s, paperStore := newTestServer(t)

	p := paper.New("Attention Is All You Need", "Vaswani et al.", srs.DefaultParameters, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	p.Category = []string{"nlp"}
	require.NoError(t, paperStore.Add(p))

	other := paper.New("Deep Residual Learning", "He et al.", srs.DefaultParameters, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	other.Category = []string{"computer_vision"}
	require.NoError(t, paperStore.Add(other))

	recorder := doRequest(t, s, http.MethodGet, "/api/search?q=attention&category=nlp", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var papers []paper.Paper
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &papers))
	require.Len(t, papers, 1)
	assert.Equal(t, "Attention Is All You Need", papers[0].PaperTitle)
}

func TestServer_Analytics(t *testing.T) {
	s, paperStore := newTestServer(t)

	p := paper.New("A Paper", "Anon", srs.DefaultParameters, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, paperStore.Add(p))

	recorder := doRequest(t, s, http.MethodGet, "/api/analytics?days=3", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response analyticsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Overview.TotalPapers)
	assert.Len(t, response.Upcoming, 3)
	assert.Equal(t, 0.0, response.Performance.RetentionRate)
	assert.Equal(t, 0, response.Performance.ReviewStreak)
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t)

	recorder := doRequest(t, s, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response healthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, 0, response.Papers)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}
