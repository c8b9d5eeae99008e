package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chhavipande/museumyatra/internal/api"
	"github.com/chhavipande/museumyatra/internal/api/response"
	"github.com/chhavipande/museumyatra/internal/clock"
	"github.com/chhavipande/museumyatra/internal/factory"
	"github.com/chhavipande/museumyatra/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use the real wiring over memory storage
	store := memory.New()
	app, err := factory.NewWithDependencies(context.Background(), store, clock.New(), logger)
	require.NoError(t, err)
	err = app.CatalogService.LoadFromFile("../../data/museums.json")
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		AccountsService: app.AccountsService,
		JourneyService:  app.JourneyService,
		CatalogService:  app.CatalogService,
	})

	return &testServer{
		handler: router,
		storage: store,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) register(t *testing.T, username, password string) {
	t.Helper()
	body := map[string]string{"username": username, "password": password}
	rr := ts.request(http.MethodPost, "/api/v1/auth/register", body)
	require.Equal(t, http.StatusCreated, rr.Code)
}

func (ts *testServer) login(t *testing.T, username, password string) {
	t.Helper()
	body := map[string]string{"username": username, "password": password}
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", body)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestListMuseums(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/museums", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.MuseumList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Count)
}

func TestSearchMuseums(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/museums?q=kolkata", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.MuseumList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	for _, m := range resp.Museums {
		assert.Equal(t, "Kolkata", m.City)
	}
}

func TestGetMuseum(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/museums/salar-jung-hyderabad", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Museum
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Salar Jung Museum", resp.Name)
	assert.Equal(t, "10:00 - 17:00 • Closed: Friday", resp.Hours)
}

func TestGetMuseumNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/museums/atlantis", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "MUSEUM_NOT_FOUND")
}

func TestRegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	ts.register(t, "alice", "pw123")

	// Registration does not sign in
	rr := ts.request(http.MethodGet, "/api/v1/me", nil)
	var me response.Me
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &me))
	assert.True(t, me.Anonymous)

	ts.login(t, "alice", "pw123")

	rr = ts.request(http.MethodGet, "/api/v1/me", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &me))
	assert.False(t, me.Anonymous)
	assert.Equal(t, "alice", me.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)

	ts.register(t, "alice", "pw123")

	body := map[string]string{"username": "alice", "password": "other"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/register", body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "DUPLICATE_USERNAME")
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	ts.register(t, "alice", "pw123")

	body := map[string]string{"username": "alice", "password": "wrong"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", body)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "WRONG_PASSWORD")
}

func TestLoginUnknownUser(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"username": "nobody", "password": "pw123"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", body)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "UNKNOWN_USER")
}

func TestRecordVisit(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice", "pw123")
	ts.login(t, "alice", "pw123")

	body := map[string]any{"museum_id": "indian-museum-kolkata", "rating": 5, "note": "the mummy!"}
	rr := ts.request(http.MethodPost, "/api/v1/visits", body)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.VisitResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "indian-museum-kolkata", resp.Entry.MuseumID)
	assert.Equal(t, 5, resp.Entry.Rating)
	assert.Equal(t, 10, resp.Points)

	require.Len(t, resp.NewBadges, 1)
	assert.Equal(t, "novice traveller", resp.NewBadges[0].ID)
}

func TestRecordVisitInvalidRating(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"museum_id": "indian-museum-kolkata", "rating": 9}
	rr := ts.request(http.MethodPost, "/api/v1/visits", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_RATING")
}

func TestRecordVisitUnknownMuseum(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{"museum_id": "atlantis"}
	rr := ts.request(http.MethodPost, "/api/v1/visits", body)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWishlistToggleAndVisitInteraction(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/wishlist/salar-jung-hyderabad/toggle", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var toggle response.ToggleResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &toggle))
	assert.True(t, toggle.Member)

	// Visiting removes the museum from the wishlist
	body := map[string]any{"museum_id": "salar-jung-hyderabad"}
	rr = ts.request(http.MethodPost, "/api/v1/visits", body)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/me/progress", nil)
	var progress response.Progress
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &progress))
	assert.Empty(t, progress.Wishlist)
	require.Len(t, progress.Visited, 1)
	assert.Equal(t, "salar-jung-hyderabad", progress.Visited[0].Entry.MuseumID)
}

func TestFavoriteToggle(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/favorites/city-palace-jaipur/toggle", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/favorites/city-palace-jaipur/toggle", nil)
	var toggle response.ToggleResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &toggle))
	assert.False(t, toggle.Member)
}

func TestBadgeBoard(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/badges", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var board response.BadgeBoard
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &board))
	require.Len(t, board.Badges, 7)
	for _, st := range board.Badges {
		assert.False(t, st.Unlocked)
	}
}

func TestAnonymousJourneyIsSeparate(t *testing.T) {
	ts := newTestServer(t)

	// Anonymous visit
	body := map[string]any{"museum_id": "indian-museum-kolkata"}
	rr := ts.request(http.MethodPost, "/api/v1/visits", body)
	require.Equal(t, http.StatusOK, rr.Code)

	ts.register(t, "alice", "pw123")
	ts.login(t, "alice", "pw123")

	rr = ts.request(http.MethodGet, "/api/v1/me/progress", nil)
	var progress response.Progress
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &progress))
	assert.Empty(t, progress.Visited)
	assert.Equal(t, 0, progress.Points)
}

func TestResetKeepsBadges(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice", "pw123")
	ts.login(t, "alice", "pw123")

	body := map[string]any{"museum_id": "indian-museum-kolkata"}
	rr := ts.request(http.MethodPost, "/api/v1/visits", body)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/me/reset", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/me/progress", nil)
	var progress response.Progress
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &progress))
	assert.Empty(t, progress.Visited)
	assert.Equal(t, 0, progress.Points)
	assert.Equal(t, []string{"novice traveller"}, progress.Badges)
}

func TestDeleteAccount(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice", "pw123")
	ts.login(t, "alice", "pw123")

	rr := ts.request(http.MethodDelete, "/api/v1/me", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	body := map[string]string{"username": "alice", "password": "pw123"}
	rr = ts.request(http.MethodPost, "/api/v1/auth/login", body)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestDeleteAccountRequiresSignIn(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodDelete, "/api/v1/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_SIGNED_IN")
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "alice", "pw123")
	ts.login(t, "alice", "pw123")

	rr := ts.request(http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/me", nil)
	var me response.Me
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &me))
	assert.True(t, me.Anonymous)
}
