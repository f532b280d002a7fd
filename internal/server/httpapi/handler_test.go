package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dmitrijs2005/wandergenie/internal/cryptox"
	"github.com/dmitrijs2005/wandergenie/internal/logging"
	"github.com/dmitrijs2005/wandergenie/internal/server/config"
	"github.com/dmitrijs2005/wandergenie/internal/server/itineraries"
	"github.com/dmitrijs2005/wandergenie/internal/server/users"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testAPI struct {
	srv  *Server
	logs *observer.ObservedLogs
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	us := users.NewService(users.NewInMemoryRepository(), cfg).
		WithHashParams(cryptox.Params{Memory: 1024, Time: 1, Threads: 1, SaltLen: 8, KeyLen: 16})
	is := itineraries.NewService(itineraries.NewInMemoryRepository(), itineraries.PlaceholderGenerator{})

	core, logs := observer.New(zapcore.InfoLevel)
	srv := NewServer(":0", logging.Nop(), zap.New(core), us, is, Info{Version: "1.0.0", Database: "wandergenie"})
	return &testAPI{srv: srv, logs: logs}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (a *testAPI) signup(t *testing.T, email string) string {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/auth/register", "", gin.H{"email": email, "name": "Ann", "password": "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = a.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": "secret1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[tokenResponse](t, rec).AccessToken
}

func TestRegister(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodPost, "/auth/register", "", gin.H{"email": "ann@example.com", "name": "Ann", "password": "secret1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	u := decode[userResponse](t, rec)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "ann@example.com", u.Email)
	assert.NotEmpty(t, u.CreatedAt)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = a.do(t, http.MethodPost, "/auth/register", "", gin.H{"email": "ann@example.com", "name": "Ann", "password": "secret1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"Email already registered"}`, rec.Body.String())
}

func TestRegister_Validation(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodPost, "/auth/register", "", gin.H{"email": "nope", "name": "Ann", "password": "123"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := decode[struct {
		Detail []validationIssue `json:"detail"`
	}](t, rec)
	require.Len(t, body.Detail, 2)
	assert.Equal(t, []string{"body", "email"}, body.Detail[0].Loc)
	assert.Equal(t, "email: value is not a valid email address", body.Detail[0].Msg)
	assert.Equal(t, "password: ensure this value has at least 6 characters", body.Detail[1].Msg)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	a.srv.Handler().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestLogin(t *testing.T) {
	a := newTestAPI(t)
	token := a.signup(t, "ann@example.com")
	assert.NotEmpty(t, token)

	rec := a.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "ann@example.com", "password": "wrong-pw"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Incorrect email or password"}`, rec.Body.String())
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

	rec = a.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": "ghost@example.com", "password": "secret1"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	a := newTestAPI(t)
	token := a.signup(t, "ann@example.com")

	rec := a.do(t, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ann@example.com", decode[userResponse](t, rec).Email)

	rec = a.do(t, http.MethodGet, "/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Not authenticated"}`, rec.Body.String())

	rec = a.do(t, http.MethodGet, "/auth/me", "forged", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, rec.Body.String())
}

func TestPlanAndItineraries(t *testing.T) {
	a := newTestAPI(t)
	token := a.signup(t, "ann@example.com")
	other := a.signup(t, "bob@example.com")

	rec := a.do(t, http.MethodPost, "/plan", token, gin.H{
		"destination": "Tokyo, Japan", "days": 2, "budget": 1000, "travel_style": "cultural",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	it := decode[itineraries.Itinerary](t, rec)
	assert.Equal(t, "Tokyo, Japan", it.Destination)
	assert.Len(t, it.Days, 2)

	rec = a.do(t, http.MethodPost, "/plan", token, gin.H{
		"destination": "Rome", "days": 1, "budget": 400, "travel_style": "budget",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodGet, "/itineraries", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	h := decode[historyResponse](t, rec)
	require.Equal(t, 2, h.Count)
	assert.Equal(t, "Rome", h.Itineraries[0].Destination)
	assert.Equal(t, "Tokyo, Japan", h.Itineraries[1].Destination)
	assert.Equal(t, 2, h.Itineraries[1].Itinerary.TotalDays)

	rec = a.do(t, http.MethodGet, "/itineraries", other, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":0,"itineraries":[]}`, rec.Body.String())
}

func TestPlan_ValidationAndAuth(t *testing.T) {
	a := newTestAPI(t)
	token := a.signup(t, "ann@example.com")

	rec := a.do(t, http.MethodPost, "/plan", token, gin.H{
		"destination": "Tokyo", "days": 31, "budget": 1000, "travel_style": "party",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "days: ensure this value is less than or equal to 30")
	assert.Contains(t, rec.Body.String(), "travel_style: value is not a valid enumeration member")

	rec = a.do(t, http.MethodPost, "/plan", "", gin.H{"destination": "Tokyo"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthRootAndNotFound(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","version":"1.0.0","database":"wandergenie"}`, rec.Body.String())

	rec = a.do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome to WanderGenie API")

	rec = a.do(t, http.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestLogger(t *testing.T) {
	a := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	a.srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	entries := a.logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/health", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.Equal(t, "req-42", fields["request_id"])
}
