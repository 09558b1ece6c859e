package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polkiloo/habitquest/internal/domain/model"
	"github.com/polkiloo/habitquest/internal/metrics"
	"github.com/polkiloo/habitquest/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/habitquest/internal/test"
)

func newEngine(t *testing.T, facade testhelpers.QuestFacadeStub) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	m, err := metrics.New()
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	engine, err := Setup(facade, m, logger)
	if err != nil {
		t.Fatalf("setup returned error: %v", err)
	}
	gin.SetMode(gin.TestMode)
	return engine
}

func serve(engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	habitID := uuid.New()
	engine := newEngine(t, testhelpers.QuestFacadeStub{
		HabitsFn: func(context.Context, int64) (*model.HabitBoard, error) {
			return &model.HabitBoard{Habits: []model.Habit{{ID: habitID, Name: "Read", Difficulty: model.DifficultyEasy}}, Coins: 10}, nil
		},
	})

	cases := []struct {
		method string
		path   string
		token  string
		body   any
		status int
	}{
		{http.MethodPost, "/api/auth/register", "", map[string]string{"username": "alice", "password": "secret"}, http.StatusOK},
		{http.MethodPost, "/api/auth/login", "", map[string]string{"username": "alice", "password": "secret"}, http.StatusOK},
		{http.MethodGet, "/api/user", "token", nil, http.StatusOK},
		{http.MethodGet, "/api/habits", "token", nil, http.StatusOK},
		{http.MethodPost, "/api/habits", "token", map[string]string{"name": "Run", "color": "#ff0000", "difficulty": "hard"}, http.StatusCreated},
		{http.MethodPatch, "/api/habits/" + habitID.String(), "token", map[string]string{"name": "Walk"}, http.StatusOK},
		{http.MethodDelete, "/api/habits/" + habitID.String(), "token", nil, http.StatusNoContent},
		{http.MethodPost, "/api/habits/" + habitID.String() + "/finish", "token", nil, http.StatusOK},
		{http.MethodGet, "/api/achievements", "token", nil, http.StatusOK},
		{http.MethodGet, "/api/shop", "token", nil, http.StatusOK},
		{http.MethodPost, "/api/shop", "token", map[string]any{"title": "Movie night", "price": 300}, http.StatusCreated},
		{http.MethodGet, "/healthz", "", nil, http.StatusOK},
		{http.MethodGet, "/metrics", "", nil, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp := serve(engine, tc.method, tc.path, tc.token, tc.body)
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d: %s", tc.status, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine := newEngine(t, testhelpers.QuestFacadeStub{})
	for _, path := range []string{"/api/user", "/api/habits", "/api/achievements", "/api/shop"} {
		if resp := serve(engine, http.MethodGet, path, "", nil); resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s, got %d", path, resp.Code)
		}
	}
}

func TestDifficultyValidatorRegistered(t *testing.T) {
	engine := newEngine(t, testhelpers.QuestFacadeStub{})
	resp := serve(engine, http.MethodPost, "/api/habits", "token", map[string]string{"name": "Run", "color": "#fff", "difficulty": "extreme"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown difficulty, got %d", resp.Code)
	}
}

func TestHealthzReportsUnavailableDatabase(t *testing.T) {
	engine := newEngine(t, testhelpers.QuestFacadeStub{
		HealthFn: func(context.Context) error { return errors.New("connection refused") },
	})
	resp := serve(engine, http.MethodGet, "/healthz", "", nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestMetricsEndpointExposesRequests(t *testing.T) {
	engine := newEngine(t, testhelpers.QuestFacadeStub{})
	serve(engine, http.MethodGet, "/api/achievements", "token", nil)

	resp := serve(engine, http.MethodGet, "/metrics", "", nil)
	if !strings.Contains(resp.Body.String(), `path="/api/achievements"`) {
		t.Fatalf("expected achievements route in exposition:\n%s", resp.Body.String())
	}
}

var _ handlers.QuestFacade = testhelpers.QuestFacadeStub{}
