package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slr71/dashboard-aggregator/pkg/dashboard"
	"github.com/slr71/dashboard-aggregator/pkg/domain"
	"github.com/slr71/dashboard-aggregator/pkg/feed"
	"github.com/slr71/dashboard-aggregator/server/mocks"
)

type testDeps struct {
	cfg       *mocks.ConfigProviderMock
	agg       *mocks.AggregatorMock
	health    *mocks.HealthCheckerMock
	feeds     *mocks.FeedStatsMock
	scheduler *mocks.SchedulerMock
}

func newTestDeps(listen string) *testDeps {
	return &testDeps{
		cfg: &mocks.ConfigProviderMock{
			GetServerConfigFunc: func() (string, time.Duration) { return listen, 30 * time.Second },
			GetDefaultLimitFunc: func() int { return 10 },
		},
		agg:    &mocks.AggregatorMock{},
		health: &mocks.HealthCheckerMock{},
		feeds: &mocks.FeedStatsMock{
			StatsFunc: func() []feed.Stats { return []feed.Stats{{Name: "news", State: "populated", Items: 3}} },
		},
		scheduler: &mocks.SchedulerMock{},
	}
}

// testServer creates a server instance using the actual New function
func testServer(t *testing.T, deps *testDeps) *Server {
	t.Helper()
	return New(Params{
		Config:     deps.cfg,
		Aggregator: deps.agg,
		Health:     deps.health,
		Feeds:      deps.feeds,
		Scheduler:  deps.scheduler,
		Version:    "1.2.3",
	})
}

func TestServer_New(t *testing.T) {
	srv := testServer(t, newTestDeps(":8080"))
	assert.NotNil(t, srv)
	assert.Equal(t, "1.2.3", srv.version)
	assert.False(t, srv.debug)
	assert.NotNil(t, srv.router)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	srv := testServer(t, newTestDeps(fmt.Sprintf("127.0.0.1:%d", port)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
	assert.Equal(t, "dashboard-aggregator", resp.Header.Get("App-Name"))
	assert.Equal(t, "1.2.3", resp.Header.Get("App-Version"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunBadAddress(t *testing.T) {
	srv := testServer(t, newTestDeps("bad-address:-1"))
	err := srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server error")
}

func TestServer_Recoverer(t *testing.T) {
	deps := newTestDeps(":8080")
	deps.agg.FeedsFunc = func(ctx context.Context) map[string][]domain.FeedItem { panic("boom") }
	srv := testServer(t, deps)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/feeds", http.NoBody))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRenderFailure(t *testing.T) {
	tbl := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &dashboard.ValidationError{Field: "limit", Message: "invalid row limit"}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("dashboard: %w", &dashboard.ValidationError{Message: "bad"}), http.StatusBadRequest},
		{"upstream", errors.New("public app ids: url http://x; status code 502"), http.StatusInternalServerError},
		{"timeout", fmt.Errorf("recent analyses timed out after 1s: %w", context.DeadlineExceeded), http.StatusInternalServerError},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			renderFailure(w, httptest.NewRequest(http.MethodGet, "/users/alice", http.NoBody), tt.err)
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.err.Error()), w.Body.String())
		})
	}
}

func TestRenderError_Nil(t *testing.T) {
	w := httptest.NewRecorder()
	renderError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), nil, http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"unknown error"}`, w.Body.String())
}
