package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/jaevor/go-nanoid"
	"github.com/serroba/web-toolbox/internal/apierror"
	"github.com/serroba/web-toolbox/internal/handlers"
	"github.com/serroba/web-toolbox/internal/shortener"
	"github.com/serroba/web-toolbox/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const baseURL = "http://localhost:8888/s"

var errMock = errors.New("mock error")

// recorderStub counts metric events by label.
type recorderStub struct {
	mu    sync.Mutex
	links map[string]int
	tools map[string]int
}

func newRecorderStub() *recorderStub {
	return &recorderStub{links: map[string]int{}, tools: map[string]int{}}
}

func (r *recorderStub) LinkCreated(provider string, custom bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if custom {
		provider += "/custom"
	}

	r.links[provider]++
}

func (r *recorderStub) ToolInvoked(tool, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tools[tool+"/"+outcome]++
}

func (r *recorderStub) tool(tool, outcome string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.tools[tool+"/"+outcome]
}

type fakeRenderer struct {
	pdf []byte
	err error
}

func (f *fakeRenderer) Render(_ context.Context, _ string) ([]byte, error) {
	return f.pdf, f.err
}

// failingStore fails every registry call.
type failingStore struct{}

func (failingStore) Save(context.Context, *shortener.ShortURL) error { return errMock }

func (failingStore) GetByCode(context.Context, shortener.Code) (*shortener.ShortURL, error) {
	return nil, errMock
}

func (failingStore) Exists(context.Context, shortener.Code) (bool, error) { return false, errMock }

// strategyStub returns a fixed result or error.
type strategyStub struct {
	err error
}

func (s strategyStub) Name() string { return "stub" }

func (s strategyStub) Shorten(_ context.Context, _ string, _ shortener.Code) (*shortener.Result, error) {
	return nil, s.err
}

type testEnv struct {
	api      humatest.TestAPI
	store    *store.MemoryStore
	metrics  *recorderStub
	renderer *fakeRenderer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repo := store.NewMemoryStore()

	gen, err := nanoid.Standard(8)
	require.NoError(t, err)

	return newTestEnvWith(t, repo, shortener.NewService(repo, shortener.NewTokenStrategy(repo, gen, baseURL)))
}

func newTestEnvWith(t *testing.T, repo *store.MemoryStore, svc *shortener.Service) *testEnv {
	t.Helper()

	apierror.Install(true)

	_, api := humatest.New(t)

	env := &testEnv{
		api:      api,
		store:    repo,
		metrics:  newRecorderStub(),
		renderer: &fakeRenderer{pdf: []byte("%PDF-1.4 test")},
	}

	handlers.RegisterRoutes(api,
		handlers.NewURLHandler(svc, env.metrics, zap.NewNop()),
		handlers.NewToolsHandler(env.renderer, env.metrics, zap.NewNop()),
	)

	return env
}

type envelope struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Details   string `json:"details"`
	Retryable bool   `json:"retryable"`
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out), resp.Body.String())

	return out
}
