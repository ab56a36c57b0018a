package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sterling-client/internal/adapter"
	"github.com/MKhiriev/sterling-client/internal/apitest"
	"github.com/MKhiriev/sterling-client/internal/config"
	"github.com/MKhiriev/sterling-client/internal/logger"
	"github.com/MKhiriev/sterling-client/internal/retrier"
	"github.com/MKhiriev/sterling-client/internal/session"
	"github.com/MKhiriev/sterling-client/internal/store"
)

type recordingNavigator struct {
	mu     sync.Mutex
	routes []string
}

func (n *recordingNavigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *recordingNavigator) Routes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.routes...)
}

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// env is a client stack wired against a fake API.
type env struct {
	api       *apitest.Server
	kv        store.StorageService
	creds     *store.CredentialStore
	cache     *store.SnapshotCache
	clock     *testClock
	navigator *recordingNavigator
	session   *session.Manager
	adapter   adapter.ServerAdapter
	reads     retrier.Policy
	data      DataSynchronizer
}

func testPolicy() retrier.Policy {
	return retrier.Policy{MaxAttempts: 3, BaseDelay: time.Millisecond, Retryable: adapter.IsRetryable}
}

func newEnv(t *testing.T) *env {
	t.Helper()
	log := logger.Nop()

	e := &env{
		api:       apitest.NewServer(t),
		kv:        store.NewMemoryStorage(),
		clock:     &testClock{t: time.UnixMilli(1_700_000_000_000)},
		navigator: &recordingNavigator{},
		reads:     testPolicy(),
	}
	e.creds = store.NewCredentialStore(e.kv, log)
	e.session = session.NewManager(e.creds, e.navigator, log)
	e.cache = store.NewSnapshotCache(e.kv, e.session, store.DefaultCacheTTL, log).WithClock(e.clock.Now)

	r, err := adapter.NewRequester(config.ClientAdapter{HTTPAddress: e.api.URL, RequestTimeout: 2 * time.Second}, e.session, e.session, log)
	require.NoError(t, err)
	e.adapter = adapter.NewHTTPServerAdapter(r)
	e.data = NewDataSynchronizer(e.adapter, e.cache, e.session, e.reads, log)
	return e
}

// signIn stores the token the fake API accepts.
func (e *env) signIn(t *testing.T) {
	t.Helper()
	require.NoError(t, e.session.Begin(context.Background(), e.api.Token()))
}
