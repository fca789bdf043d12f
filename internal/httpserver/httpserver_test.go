package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insight-srv/config"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/log"
	"insight-srv/pkg/random"

	"github.com/gin-gonic/gin"
	"github.com/m-mizutani/gt"
)

type fakeBackend struct {
	healthErr error
}

func (f fakeBackend) GetCompanies(context.Context) ([]backend.Company, error) {
	return []backend.Company{{ID: "acme", DisplayName: "Acme"}}, nil
}

func (f fakeBackend) GetSentiment(context.Context, string) (backend.Sentiment, error) {
	return backend.Sentiment{}, errors.New("down")
}

func (f fakeBackend) GetKeywords(context.Context, string) ([]backend.Keyword, error) {
	return nil, errors.New("down")
}

func (f fakeBackend) GetThemes(context.Context, string) ([]string, error) {
	return nil, errors.New("down")
}

func (f fakeBackend) GetMentions(context.Context, string, string) ([]backend.RawMention, error) {
	return nil, errors.New("down")
}

func (f fakeBackend) Health(context.Context) error { return f.healthErr }

type fakeRedis struct {
	pingErr error
}

func (f fakeRedis) Set(context.Context, string, any, time.Duration) error { return nil }
func (f fakeRedis) Get(context.Context, string) ([]byte, error)            { return nil, errors.New("miss") }
func (f fakeRedis) Delete(context.Context, ...string) error               { return nil }
func (f fakeRedis) Ping(context.Context) error                            { return f.pingErr }
func (f fakeRedis) Close() error                                          { return nil }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Environment.Name = "test"
	cfg.Backend.BaseURL = "http://backend.invalid"
	cfg.Backend.Timeout = time.Second
	cfg.Alerts.NegativeSpikeThreshold = 5
	cfg.Alerts.VolumeThreshold = 50
	cfg.Realtime.Interval = time.Second
	cfg.App.DefaultBrand = "TechStart Inc"
	return cfg
}

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	if cfg.Config == nil {
		cfg.Config = testConfig()
	}
	cfg.Logger = log.NewNop()
	cfg.Mode = gin.TestMode
	cfg.Port = 8080
	cfg.Random = random.New(1)

	srv, err := New(cfg.Logger, cfg)
	gt.NoError(t, err)
	gt.NoError(t, srv.mapHandlers())
	return srv
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew(t *testing.T) {
	t.Run("requires logger", func(t *testing.T) {
		_, err := New(nil, Config{Mode: gin.TestMode, Port: 1, Config: testConfig()})
		gt.Error(t, err)
	})

	t.Run("requires port", func(t *testing.T) {
		_, err := New(log.NewNop(), Config{Logger: log.NewNop(), Mode: gin.TestMode, Config: testConfig()})
		gt.Error(t, err)
	})

	t.Run("requires config", func(t *testing.T) {
		_, err := New(log.NewNop(), Config{Logger: log.NewNop(), Mode: gin.TestMode, Port: 1})
		gt.Error(t, err)
	})

	t.Run("builds backend client when none given", func(t *testing.T) {
		srv, err := New(log.NewNop(), Config{Logger: log.NewNop(), Mode: gin.TestMode, Port: 1, Config: testConfig()})
		gt.NoError(t, err)
		gt.True(t, srv.backend != nil)
		gt.True(t, srv.state != nil)
	})
}

func TestSystemRoutes(t *testing.T) {
	t.Run("health and live", func(t *testing.T) {
		srv := newTestServer(t, Config{Backend: fakeBackend{}})
		for _, path := range []string{"/health", "/live"} {
			w := get(srv, path)
			gt.Equal(t, w.Code, http.StatusOK)
			gt.S(t, w.Body.String()).Contains(`"service":"insight-srv"`)
		}
	})

	t.Run("ready with healthy backend", func(t *testing.T) {
		srv := newTestServer(t, Config{Backend: fakeBackend{}, RedisClient: fakeRedis{}})
		w := get(srv, "/ready")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.S(t, w.Body.String()).Contains(`"backend":"connected"`)
		gt.S(t, w.Body.String()).Contains(`"redis":"connected"`)
		gt.S(t, w.Body.String()).Contains(`"kafka":"disabled"`)
	})

	t.Run("ready with unreachable backend", func(t *testing.T) {
		srv := newTestServer(t, Config{Backend: fakeBackend{healthErr: errors.New("down")}})
		w := get(srv, "/ready")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.S(t, w.Body.String()).Contains(`"backend":"unavailable"`)
	})

	t.Run("not ready when redis fails", func(t *testing.T) {
		srv := newTestServer(t, Config{Backend: fakeBackend{}, RedisClient: fakeRedis{pingErr: errors.New("refused")}})
		w := get(srv, "/ready")
		gt.Equal(t, w.Code, http.StatusServiceUnavailable)
	})
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t, Config{Backend: fakeBackend{}})

	t.Run("companies from backend", func(t *testing.T) {
		w := get(srv, "/api/v1/companies")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.S(t, w.Body.String()).Contains(`"acme"`)
	})

	t.Run("risk falls back when backend fails", func(t *testing.T) {
		w := get(srv, "/api/v1/companies/acme/risk")
		gt.Equal(t, w.Code, http.StatusOK)
	})

	t.Run("state", func(t *testing.T) {
		w := get(srv, "/api/v1/state")
		gt.Equal(t, w.Code, http.StatusOK)
		gt.S(t, w.Body.String()).Contains(`"selectedBrand":"TechStart Inc"`)
	})

	t.Run("overview page", func(t *testing.T) {
		w := get(srv, "/api/v1/pages/overview")
		gt.Equal(t, w.Code, http.StatusOK)
	})

	t.Run("request id header", func(t *testing.T) {
		w := get(srv, "/health")
		gt.True(t, w.Header().Get("X-Request-ID") != "")
	})
}
