package httpserver

import (
	"errors"
	"time"

	"insight-srv/config"
	"insight-srv/internal/analytics"
	"insight-srv/internal/appstate"
	"insight-srv/internal/mockdata"
	"insight-srv/internal/xai"
	"insight-srv/pkg/backend"
	pkghttp "insight-srv/pkg/http"
	pkgKafka "insight-srv/pkg/kafka"
	"insight-srv/pkg/log"
	"insight-srv/pkg/random"
	pkgRedis "insight-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	corsOrigins []string

	config *config.Config

	// Optional infrastructure
	redisClient   pkgRedis.IRedis
	kafkaProducer pkgKafka.IProducer

	// Shared domain dependencies
	backend backend.IBackend
	rnd     random.Source
	mock    mockdata.Generator
	xai     xai.Generator
	state   appstate.Store

	// Set while mapping handlers
	analyticsUC analytics.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	CORSOrigins []string

	Config *config.Config

	// RedisClient enables the backend response cache when set.
	RedisClient pkgRedis.IRedis
	// KafkaProducer enables publishing of derived alerts when set.
	KafkaProducer pkgKafka.IProducer

	// Backend overrides the HTTP backend client built from Config.Backend.
	Backend backend.IBackend
	// Random overrides the time-seeded source used for generated data.
	Random random.Source
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		corsOrigins: cfg.CORSOrigins,

		config: cfg.Config,

		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,

		backend: cfg.Backend,
		rnd:     cfg.Random,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if srv.rnd == nil {
		srv.rnd = random.NewTimeSeeded()
	}
	if srv.backend == nil {
		srv.backend = newBackend(cfg.Config.Backend)
	}
	srv.mock = mockdata.New(srv.rnd, time.Now)
	srv.xai = xai.New(srv.rnd)
	srv.state = appstate.New(appstate.Config{DefaultBrand: cfg.Config.App.DefaultBrand})

	return srv, nil
}

func newBackend(cfg config.BackendConfig) backend.IBackend {
	return backend.New(backend.Config{
		BaseURL: cfg.BaseURL,
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.Timeout,
			Retries:   cfg.Retries,
			RetryWait: cfg.RetryWait,
			UserAgent: ServiceName + "/" + HealthVersion,
		}),
	})
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Redis and Kafka are optional
	return nil
}
