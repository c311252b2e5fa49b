package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/lifearchitect/internal/ai"
	"github.com/2beens/lifearchitect/internal/architect"
	architectmcp "github.com/2beens/lifearchitect/internal/architect/mcp"
	"github.com/2beens/lifearchitect/internal/assistant"
	"github.com/2beens/lifearchitect/internal/backup"
	"github.com/2beens/lifearchitect/internal/config"
	"github.com/2beens/lifearchitect/internal/jobs"
	"github.com/2beens/lifearchitect/internal/middleware"
	"github.com/2beens/lifearchitect/internal/notify"
	"github.com/2beens/lifearchitect/internal/playlist"
	"github.com/2beens/lifearchitect/internal/store"
	"github.com/2beens/lifearchitect/internal/telemetry/metrics"
	"github.com/2beens/lifearchitect/internal/telemetry/tracing"
	"github.com/2beens/lifearchitect/pkg"
)

// JSON payloads are small, AI descriptions included
const maxRequestBodyBytes = 1 << 20

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	stateStore  *StateStore
	redisClient *redis.Client
	store       store.Store

	service   *architect.Service
	meals     architect.MealEstimator
	advisor   architect.ExerciseAdvisor
	questions architect.QuestionGenerator
	playlists architect.PlaylistResolver
	jobs      *jobs.Runner

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	GeminiAPIKey            string
	SpotifyClientID         string
	SpotifyClientSecret     string
	SlackBotToken           string
	GDriveCredentialsJson   []byte
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "lifearchitect")
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:       cfg,
		versionInfo:  params.VersionInfo,
		otelShutdown: otelShutdown,
	}

	stateStore, err := OpenStateStore(ctx, StateStoreParams{
		Config:           cfg,
		RedisPassword:    params.RedisPassword,
		PostgresPassword: params.PostgresPassword,
		TracingEnabled:   params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}
	s.stateStore = stateStore
	s.store = stateStore.Store
	s.redisClient = stateStore.RedisClient

	s.promRegistry = metrics.SetupPrometheus(stateStore.Collectors...)
	s.metricsManager = metrics.NewManager("lifearchitect", "main", s.promRegistry)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	sinks := []notify.Sink{notify.LogSink{}}
	if params.SlackBotToken != "" && cfg.SlackChannelID != "" {
		slackSink, err := notify.NewSlackSink(params.SlackBotToken, cfg.SlackChannelID)
		if err != nil {
			return nil, fmt.Errorf("slack sink: %w", err)
		}
		sinks = append(sinks, slackSink)
	}

	s.service, err = architect.NewService(ctx, architect.Params{
		Store:    s.store,
		Sinks:    sinks,
		Metrics:  s.metricsManager,
		Location: loc,
	})
	if err != nil {
		return nil, fmt.Errorf("new dashboard service: %w", err)
	}

	generator := ai.NewGenerator(ai.GeminiParams{
		APIKey:            params.GeminiAPIKey,
		Model:             cfg.AIModel,
		RequestsPerSecond: cfg.AIRequestsPerSecond,
		CacheSizeMB:       cfg.AICacheSizeMB,
	})
	s.meals = assistant.NewMealEstimator(generator)
	s.advisor = assistant.NewExerciseAdvisor(generator, time.Now)
	s.questions = assistant.NewQuestionGenerator(generator)
	s.playlists = playlist.NewResolver(params.SpotifyClientID, params.SpotifyClientSecret)

	var backuper jobs.Backuper
	if len(params.GDriveCredentialsJson) > 0 {
		remote, err := backup.NewDriveRemote(ctx, params.GDriveCredentialsJson)
		if err != nil {
			return nil, fmt.Errorf("google drive remote: %w", err)
		}
		backuper = backup.NewService(remote, s.store, s.metricsManager, time.Now)
	} else if cfg.BackupCron != "" {
		log.Warnln("backup cron set but no google drive credentials given, backups disabled")
	}

	s.jobs, err = jobs.NewRunner(jobs.Params{
		NightlySpec: cfg.NightlyJobsCron,
		BackupSpec:  cfg.BackupCron,
		Location:    loc,
		Maintainer:  s.service,
		Backuper:    backuper,
		Metrics:     s.metricsManager,
	})
	if err != nil {
		return nil, fmt.Errorf("jobs runner: %w", err)
	}

	return s, nil
}

func (s *Server) routerSetup() (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	aiRouter := r.PathPrefix("/ai").Subrouter()
	if s.redisClient != nil {
		aiRouter.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			"ai",
			s.config.AIRateLimitAllowedMin,
			s.metricsManager,
		))
	} else {
		log.Warnln("no redis configured, AI routes are not rate limited")
	}

	dashboardHandler := architect.NewHandler(
		s.service,
		s.meals,
		s.advisor,
		s.questions,
		s.playlists,
		s.metricsManager,
	)
	dashboardHandler.SetupRoutes(r, aiRouter)

	mcpServer := architectmcp.NewServer(s.service, s.store)
	r.PathPrefix("/mcp").Handler(mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil))

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.LimitRequestBody(maxRequestBodyBytes))

	// CORS runs before routing so preflight requests never hit a 405
	return middleware.Cors(s.config.AllowedOrigins)(r), nil
}

func (s *Server) metricsRouterSetup() *mux.Router {
	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	return metricsRouter
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: s.metricsRouterSetup(),
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.jobs.Start()
	log.Debugf("scheduled jobs started, %d entries", s.jobs.Entries())

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	// waits for a running job to finish
	s.jobs.Stop()
	log.Debugln("scheduled jobs stopped")

	// stops session tickers, state is already persisted
	s.service.Close()

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.stateStore != nil {
		s.stateStore.Close()
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
