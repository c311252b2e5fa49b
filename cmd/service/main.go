package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/lifearchitect/internal"
	"github.com/2beens/lifearchitect/internal/config"
	"github.com/2beens/lifearchitect/internal/logging"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      *env,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "lifearchitect-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)
	log.Debugf("using state store backend: [%s]", cfg.StoreBackend)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	geminiAPIKey := os.Getenv("LIFEARCHITECT_GEMINI_API_KEY")
	if geminiAPIKey == "" {
		log.Warnln("gemini api key not set, AI features disabled. use LIFEARCHITECT_GEMINI_API_KEY")
	}

	spotifyClientID := os.Getenv("LIFEARCHITECT_SPOTIFY_CLIENT_ID")
	spotifyClientSecret := os.Getenv("LIFEARCHITECT_SPOTIFY_CLIENT_SECRET")
	if spotifyClientID == "" || spotifyClientSecret == "" {
		log.Warnln("spotify credentials not set, playlist names will not be resolved. use LIFEARCHITECT_SPOTIFY_CLIENT_ID and LIFEARCHITECT_SPOTIFY_CLIENT_SECRET")
	}

	slackBotToken := os.Getenv("LIFEARCHITECT_SLACK_BOT_TOKEN")
	if slackBotToken == "" {
		log.Debugln("slack bot token not set, notifications only logged")
	}

	redisPassword := os.Getenv("LIFEARCHITECT_REDIS_PASS")
	if redisPassword == "" && cfg.RedisHost != "" {
		log.Errorf("redis password not set. use LIFEARCHITECT_REDIS_PASS")
	}

	postgresPassword := os.Getenv("LIFEARCHITECT_POSTGRES_PASS")
	if postgresPassword == "" && cfg.StoreBackend == config.StoreBackendPostgres {
		log.Errorf("postgres password not set. use LIFEARCHITECT_POSTGRES_PASS")
	}

	var gdriveCreds []byte
	if credsPath := os.Getenv("LIFEARCHITECT_GDRIVE_CREDENTIALS_FILE"); credsPath != "" {
		gdriveCreds, err = os.ReadFile(credsPath)
		if err != nil {
			log.Fatalf("read google drive credentials [%s]: %s", credsPath, err)
		}
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			RedisPassword:           redisPassword,
			PostgresPassword:        postgresPassword,
			GeminiAPIKey:            geminiAPIKey,
			SpotifyClientID:         spotifyClientID,
			SpotifyClientSecret:     spotifyClientSecret,
			SlackBotToken:           slackBotToken,
			GDriveCredentialsJson:   gdriveCreds,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}
