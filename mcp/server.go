// Package mcp runs the YouTube MCP server: it builds the API client,
// registers the tool surface and serves it over stdio or Streamable HTTP.
package mcp

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/universal-mcp/youtube/client"
	"github.com/universal-mcp/youtube/client/transcript"
	"github.com/universal-mcp/youtube/mcp/internal/handlers"
)

// Config holds all settings for the MCP server. Environment variables are
// parsed from the YOUTUBE_MCP_ prefix.
type Config struct {
	ServerName    string `envconfig:"SERVER_NAME" default:"youtube-mcp-server"`
	ServerVersion string `envconfig:"SERVER_VERSION" default:"0.1.0"`

	APIBaseURL string `envconfig:"API_BASE_URL" default:"https://www.googleapis.com/youtube/v3"`
	APIKey     string `envconfig:"API_KEY" default:""`
	AuthToken  string `envconfig:"AUTH_TOKEN" default:""`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`

	HTTPAddr         string        `envconfig:"HTTP_ADDR" default:":11547"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	HTTPReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPIdleTimeout  time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`

	// TranscriptLangs lists preferred caption languages in preference order.
	TranscriptLangs []string `envconfig:"TRANSCRIPT_LANGS" default:"en"`
}

// LoadConfig loads configuration from a .env file (if present) and the
// environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("YOUTUBE_MCP", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// initLogger initializes the global logger with the configured level.
func (c *Config) initLogger() {
	zerolog.SetGlobalLevel(parseLogLevel(c.LogLevel))
	log.Logger = log.With().Caller().Logger()
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) error {
	if err := handler.RegisterTools(s); err != nil {
		log.Error().Err(err).Msgf("Failed to register %s tools", name)
		return err
	}
	return nil
}

// Run starts the MCP server with configuration from the environment.
func Run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	cfg.initLogger()

	youtubeClient := newClient(cfg)
	log.Info().Str("api_base_url", cfg.APIBaseURL).Msg("YouTube client created")

	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
		// Advertise empty resources & prompts so the host client stops
		// returning -32601 for resources/list and prompts/list.
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
	)

	if err := registerHandler(s, handlers.NewAPIHandler(youtubeClient), "api"); err != nil {
		return err
	}
	if err := registerHandler(s, handlers.NewTranscriptHandler(youtubeClient), "transcript"); err != nil {
		return err
	}

	if shouldUseStdio() {
		// Stdio transport (for Claude Desktop, launched processes)
		log.Info().Msg("Starting YouTube MCP server (stdio transport)")
		if err := server.ServeStdio(s); err != nil {
			log.Error().Err(err).Msg("Stdio server error")
			return err
		}
		return nil
	}

	// HTTP transport (for manual/Docker startup)
	log.Info().Str("addr", cfg.HTTPAddr).Msg("Starting YouTube MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	shutdownComplete := make(chan struct{})

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)

	r := mux.NewRouter()
	r.PathPrefix("/mcp").Handler(streamSrv)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: 0, // No deadline - required for SSE streaming
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		defer close(shutdownComplete)

		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down HTTP server...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}

		log.Info().Msg("Shutting down MCP streamable server...")
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("HTTP server error")
		return err
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// newClient assembles the API client from config.
func newClient(cfg *Config) *client.Client {
	fetcher := transcript.NewWatchPageFetcher(transcript.WithLanguages(cfg.TranscriptLangs...))
	opts := []client.Option{
		client.WithBaseURL(cfg.APIBaseURL),
		client.WithTranscriptFetcher(fetcher),
	}
	if cfg.APIKey != "" {
		opts = append(opts, client.WithAPIKey(cfg.APIKey))
	}
	if cfg.AuthToken != "" {
		opts = append(opts, client.WithAuthToken(cfg.AuthToken))
	}
	if cfg.Debug {
		opts = append(opts, client.WithDebugLogging(true))
	}
	return client.New(opts...)
}

// shouldUseStdio determines whether to use stdio transport based on
// environment.
func shouldUseStdio() bool {
	// Force stdio mode with environment variable
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}

	// Force HTTP mode with environment variable
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}

	// Auto-detect: use stdio if stdin is not a terminal (launched by another process)
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}

	// Default to HTTP if detection fails
	return false
}
