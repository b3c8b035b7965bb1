// Package bootstrap loads configuration from the environment, configures
// structured logging, and wires the engine's dependencies together.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub"

	shared "github.com/ripixel/readiness/pkg"
	"github.com/ripixel/readiness/pkg/cache"
	infrapubsub "github.com/ripixel/readiness/pkg/infrastructure/pubsub"
	"github.com/ripixel/readiness/pkg/recommendation"
	"github.com/ripixel/readiness/pkg/recovery"
	storefs "github.com/ripixel/readiness/pkg/storage/firestore"
)

// Config holds standard configuration for the server
type Config struct {
	ProjectID       string
	EnablePublish   bool
	Port            string
	SentryDSN       string
	CacheTTL        time.Duration
	CacheMaxEntries int
}

// Service holds initialized dependencies
type Service struct {
	Store     shared.MetricsStore
	Pub       shared.Publisher
	Readiness *cache.Service
	Logger    *slog.Logger
	Config    *Config
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	cfg := &Config{
		ProjectID:       os.Getenv("GOOGLE_CLOUD_PROJECT"),
		EnablePublish:   os.Getenv("ENABLE_PUBLISH") == "true",
		Port:            os.Getenv("PORT"),
		SentryDSN:       os.Getenv("SENTRY_DSN"),
		CacheTTL:        cache.DefaultTTL,
		CacheMaxEntries: cache.DefaultMaxEntries,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if hours, err := strconv.Atoi(os.Getenv("CACHE_TTL_HOURS")); err == nil && hours > 0 {
		cfg.CacheTTL = time.Duration(hours) * time.Hour
	}
	if n, err := strconv.Atoi(os.Getenv("CACHE_MAX_ENTRIES")); err == nil && n > 0 {
		cfg.CacheMaxEntries = n
	}
	return cfg
}

// GetSlogHandlerOptions returns standard handler options for GCP
func GetSlogHandlerOptions(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Map standard keys to Cloud Logging keys
			if a.Key == slog.MessageKey {
				return slog.Attr{Key: "message", Value: a.Value}
			}
			if a.Key == slog.LevelKey {
				return slog.Attr{Key: "severity", Value: a.Value}
			}
			return a
		},
	}
}

// ComponentHandler wraps a slog.Handler to prepend [component] to the message
type ComponentHandler struct {
	slog.Handler
	component string
}

// WithGroup implements slog.Handler
func (h *ComponentHandler) WithGroup(name string) slog.Handler {
	return &ComponentHandler{
		Handler:   h.Handler.WithGroup(name),
		component: h.component,
	}
}

// WithAttrs implements slog.Handler
func (h *ComponentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newComp := h.component
	for _, a := range attrs {
		if a.Key == "component" {
			newComp = a.Value.String()
		}
	}
	return &ComponentHandler{
		Handler:   h.Handler.WithAttrs(attrs),
		component: newComp,
	}
}

// Handle implements slog.Handler
func (h *ComponentHandler) Handle(ctx context.Context, r slog.Record) error {
	comp := h.component

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "component" {
			comp = a.Value.String()
			return false
		}
		return true
	})

	if comp != "" {
		newMsg := fmt.Sprintf("[%s] %s", comp, r.Message)
		newRecord := slog.NewRecord(r.Time, r.Level, newMsg, r.PC)
		r.Attrs(func(a slog.Attr) bool {
			newRecord.AddAttrs(a)
			return true
		})
		r = newRecord
	}

	return h.Handler.Handle(ctx, r)
}

// NewLogger creates a configured logger instance
func NewLogger(serviceName string) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := GetSlogHandlerOptions(level)
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(&ComponentHandler{Handler: handler}).With("service", serviceName)
}

// NewService initializes all standard dependencies
func NewService(ctx context.Context) (*Service, error) {
	cfg := LoadConfig()
	logger := NewLogger("readiness")
	slog.SetDefault(logger)

	logger.Info("Initializing service", "project_id", cfg.ProjectID)

	fsClient, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		logger.Error("Firestore init failed", "error", err)
		return nil, fmt.Errorf("firestore init: %w", err)
	}
	store := storefs.NewStore(storefs.NewClient(fsClient))

	var pub shared.Publisher
	if cfg.EnablePublish {
		psClient, err := pubsub.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			logger.Error("PubSub init failed", "error", err)
			return nil, fmt.Errorf("pubsub init: %w", err)
		}
		pub = &infrapubsub.PubSubAdapter{Client: psClient}
		logger.Info("Pub/Sub: REAL (ENABLE_PUBLISH=true)")
	} else {
		pub = &infrapubsub.LogPublisher{}
		logger.Info("Pub/Sub: MOCK (LogPublisher)")
	}

	readiness := cache.NewService(
		recovery.New(store, logger.With("component", "recovery")),
		recommendation.New(logger.With("component", "recommendation")),
		pub,
		logger.With("component", "cache"),
		cfg.CacheTTL,
		cfg.CacheMaxEntries,
	)

	return &Service{
		Store:     store,
		Pub:       pub,
		Readiness: readiness,
		Logger:    logger,
		Config:    cfg,
	}, nil
}
