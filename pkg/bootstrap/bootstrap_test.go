package bootstrap

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/ripixel/readiness/pkg/cache"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("ENABLE_PUBLISH", "")
	t.Setenv("PORT", "")
	t.Setenv("CACHE_TTL_HOURS", "")
	t.Setenv("CACHE_MAX_ENTRIES", "")

	cfg := LoadConfig()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.EnablePublish {
		t.Error("publishing must default off")
	}
	if cfg.CacheTTL != cache.DefaultTTL {
		t.Errorf("expected default TTL, got %v", cfg.CacheTTL)
	}
	if cfg.CacheMaxEntries != cache.DefaultMaxEntries {
		t.Errorf("expected default max entries, got %d", cfg.CacheMaxEntries)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "readiness-prod")
	t.Setenv("ENABLE_PUBLISH", "true")
	t.Setenv("PORT", "9000")
	t.Setenv("CACHE_TTL_HOURS", "6")
	t.Setenv("CACHE_MAX_ENTRIES", "1024")

	cfg := LoadConfig()

	if cfg.ProjectID != "readiness-prod" {
		t.Errorf("expected readiness-prod, got %s", cfg.ProjectID)
	}
	if !cfg.EnablePublish {
		t.Error("expected publishing enabled")
	}
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.CacheTTL != 6*time.Hour {
		t.Errorf("expected 6h TTL, got %v", cfg.CacheTTL)
	}
	if cfg.CacheMaxEntries != 1024 {
		t.Errorf("expected 1024 entries, got %d", cfg.CacheMaxEntries)
	}
}

func TestLoadConfigIgnoresBadNumbers(t *testing.T) {
	t.Setenv("CACHE_TTL_HOURS", "banana")
	t.Setenv("CACHE_MAX_ENTRIES", "-5")

	cfg := LoadConfig()
	if cfg.CacheTTL != cache.DefaultTTL {
		t.Errorf("bad TTL should fall back to default, got %v", cfg.CacheTTL)
	}
	if cfg.CacheMaxEntries != cache.DefaultMaxEntries {
		t.Errorf("negative max entries should fall back to default, got %d", cfg.CacheMaxEntries)
	}
}

func TestComponentHandlerPrefixesMessages(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, GetSlogHandlerOptions(slog.LevelInfo))
	logger := slog.New(&ComponentHandler{Handler: handler})

	logger.With("component", "recovery").Info("score computed", "total", 92)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	msg, _ := entry["message"].(string)
	if !strings.HasPrefix(msg, "[recovery] ") {
		t.Errorf("expected component prefix, got %q", msg)
	}
	if entry["severity"] != "INFO" {
		t.Errorf("expected Cloud Logging severity key, got %v", entry["severity"])
	}
	if entry["total"] != float64(92) {
		t.Errorf("expected structured attr to survive, got %v", entry["total"])
	}
}

func TestComponentHandlerWithoutComponent(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, GetSlogHandlerOptions(slog.LevelInfo))
	logger := slog.New(&ComponentHandler{Handler: handler})

	logger.Info("plain message")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "plain message" {
		t.Errorf("expected unprefixed message, got %v", entry["message"])
	}
}
