package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"clausecheck/internal/config"
	"clausecheck/internal/queue"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields, writes an empty requirements file, and applies
// any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.InboxDir = filepath.Join(base, "inbox")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"
	cfg.Review.RequirementsPath = filepath.Join(base, "requirements.json")
	cfg.Workflow.QueuePollInterval = 1

	WriteJSON(t, cfg.Review.RequirementsPath, map[string]any{"clauses": []any{}})

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithTopK overrides the candidate truncation limit on the test config.
func WithTopK(topK int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Review.TopK = topK
	}
}

// WithAPIToken sets the bearer token on the test config.
func WithAPIToken(token string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.APIToken = token
	}
}

// MustOpenStore opens a queue store for the config and closes it when the
// test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *queue.Store {
	t.Helper()

	store, err := queue.Open(cfg)
	if err != nil {
		t.Fatalf("open queue store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// WriteJSON marshals value and writes it to path, creating parent
// directories as needed.
func WriteJSON(t testing.TB, path string, value any) {
	t.Helper()

	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal %s: %v", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
