package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"clickgrid/internal/search"
)

func writeTempYaml(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "solver.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp yaml: %v", err)
	}
	return path
}

func TestFromYamlOverridesDefaults(t *testing.T) {
	path := writeTempYaml(t, "k: 3\nmaxSteps: 50\ntimeout: 5s\nheuristic: wrong\n")
	cfg, err := FromYaml(path)
	if err != nil {
		t.Fatalf("FromYaml: %v", err)
	}
	if cfg.K != 3 || cfg.MaxSteps != 50 {
		t.Fatalf("got K=%d MaxSteps=%d, want K=3 MaxSteps=50", cfg.K, cfg.MaxSteps)
	}
	if cfg.Timeout().Seconds() != 5 {
		t.Fatalf("got timeout %v, want 5s", cfg.Timeout())
	}
}

func TestFromYamlMissingFileErrors(t *testing.T) {
	if _, err := FromYaml(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error reading a nonexistent config file")
	}
}

func TestSearchOptionsHeuristicSelection(t *testing.T) {
	cfg := defaultSolver()
	cfg.Heuristic = "wrong"
	if cfg.SearchOptions().Heuristic != search.HeuristicWrong {
		t.Fatal("expected HeuristicWrong when configured")
	}
	cfg.Heuristic = "enhanced"
	if cfg.SearchOptions().Heuristic != search.HeuristicEnhanced {
		t.Fatal("expected HeuristicEnhanced when configured")
	}
}

func TestWithDeadlineNoTimeoutIsCancellable(t *testing.T) {
	cfg := defaultSolver()
	cfg.TimeoutDuration = ""
	ctx, cancel := cfg.WithDeadline(context.Background())
	defer cancel()
	select {
	case <-ctx.Done():
		t.Fatal("expected context to remain open with no configured timeout")
	default:
	}
	cancel()
	select {
	case <-ctx.Done():
	default:
		t.Fatal("expected cancel to close the context")
	}
}
