package bench

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Scenarios) == 0 {
		t.Fatal("no default scenarios")
	}
	for i := range cfg.Scenarios {
		if err := cfg.Scenarios[i].validate(); err != nil {
			t.Errorf("default scenario %d: %v", i, err)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "scenarios.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	t.Run("valid", func(t *testing.T) {
		path := writeFile(t, `
[[scenario]]
name = "tokens"
segment_size = 4096
length = 65536
workers = 2

[[scenario]]
name = "symbols"
segment_size = 1024
length = 10000
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if len(cfg.Scenarios) != 2 {
			t.Fatalf("got %d scenarios, want 2", len(cfg.Scenarios))
		}
		if cfg.Scenarios[0].Name != "tokens" || cfg.Scenarios[0].Workers != 2 {
			t.Errorf("first scenario = %+v", cfg.Scenarios[0])
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "")
		if _, err := LoadConfig(path); err == nil {
			t.Fatal("no error for a file without scenarios")
		}
	})

	t.Run("bad segment size", func(t *testing.T) {
		path := writeFile(t, `
[[scenario]]
name = "bad"
segment_size = 3
length = 10
`)
		if _, err := LoadConfig(path); err == nil {
			t.Fatal("no error for a non-power-of-two segment size")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Fatal("no error for a missing file")
		}
	})
}

func TestRun(t *testing.T) {
	sc := Scenario{Name: "test", SegmentSize: 64, Length: 4096, Workers: 2}

	first, err := Run(context.Background(), sc)
	if err != nil {
		t.Fatal(err)
	}
	if first.Name != "test" {
		t.Errorf("report name = %q", first.Name)
	}

	// deterministic fill means a stable checksum across runs and worker counts
	sc.Workers = 3
	second, err := Run(context.Background(), sc)
	if err != nil {
		t.Fatal(err)
	}
	if first.Checksum != second.Checksum {
		t.Errorf("checksums diverge: %x vs %x", first.Checksum, second.Checksum)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, Scenario{Name: "canceled", SegmentSize: 64, Length: 1024, Workers: 1}); err == nil {
		t.Fatal("no error for a canceled context")
	}
}
