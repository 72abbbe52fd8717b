package decode

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDecoderNormalizesWorkers(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero", 0, 1},
		{"negative", -4, 1},
		{"explicit", 8, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDecoder(Options{Workers: tc.in})
			if d.workers != tc.want {
				t.Errorf("workers = %d, want %d", d.workers, tc.want)
			}
		})
	}
}

func writeOptionsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lattice.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write options file: %v", err)
	}
	return path
}

func TestLoadOptionsMergesOverDefaults(t *testing.T) {
	path := writeOptionsFile(t, "workers: 4\nlog_format: json\n")

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.Workers != 4 {
		t.Errorf("Workers = %d, want 4", opts.Workers)
	}
	if opts.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", opts.LogFormat, "json")
	}
	// Absent field keeps its default.
	if opts.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default %q", opts.LogLevel, "info")
	}
}

func TestLoadOptionsEmptyFileKeepsDefaults(t *testing.T) {
	path := writeOptionsFile(t, "")

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts != DefaultOptions() {
		t.Errorf("opts = %+v, want defaults %+v", opts, DefaultOptions())
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadOptions on a missing file returned nil error")
	}
}

func TestLoadOptionsMalformedYAML(t *testing.T) {
	path := writeOptionsFile(t, "workers: [not a number\n")
	if _, err := LoadOptions(path); err == nil {
		t.Error("LoadOptions on malformed YAML returned nil error")
	}
}
