package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"sieve/internal/config"
)

func TestLoadDefaultConfigWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SIEVE_SOURCE", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "sieve", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if cfg.Scan.SourceDir != "" {
		t.Fatalf("expected empty source dir, got %q", cfg.Scan.SourceDir)
	}
	if cfg.Scan.UnicodeNFC {
		t.Fatal("expected NFC recomposition disabled by default")
	}
	if cfg.Report.Format != config.ReportFormatText {
		t.Fatalf("unexpected report format: %q", cfg.Report.Format)
	}
	if cfg.Report.Color != config.ColorAuto {
		t.Fatalf("unexpected report color: %q", cfg.Report.Color)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadSourceFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	source := t.TempDir()
	t.Setenv("SIEVE_SOURCE", source)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Scan.SourceDir != source {
		t.Fatalf("expected source from env, got %q", cfg.Scan.SourceDir)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SIEVE_SOURCE", "/ignored")
	configPath := filepath.Join(t.TempDir(), "sieve.toml")

	type payload struct {
		Scan struct {
			SourceDir  string `toml:"source_dir"`
			UnicodeNFC bool   `toml:"unicode_nfc"`
		} `toml:"scan"`
		Report struct {
			Format string `toml:"format"`
			Color  string `toml:"color"`
		} `toml:"report"`
		Logging struct {
			Level string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Scan.SourceDir = "~/anime"
	custom.Scan.UnicodeNFC = true
	custom.Report.Format = " TABLE "
	custom.Report.Color = "never"
	custom.Logging.Level = "DEBUG"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Scan.SourceDir != filepath.Join(tempHome, "anime") {
		t.Fatalf("expected expanded source dir, got %q", cfg.Scan.SourceDir)
	}
	if !cfg.Scan.UnicodeNFC {
		t.Fatal("expected unicode_nfc from file")
	}
	if cfg.Report.Format != config.ReportFormatTable {
		t.Fatalf("expected normalized table format, got %q", cfg.Report.Format)
	}
	if cfg.Report.Color != config.ColorNever {
		t.Fatalf("expected color never, got %q", cfg.Report.Color)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized debug level, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"report format", "[report]\nformat = \"xml\"\n", "report.format"},
		{"report color", "[report]\ncolor = \"sometimes\"\n", "report.color"},
		{"log level", "[logging]\nlevel = \"verbose\"\n", "logging.level"},
		{"log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"unknown key", "[report]\nthreshold = 90\n", "parse config"},
		{"malformed", "[report\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			path := filepath.Join(t.TempDir(), "sieve.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SIEVE_SOURCE", "")
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile("sieve.toml", []byte("[report]\nformat = \"json\"\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected project config to be found")
	}
	if filepath.Base(resolved) != "sieve.toml" {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if cfg.Report.Format != config.ReportFormatJSON {
		t.Fatalf("expected json format, got %q", cfg.Report.Format)
	}
}

func TestCreateSampleLoads(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SIEVE_SOURCE", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Report.Format != config.ReportFormatText {
		t.Fatalf("unexpected sample report format %q", cfg.Report.Format)
	}
}

func TestEncodeRoundTripsSections(t *testing.T) {
	cfg := config.Default()
	cfg.Scan.SourceDir = "/media/anime"
	data, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	text := string(data)
	for _, want := range []string{"[scan]", "source_dir", "/media/anime", "[report]", "[logging]"} {
		if !strings.Contains(text, want) {
			t.Fatalf("encoded config missing %q:\n%s", want, text)
		}
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/library")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "library") {
		t.Fatalf("ExpandPath = %q", got)
	}
}
