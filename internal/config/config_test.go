package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/computil/internal/errors"
	"github.com/agbru/computil/pkg/prime"
)

func TestParseConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		t.Parallel()
		cfg, err := ParseConfig("generate-golden", []string{}, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := GeneratorConfig{
			Out:      DefaultOut,
			Max:      DefaultMax,
			Timeout:  DefaultTimeout,
			LogLevel: DefaultLogLevel,
		}
		if cfg != want {
			t.Errorf("defaults = %+v, want %+v", cfg, want)
		}
	})

	t.Run("ValidFlags", func(t *testing.T) {
		t.Parallel()
		args := []string{
			"-out", "/tmp/golden",
			"-max", "50000",
			"-segment-size", "4096",
			"-workers", "3",
			"-timeout", "10s",
			"-quiet",
			"-log-level", "debug",
		}
		cfg, err := ParseConfig("generate-golden", args, io.Discard)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want := GeneratorConfig{
			Out:         "/tmp/golden",
			Max:         50_000,
			SegmentSize: 4096,
			Workers:     3,
			Timeout:     10 * time.Second,
			Quiet:       true,
			LogLevel:    "debug",
		}
		if cfg != want {
			t.Errorf("config = %+v, want %+v", cfg, want)
		}
	})

	t.Run("InvalidFlags", func(t *testing.T) {
		t.Parallel()
		tests := [][]string{
			{"-unknown"},
			{"-max", "abc"},
			{"-timeout", "forever"},
			{"stray"},
		}
		for _, args := range tests {
			if _, err := ParseConfig("generate-golden", args, io.Discard); err == nil {
				t.Errorf("ParseConfig(%v) succeeded, want error", args)
			}
		}
	})

	t.Run("ValidationErrors", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			args    []string
			message string
		}{
			{[]string{"-max", "10"}, "max must be between"},
			{[]string{"-max", "100000000"}, "max must be between"},
			{[]string{"-timeout", "0s"}, "timeout"},
			{[]string{"-workers", "-2"}, "worker count"},
			{[]string{"-segment-size", "1"}, "sieve options"},
			{[]string{"-log-level", "loud"}, "log level"},
			{[]string{"-out", ""}, "output directory"},
		}
		for _, tt := range tests {
			var buf bytes.Buffer
			_, err := ParseConfig("generate-golden", tt.args, &buf)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("ParseConfig(%v) error = %v, want ConfigError", tt.args, err)
				continue
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("ParseConfig(%v) error = %q, want it to mention %q", tt.args, err, tt.message)
			}
			if !strings.Contains(buf.String(), "Usage: generate-golden") {
				t.Errorf("usage not printed for %v", tt.args)
			}
		}
	})

	t.Run("HelpFlag", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		_, err := ParseConfig("generate-golden", []string{"-h"}, &buf)
		if !errors.Is(err, flag.ErrHelp) {
			t.Errorf("error = %v, want flag.ErrHelp", err)
		}
		if !strings.Contains(buf.String(), EnvPrefix+"SEGMENT_SIZE") {
			t.Errorf("usage should document environment variables:\n%s", buf.String())
		}
	})
}

func TestParseConfigEnvOverrides(t *testing.T) {
	env := map[string]string{
		"COMPUTIL_OUT":          "/srv/out",
		"COMPUTIL_MAX":          "20000",
		"COMPUTIL_SEGMENT_SIZE": "512",
		"COMPUTIL_WORKERS":      "2",
		"COMPUTIL_TIMEOUT":      "1m",
		"COMPUTIL_QUIET":        "yes",
		"COMPUTIL_LOG_LEVEL":    "warn",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := ParseConfig("generate-golden", nil, io.Discard)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := GeneratorConfig{
		Out:         "/srv/out",
		Max:         20_000,
		SegmentSize: 512,
		Workers:     2,
		Timeout:     time.Minute,
		Quiet:       true,
		LogLevel:    "warn",
	}
	if cfg != want {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}

	// Flags set explicitly win over the environment.
	cfg, err = ParseConfig("generate-golden", []string{"-max", "30000", "-quiet=false"}, io.Discard)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Max != 30_000 || cfg.Quiet {
		t.Errorf("flags did not override env: %+v", cfg)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want env value 2", cfg.Workers)
	}
}

func TestToSieveOptions(t *testing.T) {
	t.Parallel()
	cfg := GeneratorConfig{Max: 5_000, SegmentSize: 128, Workers: 4}
	want := prime.Options{Name: "golden", MaxLimit: 5_000, SegmentSize: 128, Workers: 4}
	if got := cfg.ToSieveOptions(); got != want {
		t.Errorf("ToSieveOptions() = %+v, want %+v", got, want)
	}
}

func TestEnvHelpers(t *testing.T) {
	prefix := EnvPrefix

	t.Run("getEnvString", func(t *testing.T) {
		t.Setenv(prefix+"TEST_STRING", "value")
		if val := getEnvString("TEST_STRING", "default"); val != "value" {
			t.Errorf("Expected 'value', got '%s'", val)
		}
		if val := getEnvString("NONEXISTENT", "default"); val != "default" {
			t.Errorf("Expected 'default', got '%s'", val)
		}
	})

	t.Run("getEnvUint64", func(t *testing.T) {
		t.Setenv(prefix+"TEST_UINT", "123")
		if val := getEnvUint64("TEST_UINT", 0); val != 123 {
			t.Errorf("Expected 123, got %d", val)
		}
		t.Setenv(prefix+"INVALID", "abc")
		if val := getEnvUint64("INVALID", 999); val != 999 {
			t.Errorf("Expected default 999 for invalid input, got %d", val)
		}
	})

	t.Run("getEnvInt", func(t *testing.T) {
		t.Setenv(prefix+"TEST_INT", "-123")
		if val := getEnvInt("TEST_INT", 0); val != -123 {
			t.Errorf("Expected -123, got %d", val)
		}
	})

	t.Run("getEnvBool", func(t *testing.T) {
		key := "TEST_BOOL"
		t.Setenv(prefix+key, "true")
		if val := getEnvBool(key, false); !val {
			t.Error("Expected true")
		}
		os.Setenv(prefix+key, "0")
		if val := getEnvBool(key, true); val {
			t.Error("Expected false for '0'")
		}
		os.Setenv(prefix+key, "invalid")
		if val := getEnvBool(key, true); !val {
			t.Error("Expected default true for invalid input")
		}
	})

	t.Run("getEnvDuration", func(t *testing.T) {
		t.Setenv(prefix+"TEST_DURATION", "1h")
		if val := getEnvDuration("TEST_DURATION", 0); val != time.Hour {
			t.Errorf("Expected 1h, got %v", val)
		}
	})
}
