package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// getEnvString returns the value of EnvPrefix+key, or defaultVal if unset.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvUint64 returns EnvPrefix+key parsed as uint64, or defaultVal if
// unset or invalid.
func getEnvUint64(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseUint(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool accepts "true", "1", "yes" and "false", "0", "no"
// (case-insensitive); anything else yields defaultVal.
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration parses values like "5m" or "1h30m".
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet reports whether name was given on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides fills every flag not set on the command line from its
// environment variable:
//
//   - COMPUTIL_OUT (string)
//   - COMPUTIL_MAX, COMPUTIL_SEGMENT_SIZE (uint64)
//   - COMPUTIL_WORKERS (int)
//   - COMPUTIL_TIMEOUT (duration: "30s", "2m")
//   - COMPUTIL_QUIET (bool: true/false, 1/0, yes/no)
//   - COMPUTIL_LOG_LEVEL (string)
func applyEnvOverrides(config *GeneratorConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "out") {
		config.Out = getEnvString("OUT", config.Out)
	}
	if !isFlagSet(fs, "max") {
		config.Max = getEnvUint64("MAX", config.Max)
	}
	if !isFlagSet(fs, "segment-size") {
		config.SegmentSize = getEnvUint64("SEGMENT_SIZE", config.SegmentSize)
	}
	if !isFlagSet(fs, "workers") {
		config.Workers = getEnvInt("WORKERS", config.Workers)
	}
	if !isFlagSet(fs, "timeout") {
		config.Timeout = getEnvDuration("TIMEOUT", config.Timeout)
	}
	if !isFlagSet(fs, "quiet") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "log-level") {
		config.LogLevel = getEnvString("LOG_LEVEL", config.LogLevel)
	}
}
