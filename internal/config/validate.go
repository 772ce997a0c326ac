package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"text": true,
	"json": true,
}

// normalizeExtensions makes sure every extension starts with a dot and
// drops duplicates. "c", ".c" and "*.c" are all accepted.
func normalizeExtensions(exts []string) ([]string, error) {
	if len(exts) == 0 {
		return nil, fmt.Errorf("at least one file extension is required")
	}

	seen := make(map[string]bool, len(exts))
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), "*")
		if ext == "" || ext == "." {
			return nil, fmt.Errorf("extension cannot be empty")
		}
		if strings.ContainsAny(ext, `/\`) {
			return nil, fmt.Errorf("invalid extension '%s': must not contain path separators", ext)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if seen[ext] {
			continue
		}
		seen[ext] = true
		out = append(out, ext)
	}
	return out, nil
}

func validateLogLevel(level string) error {
	if !validLogLevels[level] {
		return fmt.Errorf("unsupported log level '%s': supported levels are debug, info, warn, error", level)
	}
	return nil
}

func validateLogFormat(format string) error {
	if !validLogFormats[format] {
		return fmt.Errorf("unsupported log format '%s': supported formats are text, json", format)
	}
	return nil
}
