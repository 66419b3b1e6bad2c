package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/gx1727/mi7site/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the configuration at path on top of Default. A missing file at
// the default location is not an error; a missing explicit file is.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, apperrors.NewParseError(path, 0, err)
	}

	if err := decode(data, &cfg); err != nil {
		return Default(), apperrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&cfg); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// Parse decodes YAML bytes on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode(data, &cfg); err != nil {
		return Default(), apperrors.NewParseError("<inline>", extractLine(err), err)
	}
	if err := Validate(&cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(dir, "mi7site", "config.yaml"), nil
}

// DefaultLogPath returns the log file used by the interactive program when
// none is configured.
func DefaultLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache directory: %w", err)
	}
	return filepath.Join(dir, "mi7site", "mi7site.log"), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
