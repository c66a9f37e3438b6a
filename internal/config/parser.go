package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	granularerrors "github.com/alexisbeaulieu97/granular/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load returns the defaults when path is empty and ParseConfig otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return ParseConfig(path)
}

// ParseConfig loads a configuration file from disk, applies defaults,
// validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, granularerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes YAML from data. source names the document in errors.
// Unknown keys are rejected so typos in style names surface early.
func Parse(source string, data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, granularerrors.NewParseError(source, extractLine(err), err)
	}

	cfg.ApplyDefaults()

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
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
