// Package config loads the settings of the recent files registry.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/recent/internal/core/domain"
	"go.trai.ch/recent/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// PathEnv names the environment variable that overrides the config file location.
const PathEnv = "RECENT_CONFIG"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
// Settings are layered as defaults, then the YAML file, then the environment.
type Loader struct {
	Logger ports.Logger
	// Path overrides the config file location. Empty means $RECENT_CONFIG or the XDG default.
	Path string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the settings. A missing config file is not an error.
func (l *Loader) Load() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()
	file := fromSettings(defaults)

	path := l.configPath()
	if err := readFile(path, &file); err != nil {
		return nil, err
	}

	if err := env.Parse(&file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigEnvFailed.Error())
	}

	settings := file.toSettings()
	l.sanitize(settings, defaults)
	return settings, nil
}

func (l *Loader) configPath() string {
	if l.Path != "" {
		return l.Path
	}
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return domain.DefaultConfigPath()
}

func readFile(path string, file *File) error {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user's own configuration
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, file); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

// sanitize resets values that would make the registry unusable.
func (l *Loader) sanitize(s, defaults *domain.Settings) {
	if strings.TrimSpace(s.StorePath) == "" {
		s.StorePath = defaults.StorePath
	}
	if s.MaxShown <= 0 {
		l.warn(fmt.Sprintf("maxShown must be positive, using %d", defaults.MaxShown))
		s.MaxShown = defaults.MaxShown
	}
	if s.MaxDisplayLength <= 0 {
		l.warn(fmt.Sprintf("maxDisplayLength must be positive, using %d", defaults.MaxDisplayLength))
		s.MaxDisplayLength = defaults.MaxDisplayLength
	}
	if s.DebounceWindow <= 0 {
		l.warn(fmt.Sprintf("debounceWindow must be positive, using %s", defaults.DebounceWindow))
		s.DebounceWindow = defaults.DebounceWindow
	}
}

func (l *Loader) warn(msg string) {
	if l.Logger != nil {
		l.Logger.Warn(msg)
	}
}
