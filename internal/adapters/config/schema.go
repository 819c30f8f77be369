package config

import (
	"time"

	"go.trai.ch/recent/internal/core/domain"
)

// File is the structure of config.yaml. Every field can also be set from the
// environment; environment values win over the file.
type File struct {
	StorePath        string        `yaml:"storePath"        env:"RECENT_STORE"`
	MaxShown         int           `yaml:"maxShown"         env:"RECENT_MAX_SHOWN"`
	MaxDisplayLength int           `yaml:"maxDisplayLength" env:"RECENT_MAX_DISPLAY_LENGTH"`
	OpenIconPath     string        `yaml:"openIconPath"     env:"RECENT_OPEN_ICON"`
	DebounceWindow   time.Duration `yaml:"debounceWindow"   env:"RECENT_DEBOUNCE"`
	LogJSON          bool          `yaml:"logJSON"          env:"RECENT_LOG_JSON"`
}

func fromSettings(s *domain.Settings) File {
	return File{
		StorePath:        s.StorePath,
		MaxShown:         s.MaxShown,
		MaxDisplayLength: s.MaxDisplayLength,
		OpenIconPath:     s.OpenIconPath,
		DebounceWindow:   s.DebounceWindow,
		LogJSON:          s.LogJSON,
	}
}

func (f *File) toSettings() *domain.Settings {
	return &domain.Settings{
		StorePath:        f.StorePath,
		MaxShown:         f.MaxShown,
		MaxDisplayLength: f.MaxDisplayLength,
		OpenIconPath:     f.OpenIconPath,
		DebounceWindow:   f.DebounceWindow,
		LogJSON:          f.LogJSON,
	}
}
