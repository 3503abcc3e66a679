package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all storyteller configuration.
type Config struct {
	Story    StoryConfig    `yaml:"story"`
	Timeline TimelineConfig `yaml:"timeline"`
	Export   ExportConfig   `yaml:"export"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// StoryConfig holds story generation settings.
type StoryConfig struct {
	Provider    string `yaml:"provider"` // "classic" or "enhanced"
	Theme       string `yaml:"theme"`
	Location    string `yaml:"location"`
	Season      string `yaml:"season"`
	TimePeriod  string `yaml:"time_period"`
	Characters  int    `yaml:"characters"`
	Backstories bool   `yaml:"backstories"`
}

// TimelineConfig holds timeline rendering settings.
type TimelineConfig struct {
	Style string `yaml:"style"` // "boxed" or "connector"
}

// ExportConfig holds export destination settings.
type ExportConfig struct {
	Format     string `yaml:"format"` // "stdout", "text", "json", "html"
	Path       string `yaml:"path"`
	Pretty     bool   `yaml:"pretty"`
	Animate    string `yaml:"animate"` // "off", "slow", "standard", "fast"
	Background bool   `yaml:"background"`
}

// ArchiveConfig holds story archive settings.
type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// defaultConfigFile is consulted when AUSTEN_CONFIG is unset.
const defaultConfigFile = "austen.yaml"

func defaults() Config {
	return Config{
		Story: StoryConfig{
			Provider:   "classic",
			Characters: 3,
		},
		Timeline: TimelineConfig{Style: "boxed"},
		Export: ExportConfig{
			Format:  "stdout",
			Path:    "stories",
			Animate: "off",
		},
		Archive: ArchiveConfig{
			Enabled: true,
			Path:    "austen.db",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads configuration in three layers: built-in defaults, then an
// optional YAML file (AUSTEN_CONFIG, or ./austen.yaml when present),
// then AUSTEN_* environment variables.
func Load() (Config, error) {
	path := os.Getenv("AUSTEN_CONFIG")
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	return LoadFile(path)
}

// LoadFile loads configuration with the given YAML file layered over
// the defaults. An empty path skips the file layer.
func LoadFile(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Story.Provider = getenv("AUSTEN_PROVIDER", cfg.Story.Provider)
	cfg.Story.Theme = getenv("AUSTEN_THEME", cfg.Story.Theme)
	cfg.Story.Location = getenv("AUSTEN_LOCATION", cfg.Story.Location)
	cfg.Story.Season = getenv("AUSTEN_SEASON", cfg.Story.Season)
	cfg.Story.TimePeriod = getenv("AUSTEN_TIME_PERIOD", cfg.Story.TimePeriod)
	cfg.Story.Characters = getenvInt("AUSTEN_CHARACTERS", cfg.Story.Characters)
	cfg.Story.Backstories = getenvBool("AUSTEN_BACKSTORIES", cfg.Story.Backstories)

	cfg.Timeline.Style = getenv("AUSTEN_TIMELINE_STYLE", cfg.Timeline.Style)

	cfg.Export.Format = getenv("AUSTEN_EXPORT_FORMAT", cfg.Export.Format)
	cfg.Export.Path = getenv("AUSTEN_EXPORT_PATH", cfg.Export.Path)
	cfg.Export.Pretty = getenvBool("AUSTEN_EXPORT_PRETTY", cfg.Export.Pretty)
	cfg.Export.Animate = getenv("AUSTEN_ANIMATE", cfg.Export.Animate)
	cfg.Export.Background = getenvBool("AUSTEN_EXPORT_BACKGROUND", cfg.Export.Background)

	cfg.Archive.Enabled = getenvBool("AUSTEN_ARCHIVE", cfg.Archive.Enabled)
	cfg.Archive.Path = getenv("AUSTEN_ARCHIVE_PATH", cfg.Archive.Path)

	cfg.Logging.Level = getenv("AUSTEN_LOG_LEVEL", cfg.Logging.Level)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
