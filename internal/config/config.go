package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/vidnote/audiofetch/internal/admission"
	"github.com/vidnote/audiofetch/internal/extract"
	"github.com/vidnote/audiofetch/internal/model"
)

// Config is the full service configuration.
type Config struct {
	// ListenAddr is the HTTP listen address of the request layer.
	ListenAddr string `toml:"listen_addr"`

	// WorkRoot is the directory session folders are created under,
	// relative to the working directory unless absolute.
	WorkRoot string `toml:"work_root"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// Extraction configures the yt-dlp adapter.
	Extraction Extraction `toml:"extraction"`

	// Platforms is the URL admission allow-list.
	Platforms []PlatformRule `toml:"platforms"`
}

// Extraction holds the settings handed to the extraction capability.
type Extraction struct {
	SourceFormat         string `toml:"source_format"`
	AudioFormat          string `toml:"audio_format"`
	AudioQuality         string `toml:"audio_quality"`
	OutputTemplate       string `toml:"output_template"`
	SocketTimeoutSeconds int    `toml:"socket_timeout_seconds"`
	Retries              int    `toml:"retries"`
}

// PlatformRule is one allow-list entry.
type PlatformRule struct {
	Name           string   `toml:"name"`
	Hosts          []string `toml:"hosts"`
	TrackingParams []string `toml:"tracking_params"`
}

// Load reads a TOML config file, layering it over the defaults. A missing
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// AdmissionConfig maps the allow-list into the admission package's
// configuration value.
func (c Config) AdmissionConfig() admission.Config {
	rules := make([]admission.PlatformRule, 0, len(c.Platforms))
	for _, p := range c.Platforms {
		rules = append(rules, admission.PlatformRule{
			Platform:       model.Platform(p.Name),
			Hosts:          p.Hosts,
			TrackingParams: p.TrackingParams,
		})
	}
	return admission.Config{Rules: rules}
}

// ExtractOptions maps the extraction section into the yt-dlp adapter's
// options value.
func (c Config) ExtractOptions() extract.Options {
	return extract.Options{
		SourceFormat:   c.Extraction.SourceFormat,
		AudioFormat:    c.Extraction.AudioFormat,
		AudioQuality:   c.Extraction.AudioQuality,
		OutputTemplate: c.Extraction.OutputTemplate,
		SocketTimeout:  time.Duration(c.Extraction.SocketTimeoutSeconds) * time.Second,
		Retries:        c.Extraction.Retries,
	}
}
