package config

import (
	"errors"
	"fmt"

	"github.com/vidnote/audiofetch/internal/model"
)

// Validate checks the configuration for values the service cannot run
// with. Called by Load after layering a file over the defaults.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("listen_addr must not be empty")
	}
	if c.WorkRoot == "" {
		return errors.New("work_root must not be empty")
	}
	if c.Extraction.SocketTimeoutSeconds <= 0 {
		return fmt.Errorf("extraction.socket_timeout_seconds must be positive, got %d",
			c.Extraction.SocketTimeoutSeconds)
	}
	if c.Extraction.Retries < 0 {
		return fmt.Errorf("extraction.retries must not be negative, got %d",
			c.Extraction.Retries)
	}
	if len(c.Platforms) == 0 {
		return errors.New("at least one platform rule is required")
	}
	for i, p := range c.Platforms {
		if !model.Platform(p.Name).Supported() {
			return fmt.Errorf("platforms[%d]: unknown platform name %q", i, p.Name)
		}
		if len(p.Hosts) == 0 {
			return fmt.Errorf("platforms[%d] (%s): at least one host is required", i, p.Name)
		}
	}
	return nil
}
