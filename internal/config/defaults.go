package config

import (
	"github.com/vidnote/audiofetch/internal/admission"
	"github.com/vidnote/audiofetch/internal/extract"
)

// Default settings mirroring the stock deployment.
const (
	DefaultListenAddr = ":5000"
	DefaultWorkRoot   = "temp"
	DefaultLogLevel   = "info"
)

// Default returns the stock configuration: the built-in platform
// allow-list and the mp3/192k extraction settings.
func Default() Config {
	cfg := Config{
		ListenAddr: DefaultListenAddr,
		WorkRoot:   DefaultWorkRoot,
		LogLevel:   DefaultLogLevel,
		Extraction: Extraction{
			SourceFormat:         extract.DefaultSourceFormat,
			AudioFormat:          extract.DefaultAudioFormat,
			AudioQuality:         extract.DefaultAudioQuality,
			OutputTemplate:       extract.DefaultOutputTemplate,
			SocketTimeoutSeconds: int(extract.DefaultSocketTimeout.Seconds()),
			Retries:              extract.DefaultRetries,
		},
	}

	for _, rule := range admission.DefaultConfig().Rules {
		cfg.Platforms = append(cfg.Platforms, PlatformRule{
			Name:           rule.Platform.String(),
			Hosts:          rule.Hosts,
			TrackingParams: rule.TrackingParams,
		})
	}
	return cfg
}
