package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vidnote/audiofetch/internal/admission"
	"github.com/vidnote/audiofetch/internal/config"
	"github.com/vidnote/audiofetch/internal/extract"
	"github.com/vidnote/audiofetch/internal/logging"
	"github.com/vidnote/audiofetch/internal/pipeline"
	"github.com/vidnote/audiofetch/internal/session"
)

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "audiofetch",
		Short:         "Turn a video link into a playable audio file",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to TOML config file")

	cmd.AddCommand(newServeCommand(&configPath))
	cmd.AddCommand(newFetchCommand(&configPath))
	return cmd
}

// buildPipeline loads configuration and wires the pipeline collaborators.
func buildPipeline(configPath string) (*pipeline.Pipeline, config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, config.Config{}, nil, fmt.Errorf("build logger: %w", err)
	}

	p := pipeline.New(
		admission.New(cfg.AdmissionConfig()),
		extract.NewYTDLP(cfg.ExtractOptions()),
		session.NewStore(cfg.WorkRoot),
		logger,
	)
	return p, cfg, logger, nil
}
