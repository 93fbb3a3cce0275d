package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vidnote/audiofetch/internal/model"
)

func newFetchCommand(configPath *string) *cobra.Command {
	var part int

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Run the retrieval pipeline once and print the manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, logger, err := buildPipeline(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			req := model.SourceRequest{URL: args[0]}
			if part > 0 {
				req.PartSelector = &part
			}

			result := p.Run(cmd.Context(), req)
			if !result.Success {
				return fmt.Errorf("%s: %s", result.ErrKind, result.Message)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "title: %s\n", result.Title)
			fmt.Fprintf(out, "session: %s\n", result.SessionPath)
			for _, asset := range result.Assets {
				fmt.Fprintf(out, "  %s (%d bytes)\n", asset.Path, asset.SizeBytes)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&part, "part", 0, "download only this 1-indexed part of a multi-part source")
	return cmd
}
