package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"correval/internal/models"
)

func newModelsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List model directories that a run would evaluate",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			found, err := models.Discover(cfg.Discovery.Root, models.Options{
				Prefix:           cfg.Discovery.Prefix,
				LengthMarker:     cfg.Discovery.LengthMarker,
				DefaultMaxLength: cfg.Discovery.DefaultMaxLength,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintf(out, "No model directories matching prefix %q under %s\n",
					cfg.Discovery.Prefix, cfg.Discovery.Root)
				return nil
			}

			fmt.Fprintln(out, renderModelTable(found))
			return nil
		},
	}
}
