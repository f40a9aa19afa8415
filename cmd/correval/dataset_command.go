package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"correval/internal/dataset"
)

func newDatasetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dataset",
		Short: "Show how many usable samples the dataset contains",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			set, err := dataset.Load(cfg.Dataset.Path, cfg.Dataset.ReferenceColumn, cfg.Dataset.PredictionColumn)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dataset: %s\n", cfg.Dataset.Path)
			fmt.Fprintf(out, "Columns: %q, %q\n", cfg.Dataset.ReferenceColumn, cfg.Dataset.PredictionColumn)
			fmt.Fprintf(out, "Usable samples: %d\n", set.Len())
			return nil
		},
	}
}
