package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"correval/internal/accel"
	"correval/internal/config"
	"correval/internal/eval"
	"correval/internal/logging"
	"correval/internal/services/inference"
)

const timeRounding = 10 * time.Millisecond

func newRunCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate every discovered model against the dataset",
		Long: "Load the dataset, discover model directories under the configured root,\n" +
			"and write the detailed, summary, and outlier report files for each model.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			device := accel.Resolve(cfg.Inference.Device)
			logging.NewComponentLogger(logger, "cli").Info("starting evaluation",
				logging.String("device", device),
				logging.String("host", cfg.Inference.BaseURL),
				logging.Bool("continue_on_error", cfg.Evaluation.ContinueOnError))

			client := inference.NewClient(inference.Config{
				BaseURL:        cfg.Inference.BaseURL,
				TimeoutSeconds: cfg.Inference.TimeoutSeconds,
				Device:         device,
			})

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			progress := newProgressRenderer(os.Stderr)
			runner := eval.NewRunner(cfg, logger, client, progress.update)
			result, err := runner.Run(runCtx)
			progress.close()
			if err != nil {
				return err
			}

			printRunResult(cmd.OutOrStdout(), cfg, result)
			return nil
		},
	}
	return cmd
}

func printRunResult(out io.Writer, cfg *config.Config, result *eval.Result) {
	if len(result.Models) == 0 && len(result.Failures) == 0 {
		fmt.Fprintf(out, "No model directories matching prefix %q under %s\n",
			cfg.Discovery.Prefix, cfg.Discovery.Root)
		return
	}

	fmt.Fprintf(out, "Evaluated %d samples from %s\n", result.Samples, cfg.Dataset.Path)

	for _, mr := range result.Models {
		fmt.Fprintf(out, "\n%s (%d samples, %s)\n", mr.Name, mr.Samples, mr.Elapsed.Round(timeRounding))
		fmt.Fprintln(out, renderSummaryTable(mr.Summaries))
		fmt.Fprintln(out, renderOutlierTable(mr.Outliers))
		fmt.Fprintf(out, "Reports: %s\n", mr.DetailedPath)
	}

	if len(result.Failures) > 0 {
		fmt.Fprintf(out, "\n%d model pass(es) skipped:\n", len(result.Failures))
		for _, f := range result.Failures {
			fmt.Fprintf(out, "  %s: %v\n", f.Name, f.Err)
		}
	}
}
