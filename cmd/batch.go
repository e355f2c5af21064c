package main

import (
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/courtdata/statline/internal/export"
	"github.com/courtdata/statline/internal/pipeline"
	"github.com/courtdata/statline/pkg/tabular"
)

var (
	batchOutDir      string
	batchConcurrency int
	batchProfile     string
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Rank multiple stat sheets as independent batches",
	Long: `Runs the scoring pipeline over each input file as its own batch.
Batches run concurrently but share nothing: each file gets its own records,
its own batch average, and its own tiers. A file that fails (missing
columns, unreadable source) is logged and skipped; the rest continue.

Output for each input lands in the output directory as <base>_ranked.csv.

Examples:
  # Rank every week of the season, four at a time
  statline batch week*.csv --out-dir ranked/

  # Sequential, with custom weights
  statline batch a.csv b.xlsx --concurrency 1 --profile playoff.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchOutDir, "out-dir", "", "output directory (default from config)")
	f.IntVar(&batchConcurrency, "concurrency", 0, "max files processed concurrently (default from config)")
	f.StringVar(&batchProfile, "profile", "", "YAML scoring profile overriding weights and cutoffs")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	outDir := batchOutDir
	if outDir == "" {
		outDir = cfg.Batch.OutDir
	}
	concurrency := batchConcurrency
	if concurrency < 1 {
		concurrency = cfg.Batch.MaxConcurrentFiles
	}

	scoring, err := resolveScoring(cfg.Scoring, batchProfile)
	if err != nil {
		return err
	}

	g, _ := errgroup.WithContext(cmd.Context())
	g.SetLimit(concurrency)

	var succeeded, failed atomic.Int64

	for _, path := range args {
		path := path
		g.Go(func() error {
			log := zap.L().With(zap.String("file", path))

			result, runErr := pipeline.RunFile(path, tabular.Options{}, scoring)
			if runErr != nil {
				failed.Add(1)
				log.Error("batch: file failed", zap.Error(runErr))
				return nil // independent batches: one failure never aborts the rest
			}

			outPath := batchOutputPath(outDir, path)
			if writeErr := export.WriteCSVFile(outPath, result.Records); writeErr != nil {
				failed.Add(1)
				log.Error("batch: write output", zap.Error(writeErr))
				return nil
			}

			succeeded.Add(1)
			log.Info("batch: file ranked",
				zap.String("output", outPath),
				zap.Int("players_ranked", result.Summary.Count),
				zap.Int("rows_skipped", len(result.Skipped)),
				zap.Int("fields_sanitized", len(result.Warnings)),
			)
			return nil
		})
	}

	_ = g.Wait()

	zap.L().Info("batch: complete",
		zap.Int("total", len(args)),
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
	)

	if failed.Load() > 0 {
		return eris.Errorf("batch: %d of %d files failed", failed.Load(), len(args))
	}
	return nil
}

// batchOutputPath derives the per-file output name: <out-dir>/<base>_ranked.csv.
func batchOutputPath(outDir, input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+"_ranked.csv")
}
