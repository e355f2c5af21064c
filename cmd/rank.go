package main

import (
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/courtdata/statline/internal/config"
	"github.com/courtdata/statline/internal/export"
	"github.com/courtdata/statline/internal/pipeline"
	"github.com/courtdata/statline/pkg/tabular"
)

var (
	rankInput    string
	rankOutput   string
	rankFormat   string
	rankSheet    string
	rankEncoding string
	rankProfile  string
	rankQuiet    bool
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score and rank one stat sheet",
	Long: `Reads a CSV or XLSX stat sheet, validates and scores every player,
ranks the batch best-first, and writes the ranked output.

A leaderboard and batch summary print to stdout unless --quiet is set.
Fields that fail validation are defaulted or clipped with a logged warning;
rows without a player name are skipped. A missing required column rejects
the whole file.

Examples:
  # Rank a CSV, write ranked_players.csv
  statline rank --input players.csv

  # Write the ranked CSV to stdout
  statline rank --input players.csv --output -

  # Full result (records, summary, warnings) as JSON
  statline rank --input players.csv --output result.json --format json

  # Second sheet of a workbook, custom weights
  statline rank --input season.xlsx --sheet "Week 12" --profile playoff.yaml`,
	RunE: runRank,
}

func init() {
	f := rankCmd.Flags()
	f.StringVar(&rankInput, "input", "", "path to the stat sheet (.csv or .xlsx)")
	f.StringVar(&rankOutput, "output", "", "output path (default from config; - for stdout)")
	f.StringVar(&rankFormat, "format", "csv", "output format: csv or json")
	f.StringVar(&rankSheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	f.StringVar(&rankEncoding, "encoding", "", "CSV source charset by IANA name (default: UTF-8)")
	f.StringVar(&rankProfile, "profile", "", "YAML scoring profile overriding weights and cutoffs")
	f.BoolVar(&rankQuiet, "quiet", false, "suppress the terminal leaderboard")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	if rankFormat != "csv" && rankFormat != "json" {
		return eris.Errorf("rank: --format must be csv or json (got %q)", rankFormat)
	}

	input := rankInput
	if input == "" {
		input = cfg.Rank.Input
	}
	output := rankOutput
	if output == "" {
		output = cfg.Rank.Output
	}

	scoring, err := resolveScoring(cfg.Scoring, rankProfile)
	if err != nil {
		return err
	}

	opts := tabular.Options{SheetName: rankSheet, Encoding: rankEncoding}
	result, err := pipeline.RunFile(input, opts, scoring)
	if err != nil {
		return eris.Wrap(err, "rank")
	}

	if err := writeRankResult(result, output, rankFormat); err != nil {
		return err
	}

	if !rankQuiet {
		if err := export.WriteLeaderboard(cmd.OutOrStdout(), result.Records, result.Summary); err != nil {
			return err
		}
	}

	if output != "-" {
		zap.L().Info("rank: output written",
			zap.String("input", input),
			zap.String("output", output),
			zap.String("format", rankFormat),
			zap.Int("players_ranked", result.Summary.Count),
		)
	}

	return nil
}

// resolveScoring overlays an optional profile file on the base scoring
// config.
func resolveScoring(base config.ScoringConfig, profilePath string) (config.ScoringConfig, error) {
	if profilePath == "" {
		return base, nil
	}
	profile, err := config.LoadProfile(profilePath)
	if err != nil {
		return config.ScoringConfig{}, err
	}
	scoring := profile.Apply(base)
	zap.L().Info("scoring profile applied",
		zap.String("path", profilePath),
		zap.String("profile", profile.Name),
	)
	return scoring, nil
}

func writeRankResult(result *pipeline.Result, output, format string) error {
	var w io.Writer
	if output == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(output)
		if err != nil {
			return eris.Wrapf(err, "rank: create output file %s", output)
		}
		defer f.Close() //nolint:errcheck
		w = f
	}

	if format == "json" {
		return export.WriteJSON(w, result)
	}
	return export.WriteCSV(w, result.Records)
}
