package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"langdata/internal/config"
	"langdata/internal/data"
	"langdata/internal/persistence"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

func main() {
	configFile := flag.String("config", "config/config.yaml", "Path to configuration file")
	dataFile := flag.String("data", "", "Path to the n-gram CSV file")
	limitNgrams := flag.Int("limit-ngrams", 0, "Keep only the first N n-gram columns (0 keeps all)")
	dropLanguages := flag.String("drop-languages", "", "Comma separated languages to remove")
	dropFeatures := flag.String("drop-features", "", "Comma separated feature columns to remove")
	testSize := flag.Float64("test-size", 0.25, "Test set size (0.0-1.0)")
	seed := flag.Int64("seed", 42, "Random seed for the split")
	stratify := flag.Bool("stratify", false, "Keep class proportions in both partitions")
	outputDir := flag.String("output", "", "Output directory for the split (empty skips export)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal().Err(err).Str("config", *configFile).Msg("could not load config")
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Data = *dataFile
		case "limit-ngrams":
			cfg.Split.LimitNgrams = *limitNgrams
		case "drop-languages":
			cfg.Split.DropLanguages = splitList(*dropLanguages)
		case "drop-features":
			cfg.Split.DropFeatures = splitList(*dropFeatures)
		case "test-size":
			cfg.Split.TestSize = *testSize
		case "seed":
			cfg.Split.RandomState = *seed
		case "stratify":
			cfg.Split.Stratify = *stratify
		case "output":
			cfg.Output = *outputDir
		}
	})

	if cfg.Data == "" {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/split -data data/main_df.csv -drop-languages fr -output splits")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Str("data", cfg.Data).Msg("split failed")
	}
}

func run(cfg *config.Config) error {
	fmt.Printf("Loading %s...\n", cyan(cfg.Data))
	d, err := data.New(cfg.Data, cfg.Split.LimitNgrams, cfg.Split.DropLanguages)
	if err != nil {
		return err
	}
	d.Logger = log.Logger

	splitCfg := data.SplitConfig{
		LimitNgrams:   cfg.Split.LimitNgrams,
		DropFeatures:  cfg.Split.DropFeatures,
		DropLanguages: cfg.Split.DropLanguages,
		TestSize:      cfg.Split.TestSize,
		RandomState:   cfg.Split.RandomState,
		Stratify:      cfg.Split.Stratify,
	}

	// New only applies the row and column limits with default split parameters.
	if len(splitCfg.DropFeatures) > 0 || splitCfg.Stratify ||
		splitCfg.TestSize != data.DefaultSplitConfig().TestSize ||
		splitCfg.RandomState != data.DefaultSplitConfig().RandomState {
		fmt.Printf("Splitting data (test size: %.1f%%, seed: %d)...\n", splitCfg.TestSize*100, splitCfg.RandomState)
		if err := d.Split(splitCfg); err != nil {
			return err
		}
	}

	validator := data.NewDataValidator()
	if err := validator.ValidateDataset(d); err != nil {
		return fmt.Errorf("data validation failed: %w", err)
	}

	stats, err := validator.GetDatasetStats(d)
	if err != nil {
		return err
	}
	printSummary(stats)

	if cfg.Output == "" {
		return nil
	}

	bundle := persistence.NewSplitBundle(d, cfg.Data, splitCfg)
	if err := bundle.Save(cfg.Output); err != nil {
		return fmt.Errorf("failed to save split: %w", err)
	}
	fmt.Printf("%s Split saved to: %s\n", green("✓"), cfg.Output)
	return nil
}

func printSummary(stats *data.DatasetStats) {
	fmt.Printf("\n%s\n", yellow("Dataset Summary:"))
	fmt.Printf("Samples:  %d\n", stats.Samples)
	fmt.Printf("Features: %d\n", stats.Features)
	fmt.Printf("Classes:  %d\n", stats.Classes)
	fmt.Printf("Train:    %d\n", stats.Train)
	fmt.Printf("Test:     %d\n", stats.Test)

	languages := make([]string, 0, len(stats.ClassDistribution))
	for language := range stats.ClassDistribution {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	fmt.Printf("\n%s\n", yellow("Class Distribution:"))
	for _, language := range languages {
		count := stats.ClassDistribution[language]
		fmt.Printf("  %-10s %6d (%.1f%%)\n", cyan(language), count, 100*float64(count)/float64(stats.Samples))
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
