package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mercator-hq/solarsystem/pkg/catalog"
	"mercator-hq/solarsystem/pkg/catalog/storage"
	"mercator-hq/solarsystem/pkg/cli"
	"mercator-hq/solarsystem/pkg/config"
)

var seedFlags struct {
	file   string
	output string
}

// seedResult is the result of the seed command.
type seedResult struct {
	Backend string `json:"backend"`
	Source  string `json:"source"`
	Records int    `json:"records"`
}

func (r seedResult) String() string {
	return fmt.Sprintf("✓ Seeded %d records from %s into %s store", r.Records, r.Source, r.Backend)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Provision the catalog store",
	Long: `Write catalog records into the configured store.

Records are upserted by id. Without --file the embedded catalog of the eight
planets is used. The file may be YAML or JSON: a list of records with id,
name, description, image, velocity and distance.

Examples:
  # Seed the default catalog into the configured store
  solarsystem seed --config config.yaml

  # Seed records from a file
  solarsystem seed --file planets.yaml`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringVarP(&seedFlags.file, "file", "f", "", "records file (YAML or JSON); embedded catalog when empty")
	seedCmd.Flags().StringVarP(&seedFlags.output, "output", "o", "text", "output format (text, json)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(seedFlags.output)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg, cmd.ErrOrStderr()); err != nil {
		return err
	}

	result, err := seed(cmd.Context(), cfg, seedFlags.file)
	if err != nil {
		return cli.NewCommandError("seed", err)
	}
	return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), result)
}

// seed loads records from file, or the embedded catalog, and writes them to
// the configured store.
func seed(ctx context.Context, cfg *config.Config, file string) (seedResult, error) {
	source := "embedded catalog"
	records, err := catalog.DefaultRecords()
	if file != "" {
		source = file
		records, err = catalog.LoadRecords(file)
	}
	if err != nil {
		return seedResult{}, err
	}

	store, err := storage.Open(ctx, cfg.Store)
	if err != nil {
		return seedResult{}, err
	}
	defer store.Close()

	if err := store.Seed(ctx, records); err != nil {
		return seedResult{}, fmt.Errorf("failed to seed %s store: %w", store.Name(), err)
	}

	return seedResult{Backend: store.Name(), Source: source, Records: len(records)}, nil
}
