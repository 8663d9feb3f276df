package cmd

import (
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/database"
	"github.com/Lumos-Labs-HQ/mockdata/internal/generator"
	"github.com/Lumos-Labs-HQ/mockdata/internal/seeder"
	"github.com/Lumos-Labs-HQ/mockdata/internal/utils"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	seedSource        sourceFlags
	seedTruncate      bool
	seedBatch         int
	seedNoTransaction bool
	seedSkipCreate    bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load generated rows into the configured database",
	Long: `
Generate a table and insert it into the database named by the config's
database.url_env variable (DATABASE_URL by default). The table is created
when it does not exist yet.

Examples:
  mockdata seed --preset employee --rows 1000
  mockdata seed --schema users.yaml --truncate --batch 500`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		gc, err := seedSource.resolve(cmd, cfg)
		if err != nil {
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if seedTruncate {
			input := &utils.InputUtils{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
			if !input.AskConfirmation(fmt.Sprintf("⚠️  This deletes every row in %s. Continue?", gc.TableName), force) {
				color.Yellow("Seed cancelled")
				return nil
			}
		}

		db, err := database.Open(cmd.Context(), cfg.Database.Provider, dbURL)
		if err != nil {
			return err
		}
		defer db.Close()

		batch := cfg.Defaults.BatchSize
		if cmd.Flags().Changed("batch") {
			batch = seedBatch
		}

		bar := newProgressBar(gc.Rows, "Seeding", cmd.ErrOrStderr())
		s := seeder.New(db, generator.ForConfig(gc), seeder.Options{
			Batch:         batch,
			Truncate:      seedTruncate,
			NoTransaction: seedNoTransaction,
			SkipCreate:    seedSkipCreate,
			Progress: func(inserted int) {
				if bar != nil {
					bar.Set(inserted)
				}
			},
		})

		result, err := s.Seed(cmd.Context(), gc)
		if bar != nil {
			bar.Finish()
		}
		if err != nil {
			return err
		}

		rate := float64(result.Rows) / max(result.Duration.Seconds(), 0.001)
		fmt.Printf("📊 %s rows into %s in %s (%s rows/s)\n",
			humanize.Comma(int64(result.Rows)), result.Table,
			result.Duration.Round(time.Millisecond), humanize.CommafWithDigits(rate, 0))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedSource.register(seedCmd)
	seedCmd.Flags().BoolVar(&seedTruncate, "truncate", false, "Delete existing rows before seeding")
	seedCmd.Flags().IntVar(&seedBatch, "batch", 0, "Rows per INSERT statement (default from config)")
	seedCmd.Flags().BoolVar(&seedNoTransaction, "no-transaction", false, "Insert without wrapping the run in a transaction")
	seedCmd.Flags().BoolVar(&seedSkipCreate, "skip-create", false, "Do not create the table")
}
