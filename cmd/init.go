package cmd

import (
	"fmt"
	"os"

	"github.com/Lumos-Labs-HQ/mockdata/internal/config"
	"github.com/Lumos-Labs-HQ/mockdata/internal/presets"
	"github.com/Lumos-Labs-HQ/mockdata/internal/schema"
	"github.com/Lumos-Labs-HQ/mockdata/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	initPreset   string
	initProvider string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file and a starter schema",
	Long: `
Write ` + config.FileName + ` and a starter schema document in the current
directory. The schema is copied from a preset you can edit afterwards.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if config.IsInitialized(".") && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
		}

		name := initPreset
		if name == "" {
			input := &utils.InputUtils{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
			name = input.GetUserChoice(presets.Names(), "Starter preset", force)
		}
		p, err := presets.Get(name)
		if err != nil {
			return err
		}

		cfg := config.DefaultConfig()
		if initProvider != "" {
			cfg.Database.Provider = initProvider
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		doc, err := schema.Marshal(schema.FromConfig(p.Config(cfg.Defaults.Rows)))
		if err != nil {
			return err
		}
		if err := cfg.Write(config.FileName); err != nil {
			return err
		}
		if err := os.WriteFile(cfg.SchemaPath, doc, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", cfg.SchemaPath, err)
		}

		color.Green("✅ Initialized mockdata with the %s preset", p.Name)
		fmt.Println()
		fmt.Println("📝 Files created:")
		fmt.Printf("   %s\n", config.FileName)
		fmt.Printf("   %s\n", cfg.SchemaPath)
		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Printf("   mockdata generate --format csv      # writes to %s/\n", cfg.OutputDir)
		fmt.Printf("   mockdata seed                       # needs %s\n", cfg.Database.URLEnv)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initPreset, "preset", "p", "", "Preset to start the schema from")
	initCmd.Flags().StringVar(&initProvider, "provider", "", "Database provider: postgresql, mysql, sqlite")
}
