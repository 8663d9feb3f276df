package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/mockdata/internal/presets"
	"github.com/Lumos-Labs-HQ/mockdata/internal/schema"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets [name]",
	Short: "List built-in presets or print one as a schema document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			color.Cyan("📦 Built-in presets:")
			for _, p := range presets.All() {
				fmt.Printf("   %-16s %s (%d fields, table %s)\n", p.Name, p.Description, len(p.Fields()), p.Table)
			}
			fmt.Println()
			fmt.Println("Run 'mockdata presets <name>' to print a preset as YAML.")
			return nil
		}

		p, err := presets.Get(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := schema.Marshal(schema.FromConfig(p.Config(cfg.Defaults.Rows)))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
