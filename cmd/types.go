package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/mockdata/internal/generator"
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List field types, output formats and pattern templates",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		color.Cyan("🔤 Field types:")
		for _, t := range types.SemanticTypes {
			fmt.Printf("   %s\n", t)
		}

		fmt.Println()
		color.Cyan("📄 Output formats:")
		for _, f := range types.Formats {
			fmt.Printf("   %s\n", f)
		}

		fmt.Println()
		color.Cyan("🧩 Pattern templates (custom fields, option 'pattern'):")
		for _, p := range generator.PatternTemplates {
			fmt.Printf("   %-36s %s\n", p.Label, p.Pattern)
		}
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
