package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lumos-Labs-HQ/mockdata/internal/config"
	"github.com/Lumos-Labs-HQ/mockdata/internal/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	Version = "0.4.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════╗",
		"║   █▀▄▀█ █▀█ █▀▀ █▄▀   █▀▄ ▄▀█ ▀█▀ ▄▀█                ║",
		"║   █ ▀ █ █▄█ █▄▄ █ █   █▄▀ █▀█  █  █▀█                ║",
		"║                                                      ║",
		"║     Realistic test data • JSON • CSV • SQL • XML     ║",
		"╚══════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                    ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "mockdata",
	Short: "Generate realistic mock data from a field schema",
	Long: `
mockdata generates tables of realistic fake data from a list of typed fields
and writes them as JSON, CSV, SQL, HTML or XML, or loads them straight into a
database.

Database Support:
- PostgreSQL
- MySQL / MariaDB
- SQLite`,
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose)
	},

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("mockdata version %s\n", Version)
			os.Exit(0)
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

// Execute runs the CLI. SIGINT and SIGTERM cancel the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Skip confirmations")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	config.LoadEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName(config.Name)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		color.Yellow("⚠️  Could not read config %s: %v", cfgFile, err)
	}
}
