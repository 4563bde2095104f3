package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"intury/internal/config"
	"intury/internal/document"
	"intury/internal/game"
	"intury/internal/logger"
)

var version = "1.0.0"

// appConfig is the configuration loaded by main; nil means built-in defaults.
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "intury",
	Short: "Intury - Czech business documents and a reaction game",
	Long: `Intury bundles two small offline tools:

  doc   fills in and renders Czech business documents (faktura, zálohová
        faktura, pokladní doklad, zjednodušený daňový doklad, dodací list)
  game  a two-player reaction game: stop the countdown 0.1 s before zero

Configuration is read from the environment and an optional .env file.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("Intury executed")

		fmt.Println("Welcome to Intury!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

// Execute runs the root command with the loaded configuration.
func Execute(cfg *config.Config) {
	appConfig = cfg

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err, "Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func documentOptions() document.Options {
	if appConfig == nil {
		return document.DefaultOptions()
	}
	return appConfig.GetDocumentOptions()
}

func gameSettings() game.Settings {
	if appConfig == nil {
		return game.DefaultSettings()
	}
	return appConfig.GetGameSettings()
}
