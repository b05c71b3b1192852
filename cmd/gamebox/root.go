package main

import (
	"embed"

	"github.com/spf13/cobra"

	"github.com/younwookim/gamebox/internal/infrastructure/config"
)

//go:embed configs/gamebox.yaml
var configFS embed.FS

const embeddedConfig = "configs/gamebox.yaml"

// configFile holds the --config flag value.
var configFile string

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gamebox",
		Short: "gamebox - a state-stack game demo on ebiten",
		Long: `gamebox runs a small demo game built on a state stack and an
event registry: a title menu, a play field and a pause overlay.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (defaults to the embedded config)")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewReplayCmd())

	return cmd
}

// loadConfig reads --config, or the embedded default, and applies flags from cmd
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	loader := config.NewFSLoader(configFS, embeddedConfig)
	if configFile != "" {
		loader = config.NewLoader(configFile)
	}
	return loader.Load(cmd.Flags())
}
