package main

import (
	"github.com/spf13/cobra"

	"github.com/younwookim/gamebox/internal/application/game"
	"github.com/younwookim/gamebox/internal/application/replay"
	"github.com/younwookim/gamebox/internal/errutil"
	"github.com/younwookim/gamebox/internal/infrastructure/config"
)

// NewReplayCmd creates the replay subcommand.
func NewReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Play back a recorded session",
		Long: `Open a window and drive the demo from a replay file instead of the
keyboard and mouse. The window closes when the replay ends.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			data, err := replay.LoadReplay(args[0])
			if err != nil {
				errutil.LogError(logger, "failed to load replay", err)
				return err
			}
			player := replay.NewReplayer(*data)
			if tps := player.TPS(); tps > 0 {
				cfg.Window.TPS = tps
			}
			cfg.Replay.Record = false
			logger.Info("replaying", "file", args[0], "frames", player.TotalFrames(), "tps", cfg.Window.TPS)

			if err := play(cfg, logger, game.WithInputSource(player)); err != nil {
				errutil.LogError(logger, "replay stopped with error", err)
				return err
			}
			logger.Info("replay finished", "frames", player.CurrentFrame())
			return nil
		},
	}

	config.BindFlags(cmd.Flags())
	return cmd
}
