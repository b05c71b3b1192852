package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/younwookim/gamebox/internal/application/game"
	"github.com/younwookim/gamebox/internal/application/replay"
	"github.com/younwookim/gamebox/internal/errutil"
	"github.com/younwookim/gamebox/internal/infrastructure/config"
)

// NewRunCmd creates the run subcommand.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play the demo",
		Long: `Open a window and play the demo. With --record, every tick's input
is saved to a replay file in the replay directory when the game exits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			var opts []game.Option
			var rec *replay.Recorder
			if cfg.Replay.Record {
				rec = replay.NewRecorder(cfg.Window.TPS)
				opts = append(opts, game.WithRecorder(rec))
			}

			runErr := play(cfg, logger, opts...)
			if runErr != nil {
				errutil.LogError(logger, "game stopped with error", runErr)
			}

			if rec != nil {
				rec.Stop()
				path := filepath.Join(cfg.Replay.Dir, replay.GenerateFilename())
				if err := rec.Save(path); err != nil {
					errutil.LogError(logger, "failed to save replay", err)
				} else {
					logger.Info("replay saved", "path", path, "frames", rec.FrameCount())
				}
			}
			return runErr
		},
	}

	config.BindFlags(cmd.Flags())
	return cmd
}
