package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
	"github.com/iburimskiy/particle-field/internal/logging"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "particlefield",
		Short: "Portfolio hero with an animated particle backdrop",
		Long: `particlefield opens a window with drifting, linked particles behind
portfolio content: stat counters, skill bars, a gallery lightbox and an
optional soundtrack.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log := logging.NewLogger(cfg.Logging.Level, os.Stderr)
			return run(cfg, log)
		},
	}

	cmd.Flags().String("config", "", "Config file (default ~/"+config.FileName+")")
	cmd.Flags().Int("count", 0, "Number of particles")
	cmd.Flags().Uint64("seed", 0, "Random seed for particle placement (0 = random)")
	cmd.Flags().Float64("link-distance", 0, "Distance below which particles are linked, in pixels")
	cmd.Flags().Bool("grid", false, "Link particles through a spatial grid")
	cmd.Flags().String("soundtrack", "", "Audio file to play (wav, mp3, flac)")
	cmd.Flags().String("log-level", "", "Log level: info or debug")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "particlefield version %s\n", version)
		},
	}
}

// loadConfig reads the config file and applies flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Field.ParticleCount, _ = flags.GetInt("count")
	}
	if flags.Changed("seed") {
		cfg.Field.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("link-distance") {
		cfg.Field.LinkDistance, _ = flags.GetFloat64("link-distance")
	}
	if flags.Changed("grid") {
		cfg.Field.SpatialIndex, _ = flags.GetBool("grid")
	}
	if flags.Changed("soundtrack") {
		cfg.Soundtrack, _ = flags.GetString("soundtrack")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(cfg *config.Config, log *slog.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(cfg, log)
	defer g.Close()
	g.PlaySoundtrack(cfg.Soundtrack)

	log.Info("starting", "version", version, "width", cfg.Window.Width, "height", cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
