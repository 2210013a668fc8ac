package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lifepad/lifepad/internal/config"
	"github.com/lifepad/lifepad/internal/metrics"
	"github.com/lifepad/lifepad/internal/session"
)

var (
	showMetrics bool
	configFile  string
	fpsIdx      int
	liveAt      int
	birthAt     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lifepad",
		Short: "interactive terminal sandbox for a generalized Game of Life",
		Long: `lifepad is an interactive terminal sandbox for a generalized Game of
Life. Move a cursor with wasd or the arrow keys, toggle cells with
space, step generations with e, and free-run with f. The survival and
birth thresholds, the playback rate, and the display glyphs are all
editable at runtime; press h inside the session for the full key map.`,
		RunE:          runSession,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolVar(&showMetrics, "metrics", false, "record per-frame timings and print a summary on exit")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().IntVar(&fpsIdx, "fps", config.DefaultFPSIndex, "starting framerate table index")
	rootCmd.Flags().IntVar(&liveAt, "live", config.DefaultLive, "survival threshold (0-9)")
	rootCmd.Flags().IntVar(&birthAt, "birth", config.DefaultBirth, "birth neighbor count (0-9)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	// CLI flags override the config file.
	if cmd.Flags().Changed("live") {
		cfg.Live = liveAt
	}
	if cmd.Flags().Changed("birth") {
		cfg.Birth = birthAt
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fpsIdx
	}
	cfg.Sanitize()

	rec := metrics.New(showMetrics)

	p := tea.NewProgram(session.New(cfg, rec), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if rec.Enabled() {
		fmt.Print(rec.Summary())
	}
	return nil
}
