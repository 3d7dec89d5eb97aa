package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tatianab/no-escape/internal/config"
	"github.com/tatianab/no-escape/internal/engine"
	"github.com/tatianab/no-escape/internal/logger"
	"github.com/tatianab/no-escape/internal/models"
	"github.com/tatianab/no-escape/internal/tui"
	"github.com/tatianab/no-escape/levels"
)

var (
	configPath    string
	levelsDir     string
	logLevel      string
	debugCommands bool
)

var rootCmd = &cobra.Command{
	Use:           "no-escape",
	Short:         "A text adventure: find your way out alive",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	RunE:  runPlay,
}

var validateCmd = &cobra.Command{
	Use:   "validate [levels-dir]",
	Short: "Check that every level of a campaign loads",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.LevelsDir = args[0]
		}

		fsys := levelsFS(cfg)
		campaign, err := models.LoadCampaign(fsys, cfg.Campaign)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		files, err := models.ListLevels(fsys, ".")
		if err != nil {
			return err
		}
		for _, file := range files {
			if _, err := models.LoadLevel(fsys, file); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d levels\n", campaign.Title, len(campaign.Levels))
		for _, level := range campaign.Levels {
			fmt.Fprintf(out, "  %s (%s): %d rooms, %s -> %s\n",
				level.Title, level.File, len(level.RoomData), level.Start, level.Trigger)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "no-escape.yaml", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&levelsDir, "levels", "", "directory holding campaign.yaml and its levels (default: built-in campaign)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&debugCommands, "debug-commands", true, "enable the give, tp and durset commands")

	rootCmd.AddCommand(playCmd, validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, closeLog := logger.Setup(cfg.Logging)
	defer func() {
		_ = closeLog()
	}()

	campaign, err := models.LoadCampaign(levelsFS(cfg), cfg.Campaign)
	if err != nil {
		log.Error("failed to load campaign", "error", err)
		return fmt.Errorf("load campaign: %w", err)
	}
	log.Info("campaign loaded", "title", campaign.Title, "levels", len(campaign.Levels))

	return tui.Run(campaign, tui.Options{
		Pace:   cfg.Pace,
		Logger: log,
		Game: []engine.Option{
			engine.WithLogger(log),
			engine.WithDebugCommands(cfg.DebugCommands),
		},
	})
}

// loadConfig reads the config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("levels") {
		cfg.LevelsDir = levelsDir
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("debug-commands") {
		cfg.DebugCommands = debugCommands
	}
	return cfg, nil
}

func levelsFS(cfg *config.Config) fs.FS {
	if cfg.LevelsDir == "" {
		return levels.FS
	}
	slog.Debug("using levels from disk", "dir", cfg.LevelsDir)
	return os.DirFS(cfg.LevelsDir)
}
