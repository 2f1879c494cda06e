package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

var (
	configPath string
	difficulty string
	humanMark  string
	resumeID   string

	rootCmd = &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against the computer in your terminal",
		Long: `Play tic-tac-toe against a minimax computer opponent.
Difficulty easy plays at random, medium searches half of the time, hard never loses.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := initConfig(cmd)
			logger := initLogger(conf)

			if err := app.RunApp(logger, conf, resumeID); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}
)

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to the YAML config (default ./config.yml)")
	rootCmd.Flags().StringVar(&difficulty, "difficulty", "", "easy, medium or hard")
	rootCmd.Flags().StringVar(&humanMark, "mark", "", "play as X or O instead of being asked")
	rootCmd.Flags().StringVar(&resumeID, "resume", "", "id of a saved game to continue")
}

// main - is the entry point of the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initialize config; flags win over the file and the environment.
func initConfig(cmd *cobra.Command) *config.Config {
	path := configPath
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, "./config.yml")
	}

	conf := config.MustLoad(path)

	if cmd.Flags().Changed("difficulty") {
		conf.Difficulty = difficulty
	}

	if cmd.Flags().Changed("mark") {
		conf.HumanMark = humanMark
	}

	return conf
}

// initialize logger. The board owns stdout, so logs go to stderr.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
