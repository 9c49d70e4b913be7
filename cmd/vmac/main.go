package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vmac/cmd/vmac/config"
	"vmac/cmd/vmac/ui"
	"vmac/internal/store"
)

var (
	// Global flags
	verbose     bool
	storeDriver string
	dataDir     string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vmac",
	Short: "V-MAC - Veterinary Medicine and Animal Welfare Club site",
	Long: `vmac is the terminal front for the Veterinary Medicine and Animal
Welfare Club of Gono University: notices, articles, gallery, committee,
and a password-gated admin panel.

All content lives in a local store under your home directory, so the
site works fully offline and survives restarts.

Run without arguments to open the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Use == "vmac" && cmd.CalledAs() == "vmac" {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// pathCmd prints where the content store lives.
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the content store location",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path, err := cfg.StorePath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

// resetCmd wipes the content store so the next run starts from the
// seed content again.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored content and return to the defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path, err := cfg.StorePath()
		if err != nil {
			return err
		}
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to reset store: %w", err)
		}
		logger.Info("store reset", zap.String("path", path))
		fmt.Println("Content reset. The next run starts from the defaults.")
		return nil
	},
}

// themeFor maps the configured theme to styles, falling back to
// terminal detection when the config leaves it open.
func themeFor(cfg config.Config) ui.Theme {
	switch cfg.Theme {
	case "dark":
		return ui.DarkTheme()
	case "light":
		return ui.LightTheme()
	}
	return ui.DetectTheme()
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if storeDriver != "" {
		cfg.StoreDriver = storeDriver
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}

func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := cfg.StorePath()
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if verbose {
		log, err = zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = log.Sync() }()
	}

	s, err := store.Open(store.Config{Driver: cfg.StoreDriver, Path: path}, log)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = s.Close() }()

	styles := ui.NewStyles(themeFor(cfg))
	program := tea.NewProgram(NewApp(s, styles, log), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&storeDriver, "store", "", "Content store driver (file or sqlite)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Override the content store directory")

	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
