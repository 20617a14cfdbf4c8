package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio/internal/carousel"
	"portfolio/internal/config"
	"portfolio/internal/logging"
	"portfolio/internal/ux"
)

var (
	// Global flags
	verbose       bool
	configPath    string
	itemsPath     string
	interval      time.Duration
	reducedMotion bool
	themeName     string

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Browse the portfolio in a 3D-style terminal carousel",
	Long: `portfolio shows featured projects as a rotating carousel.

Cards advance on their own every few seconds; hovering the stage pauses
them. Use the arrow keys, Home/End, space, the mouse, or drag to move.

Run without arguments to start the interactive carousel.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		// The interactive carousel owns the terminal; without a log file
		// there is nowhere safe to write.
		if cmd == cmd.Root() && cfg.Logging.File == "" && !verbose {
			logger = zap.NewNop()
			return nil
		}
		logger, err = logging.New(logging.Options{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			File:    cfg.Logging.File,
			Verbose: verbose,
		})
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
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: user config dir/portfolio/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&itemsPath, "items", "i", "", "YAML item file (default: built-in portfolio)")
	rootCmd.PersistentFlags().DurationVar(&interval, "interval", carousel.DefaultInterval, "Autoplay interval")
	rootCmd.PersistentFlags().BoolVar(&reducedMotion, "reduced-motion", false, "Start with reduced motion (no autoplay)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Theme: light, dark or system")

	rootCmd.AddCommand(
		transformsCmd,
		validateCmd,
		renderCmd,
		exportCmd,
		versionCmd,
	)
}

// loadConfig resolves file, environment and flags, in rising precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = defaultConfigPath()
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("items") {
		c.Catalog.ItemsPath = itemsPath
	}
	if flags.Changed("interval") {
		c.Carousel.Interval = interval.String()
	}
	if flags.Changed("reduced-motion") {
		c.Carousel.ReducedMotion = reducedMotion
	}
	if flags.Changed("theme") {
		if _, err := ux.ParseTheme(themeName); err != nil {
			return nil, err
		}
		c.UI.Theme = themeName
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "portfolio", "config.yaml")
}

// controllerOptions maps configuration onto controller options.
func controllerOptions() []carousel.Option {
	return []carousel.Option{
		carousel.WithInterval(cfg.GetInterval()),
		carousel.WithAnnounceDelay(cfg.GetAnnounceDelay()),
		carousel.WithSwipeThresholds(cfg.SwipeThresholds()),
		carousel.WithLogger(logging.For(logger, logging.CategoryCarousel)),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
