package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/mechviz/internal/config"
	"github.com/san-kum/mechviz/internal/export"
	"github.com/san-kum/mechviz/internal/figure"
	"github.com/san-kum/mechviz/internal/logging"
	"github.com/san-kum/mechviz/internal/server"
	"github.com/san-kum/mechviz/internal/viz"
)

var (
	configFile string
	logLevel   string
	preset     string
	// chart flags
	limit      float64
	plotHeight int
	plotWidth  int
	theme      string
	// export flags
	format   string
	pxWidth  int
	pxScale  float64
	addr     string
	logLines bool
)

// main runs the interactive slider when no subcommand is given. It exits
// with status 1 if a command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd registers every command and binds the flags, resetting them to
// their defaults.
func newRootCmd() *cobra.Command {
	themeHelp := "color theme (" + strings.Join(viz.ThemeNames(), ", ") + ")"

	rootCmd := &cobra.Command{
		Use:           "mechviz",
		Short:         "mechanism interaction explorer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runView,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start at a named reveal position")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "interactive slider with stacked charts",
		RunE:  runView,
	}
	viewCmd.Flags().StringVar(&theme, "theme", "", themeHelp)
	viewCmd.Flags().BoolVar(&logLines, "log", false, "log to stderr while the view is open")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "print the three charts for one reveal limit",
		RunE:  runPlot,
	}
	plotCmd.Flags().Float64Var(&limit, "limit", config.DefaultLimit, "reveal limit")
	plotCmd.Flags().IntVar(&plotHeight, "height", 0, "rows per chart")
	plotCmd.Flags().IntVar(&plotWidth, "width", 0, "columns per chart")
	plotCmd.Flags().StringVar(&theme, "theme", "", themeHelp)

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "write the figure as json, csv, svg or png",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().Float64Var(&limit, "limit", config.DefaultLimit, "reveal limit")
	exportCmd.Flags().StringVar(&format, "format", "", "output format (default: from file extension)")
	exportCmd.Flags().IntVar(&pxWidth, "px-width", export.DefaultOptions.Width, "image width in pixels")
	exportCmd.Flags().Float64Var(&pxScale, "scale", export.DefaultOptions.Scale, "image height scale")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve figures over http",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named reveal positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				v, _ := config.GetPreset(name)
				fmt.Printf("  %-8s %.1f\n", name, v)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "mechviz.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(viewCmd, plotCmd, exportCmd, serveCmd, presetsCmd, configCmd)
	return rootCmd
}

// loadConfig layers defaults, the config file, the preset and explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if preset != "" {
		v, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Slider.Default = cfg.Slider.Clamp(v)
	}
	if f := cmd.Flags().Lookup("theme"); f != nil && f.Changed {
		cfg.Terminal.Theme = theme
	}
	if f := cmd.Flags().Lookup("height"); f != nil && f.Changed {
		cfg.Terminal.PlotHeight = plotHeight
	}
	if f := cmd.Flags().Lookup("width"); f != nil && f.Changed {
		cfg.Terminal.PlotWidth = plotWidth
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level, ok := logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(level)
	if !ok {
		logger.Warn("invalid log level configured, using default level", "configured_level", cfg.LogLevel, "default_level", "info")
	}
	return logger
}

// limitFor prefers an explicit --limit over the configured slider default.
func limitFor(cmd *cobra.Command, cfg *config.Config) float64 {
	if f := cmd.Flags().Lookup("limit"); f != nil && f.Changed {
		return limit
	}
	return cfg.Slider.Default
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := logging.NewNop()
	if logLines {
		logger = newLogger(cfg)
	}
	return viz.RunSlider(cfg, logger)
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	l := limitFor(cmd, cfg)
	fig, err := figure.Compose(l, cfg)
	if err != nil {
		return err
	}
	logger.Debug("figure composed", "limit", l, "revealed", fig.Resultant.Series.Len())

	fmt.Printf("%s  (limit %.1f)\n\n", cfg.Title, l)
	fmt.Println(viz.RenderFigure(fig, viz.ChartOptions{
		Height: cfg.Terminal.PlotHeight,
		Width:  cfg.Terminal.PlotWidth,
		Theme:  viz.GetTheme(cfg.Terminal.Theme),
	}))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	path := args[0]
	f, err := export.ParseFormat(format, path)
	if err != nil {
		return err
	}

	l := limitFor(cmd, cfg)
	fig, err := figure.Compose(l, cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := export.ToFile(path, f, fig, export.Options{Width: pxWidth, Scale: pxScale}); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	logger.Info("figure exported", "path", path, "format", f, "limit", l, "elapsed", time.Since(start))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.NewHandler(cfg, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
