// Package cli wires the filmlog commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"filmlog/internal/config"
	"filmlog/internal/content"
	"filmlog/internal/eventbus"
	"filmlog/internal/logging"
	"filmlog/internal/logic"
)

var version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "filmlog",
	Short: "Browse, filter and search a film review log",
	Long: "filmlog imports a review site's content export and lets you browse its reviews, " +
		"watchlist, cast and crew, and collections with the site's sort, filter and search behaviour.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the browser
		return browseCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "filmlog %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+filepath.Join(config.DefaultDir(), "config.toml")+")")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(browseCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// app is what every command needs once flags are parsed
type app struct {
	ctx    context.Context
	cancel context.CancelFunc
	bus    *eventbus.Bus
	cfg    *config.Config
	log    io.Closer
}

// setup loads the config, starts logging and ties the context to SIGINT
// and SIGTERM
func setup(cmd *cobra.Command) (*app, error) {
	bus := eventbus.New()
	cfg, err := config.NewConfigService(configPath, bus).Load()
	if err != nil {
		bus.Close()
		return nil, err
	}

	closer, err := logging.Init(cfg.Logging)
	if err != nil {
		bus.Close()
		return nil, err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	log := logging.Logger()
	log.Info().Str("command", cmd.Name()).Str("database", cfg.Database).Msg("starting")

	return &app{ctx: ctx, cancel: cancel, bus: bus, cfg: cfg, log: closer}, nil
}

func (a *app) Close() {
	a.cancel()
	a.bus.Close()
	_ = a.log.Close()
}

// openStore opens the content database, creating its directory
func (a *app) openStore() (*content.Store, error) {
	if dir := filepath.Dir(a.cfg.Database); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return content.Open(a.ctx, a.cfg.Database)
}

// loadContent reads the lists from an export directory when fromDir is set,
// otherwise from the content database
func (a *app) loadContent(fromDir string) (*logic.Content, error) {
	var src logic.ContentSource
	if fromDir != "" {
		export, err := content.LoadExport(fromDir)
		if err != nil {
			return nil, err
		}
		src = logic.NewMemoryContentStore(logic.Content{
			Titles:      export.Titles,
			Watchlist:   export.Watchlist,
			CastAndCrew: export.CastAndCrew,
			Collections: export.Collections,
		})
	} else {
		store, err := a.openStore()
		if err != nil {
			return nil, err
		}
		defer store.Close()
		src = store
	}

	c, err := logic.LoadContent(a.ctx, src)
	if err != nil {
		return nil, err
	}
	a.bus.Publish(c.Event())
	return c, nil
}
