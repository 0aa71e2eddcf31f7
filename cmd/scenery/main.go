// Command scenery opens the demo scenes in a window, lists them, or exports their
// blueprints to glTF.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/scenery3d/scenery"
	"github.com/scenery3d/scenery/config"
	"github.com/scenery3d/scenery/scenes/binary"
	"github.com/scenery3d/scenery/scenes/playground"
	"github.com/scenery3d/scenery/scenes/showcase"
	"github.com/scenery3d/scenery/scenes/solar"
	"github.com/scenery3d/scenery/scenes/village"
	"github.com/scenery3d/scenery/scenes/walker"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	logLevel   string
	watch      bool
	width      int
	height     int
}

// registry returns every scene in the order Tab cycles through them.
func registry() (*scenery.Registry, error) {
	return scenery.NewRegistry(
		showcase.Entry,
		walker.Entry,
		playground.Entry,
		binary.Entry,
		solar.Entry,
		village.Entry,
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "scenery",
		Short:        "Demo 3D scenes",
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "scenery.yaml", "config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level, overriding the config (debug, info, warn, error)")
	flags.BoolVar(&opts.watch, "watch", false, "reload the config file when it changes")
	flags.IntVar(&opts.width, "width", 0, "window width, overriding the config")
	flags.IntVar(&opts.height, "height", 0, "window height, overriding the config")

	root.AddCommand(
		newRunCommand(opts),
		newListCommand(opts),
		newPickCommand(opts),
		newExportCommand(opts),
	)
	return root
}

// load reads the config and applies flag overrides. The config file only has to exist
// when --config was given explicitly.
func (opts *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (opts *options) apply(cfg *config.Config) {
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.width > 0 {
		cfg.Window.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Window.Height = opts.height
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level, _ := cfg.Level()
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			reg, err := registry()
			if err != nil {
				return err
			}
			for i, e := range reg.Entries() {
				marker := " "
				if e.Name == cfg.StartScene {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d  %-12s %s\n", marker, i+1, e.Name, e.Title)
			}
			return nil
		},
	}
}
