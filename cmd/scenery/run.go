package main

import (
	"github.com/scenery3d/scenery"
	"github.com/scenery3d/scenery/config"
	"github.com/spf13/cobra"
)

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [scene]",
		Short: "Open the scenes in a window, starting with the named one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := ""
			if len(args) > 0 {
				start = args[0]
			}
			return opts.run(cmd, start)
		},
	}
}

// run opens the window on start, or on the config's start scene when start is empty.
func (opts *options) run(cmd *cobra.Command, start string) error {
	cfg, err := opts.load(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	reg, err := registry()
	if err != nil {
		return err
	}

	runner, err := scenery.NewRunner(reg, scenery.NewContext(cfg, logger), start)
	if err != nil {
		return err
	}

	if opts.watch {
		reloads, err := config.Watch(cmd.Context(), opts.configPath, logger)
		if err != nil {
			return err
		}
		overridden := make(chan *config.Config, 1)
		go func() {
			defer close(overridden)
			for cfg := range reloads {
				opts.apply(cfg)
				overridden <- cfg
			}
		}()
		runner.Watch(overridden)
		logger.Info("watching config", "path", opts.configPath)
	}

	logger.Info("starting", "scene", runner.Active().Name, "scenes", reg.Len())
	return scenery.Run(runner)
}
