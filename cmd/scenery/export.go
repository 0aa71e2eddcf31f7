package main

import (
	"github.com/scenery3d/scenery"
	"github.com/scenery3d/scenery/export"
	"github.com/scenery3d/scenery/texture"
	"github.com/spf13/cobra"
)

func newExportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export <scene> <out.gltf|out.glb>",
		Short: "Write a scene's blueprint to glTF",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			reg, err := registry()
			if err != nil {
				return err
			}
			ctx := scenery.NewContext(cfg, logger)
			if err := exportScene(reg, ctx, args[0], args[1]); err != nil {
				return err
			}
			logger.Info("exported", "scene", args[0], "path", args[1])
			return nil
		},
	}
}

func exportScene(reg *scenery.Registry, ctx *scenery.Context, name, path string) error {
	entry, err := reg.Lookup(name)
	if err != nil {
		return err
	}
	bp, err := entry.Blueprint(ctx.Config, ctx.Rand)
	if err != nil {
		return err
	}
	return export.WriteGLTF(bp, path, texture.NewLibrary(ctx.Config.AssetsDir, ctx.Logger))
}
