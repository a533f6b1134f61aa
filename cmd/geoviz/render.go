package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/geoviz"
	"github.com/gogpu/geoviz/config"
	"github.com/gogpu/geoviz/loader"
	"github.com/gogpu/geoviz/surface"
)

func renderCmd() *cobra.Command {
	var input string
	var mode string
	var configPath string
	var output string
	var load bool

	c := &cobra.Command{
		Use:   "render",
		Short: "Draw shapes from a point file and print their intersections",
		Long: `Render reads one "x,y" point per line.

By default consecutive points are replayed as clicks: every pair becomes a
shape in the chosen mode and every intersection with an earlier shape is
printed as "x,y". With --load the points are only plotted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("mode") {
				cfg.Mode = mode
			}

			opts, err := cfg.SurfaceOptions()
			if err != nil {
				return err
			}
			s, err := surface.New(cfg.Width, cfg.Height, opts...)
			if err != nil {
				return err
			}

			points, err := loader.ParseFile(input)
			if err != nil {
				return err
			}

			if load {
				s.Load(points)
			} else {
				for _, p := range points {
					for _, hit := range s.Click(p) {
						fmt.Fprintln(cmd.OutOrStdout(), formatPoint(hit))
					}
				}
				if pending := s.Pending(); len(pending) > 0 {
					geoviz.Logger().Warn("render: unpaired point ignored", "point", pending[0])
				}
			}

			return s.SavePNG(output)
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Point file, one x,y per line (required)")
	c.Flags().StringVarP(&mode, "mode", "m", "line", "Shape drawn from each pair of points: line, rectangle or circle")
	c.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file (optional)")
	c.Flags().StringVarP(&output, "output", "o", "geoviz.png", "PNG file to write")
	c.Flags().BoolVar(&load, "load", false, "Only plot the points")

	_ = c.MarkFlagRequired("input")
	return c
}

func formatPoint(p geoviz.Point) string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}
