package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"bezierchart/chart"
	"bezierchart/chart/raster"
	"bezierchart/config"
)

var errInvalidFlag = errors.New("invalid flag value")

func newRenderCommand(opts *rootOptions) *cobra.Command {
	var (
		out      string
		progress float64
		fps      int
		outDir   string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart to PNG",
		Long: `render writes one frame at the given animation progress, or with --fps the
whole reveal animation as numbered PNG frames.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps < 0 || fps > chart.MaxFPS {
				return fmt.Errorf("%w: --fps %d, want 0..%d", errInvalidFlag, fps, chart.MaxFPS)
			}
			f, err := opts.load()
			if err != nil {
				return err
			}
			if fps > 0 {
				n, err := renderFrames(f, outDir, fps)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", n, outDir)
				return nil
			}
			if err := renderPNG(f, out, progress); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "chart.png", "Output PNG file")
	cmd.Flags().Float64VarP(&progress, "progress", "p", 1, "Animation progress in [0,1]")
	cmd.Flags().IntVar(&fps, "fps", 0, "Write the animation at this frame rate instead of a single frame")
	cmd.Flags().StringVar(&outDir, "out-dir", "frames", "Directory for --fps frames")
	return cmd
}

func newCommandsCommand(opts *rootOptions) *cobra.Command {
	var progress float64
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "Print the drawing commands of one frame as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := opts.load()
			if err != nil {
				return err
			}
			cmds, err := recordCommands(f, progress)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cmds); err != nil {
				return fmt.Errorf("encoding commands failed: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().Float64VarP(&progress, "progress", "p", 1, "Animation progress in [0,1]")
	return cmd
}

func renderImage(f *config.File, progress float64) (*image.RGBA, error) {
	cfg, err := f.Chart()
	if err != nil {
		return nil, err
	}
	bg, err := f.BackgroundColor()
	if err != nil {
		return nil, err
	}
	opts := raster.Options{Background: bg, Padding: f.Padding}
	return raster.Render(f.Width, f.Height, opts, f.Series(), f.YAxisLabels, cfg, progress), nil
}

func renderPNG(f *config.File, path string, progress float64) error {
	img, err := renderImage(f, progress)
	if err != nil {
		return err
	}
	return raster.WritePNG(path, img)
}

// renderFrames samples the reveal animation at fps and writes one PNG per
// frame into dir.
func renderFrames(f *config.File, dir string, fps int) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating %s failed: %w", dir, err)
	}
	frames := chart.Frames(chart.DefaultDuration, fps)
	for i, p := range frames {
		path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i))
		if err := renderPNG(f, path, p); err != nil {
			return i, err
		}
	}
	return len(frames), nil
}

// recordCommands runs the renderer against a Recorder sized like the plot
// area of f.
func recordCommands(f *config.File, progress float64) ([]chart.Command, error) {
	cfg, err := f.Chart()
	if err != nil {
		return nil, err
	}
	size := chart.Size{
		Width:  float64(f.Width) - 2*f.Padding,
		Height: float64(f.Height) - 2*f.Padding,
	}
	rec := &chart.Recorder{}
	chart.Render(rec, size, f.Series(), f.YAxisLabels, cfg, progress)
	return rec.Commands(), nil
}
