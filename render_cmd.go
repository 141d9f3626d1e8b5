package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andareed/siftly-sheetchart/config"
	"github.com/andareed/siftly-sheetchart/ingest"
	"github.com/andareed/siftly-sheetchart/logging"
	"github.com/andareed/siftly-sheetchart/render"
	"github.com/andareed/siftly-sheetchart/viewport"
	"github.com/andareed/siftly-sheetchart/visibility"
)

type renderOptions struct {
	output string
	start  int // 1-based, 0 for the first record
	end    int // 1-based, 0 for the last record
	hide   []string
	width  int
	height int
	title  string
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Write a chart of FILE as a PNG without opening the terminal UI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := setup()
			if err != nil {
				return err
			}
			defer cleanup()
			if err := renderFile(cfg, args[0], opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "PNG file to write")
	cmd.Flags().IntVar(&opts.start, "start", 0, "First record to show (1-based)")
	cmd.Flags().IntVar(&opts.end, "end", 0, "Last record to show (1-based)")
	cmd.Flags().StringSliceVar(&opts.hide, "hide", nil, "Series to hide (repeatable)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Image width in pixels (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Image height in pixels (default from config)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Chart title (default: file name)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// renderFile loads path and writes the selected window as a PNG.
func renderFile(cfg *config.Config, path string, opts renderOptions) (err error) {
	loc, err := cfg.IngestLocale()
	if err != nil {
		return err
	}
	ds, err := ingest.LoadFile(path, loc)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	vp := viewport.New(ds.Len(), cfg.ViewportOptions())
	if opts.start > 0 || opts.end > 0 {
		start, end := opts.start, opts.end
		if start <= 0 {
			start = 1
		}
		if end <= 0 {
			end = ds.Len()
		}
		vp.SetRange(start-1, end-1)
	}

	series := visibility.NewTracker(ds.IndexHeader())
	for _, name := range opts.hide {
		if ds.Column(name) < 1 {
			return fmt.Errorf("unknown series %q", name)
		}
		if !series.IsHidden(name) {
			series.Toggle(name)
		}
	}

	frame := render.NewFrame(ds, vp.Range(), series.Snapshot(), cfg.Chart.Palette)
	pngOpts := render.PNGOptions{
		Width:   cfg.Export.Width,
		Height:  cfg.Export.Height,
		Title:   ds.Source(),
		Numbers: render.NewNumberFormat(loc.Language),
	}
	if opts.width > 0 {
		pngOpts.Width = opts.width
	}
	if opts.height > 0 {
		pngOpts.Height = opts.height
	}
	if opts.title != "" {
		pngOpts.Title = opts.title
	}

	out, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
		if err != nil {
			os.Remove(opts.output)
		}
	}()

	logging.Infof("render %s records %d-%d to %s", path, vp.Range().Start+1, vp.Range().End+1, opts.output)
	if err := render.WritePNG(out, frame, pngOpts); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}
