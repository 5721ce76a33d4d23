package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dav88dev/skillorbit/pkg/errors"
	"github.com/dav88dev/skillorbit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
// Unset flags fall back to the loaded configuration.
type renderOpts struct {
	output      string  // output file (single format) or base path
	formats     string  // comma-separated formats
	mode        string  // layout mode
	style       string  // visual style: simple or glow
	width       float64 // canvas width in pixels
	height      float64 // canvas height in pixels
	frames      int     // ticks to simulate
	fps         float64 // simulated frame rate
	pointer     string  // "x,y" pointer position after the last tick
	scale       float64 // PNG scale factor
	font        string  // TrueType font for PNG labels
	interactive bool    // embed hover CSS/JS in SVG
	still       bool    // disable the vertical bob
	noCache     bool    // bypass the render cache
	refresh     bool    // recompute and overwrite cache entries
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Simulate a skills file and render the final frame",
		Long: `Render loads a skills file, runs the animation for a number of frames and
writes the resulting frame as SVG, PNG, PDF or JSON.

With a single format the output goes to --output (or next to the input file).
With several formats --output is used as a base path and each format gets its
own extension.`,
		Example: `  skillorbit render skills.yaml
  skillorbit render skills.json --mode grid --format svg,png -o out/skills
  skillorbit render skills.toml --pointer 320,200 --style glow --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := c.renderOptions(cmd, args[0], &opts)
			if err != nil {
				return err
			}
			return c.runRender(cmd, args[0], popts, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg, png, pdf, json (comma-separated)")
	addEngineFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.style, "style", "", "visual style: simple, glow")
	cmd.Flags().IntVar(&opts.frames, "frames", 0, "number of frames to simulate")
	cmd.Flags().Float64Var(&opts.fps, "fps", 0, "simulated frames per second")
	cmd.Flags().StringVar(&opts.pointer, "pointer", "", "pointer position x,y applied after the last frame")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor")
	cmd.Flags().StringVar(&opts.font, "font", "", "TrueType font file for PNG labels")
	cmd.Flags().BoolVar(&opts.interactive, "interactive", false, "embed hover interaction in SVG output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")

	return cmd
}

// addEngineFlags registers the flags shared by render and simulate.
func addEngineFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "layout mode: orbit, float, grid, wave, spiral")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height")
	cmd.Flags().BoolVar(&opts.still, "still", false, "disable the vertical bob")
}

// renderOptions merges config defaults with the flags that were set.
func (c *CLI) renderOptions(cmd *cobra.Command, input string, opts *renderOpts) (pipeline.Options, error) {
	p := c.Config().Pipeline()
	p.Source = input
	p.Logger = c.Logger

	flags := cmd.Flags()
	if flags.Changed("mode") {
		p.Mode = opts.mode
	}
	if flags.Changed("width") {
		p.Width = opts.width
	}
	if flags.Changed("height") {
		p.Height = opts.height
	}
	if opts.still {
		p.NoBob = true
	}
	if flags.Changed("format") {
		p.Formats = splitList(opts.formats)
	}
	if flags.Changed("style") {
		p.Style = opts.style
	}
	if flags.Changed("frames") {
		p.Frames = opts.frames
	}
	if flags.Changed("fps") {
		p.FPS = opts.fps
	}
	if flags.Changed("scale") {
		p.Scale = opts.scale
	}
	if flags.Changed("font") {
		p.FontFile = opts.font
	}
	if flags.Changed("interactive") {
		p.Interactive = opts.interactive
	}
	if opts.pointer != "" {
		pt, err := parsePoint(opts.pointer)
		if err != nil {
			return p, err
		}
		p.Pointer = pt
	}
	p.Refresh = opts.refresh

	if err := p.ValidateAndSetDefaults(); err != nil {
		return p, err
	}
	if opts.output == "-" && len(p.Formats) > 1 {
		return p, errors.New(errors.ErrCodeInvalidInput, "stdout output takes a single format (got %d)", len(p.Formats))
	}
	return p, nil
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(cmd *cobra.Command, input string, p pipeline.Options, opts *renderOpts) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Simulating %d frames...", p.Frames))
	spinner.Start()
	result, err := runner.Execute(ctx, p)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(result.Artifacts)))

	paths := outputPaths(opts.output, input, p.Formats)
	for _, format := range p.Formats {
		path := paths[format]
		if err := writeOutput(cmd, path, result.Artifacts[format]); err != nil {
			return err
		}
		if path != "-" {
			c.Logger.Debug("wrote artifact", "path", path, "bytes", len(result.Artifacts[format]))
		}
	}

	if opts.output == "-" {
		return nil
	}
	printSuccess("Rendered %s in %s mode", input, p.Mode)
	printStats(result.Stats.SkillCount, result.Stats.EdgeCount, result.CacheInfo.SimulateHit && result.CacheInfo.RenderHit)
	for _, format := range p.Formats {
		printFile(paths[format])
	}
	if result.Stats.Dangling > 0 {
		printWarning("%d connection(s) name unknown skills", result.Stats.Dangling)
		printNextStep("Inspect them", "skillorbit validate "+input)
	}
	return nil
}

// outputPaths maps each format to its destination. A single format writes
// to output verbatim (when given); several formats share a base path.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	out, err := openOutput(path, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.Write(data)
	return err
}
