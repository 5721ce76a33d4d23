package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dav88dev/skillorbit/pkg/errors"
	"github.com/dav88dev/skillorbit/pkg/pipeline"
	"github.com/dav88dev/skillorbit/pkg/render/nodelink"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string
	format   string
	detailed bool
	cluster  bool
	dangling bool
}

// graphCommand creates the graph command, a static node-link diagram of
// skill connections drawn by Graphviz.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Draw the skill connection graph with Graphviz",
		Example: `  skillorbit graph skills.yaml -o skills-graph.svg
  skillorbit graph skills.json --format dot --cluster -o - | dot -Tpng > graph.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file; - for stdout (default: <input>-graph.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, png, pdf")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show category and level in node labels")
	cmd.Flags().BoolVar(&opts.cluster, "cluster", false, "group skills by category")
	cmd.Flags().BoolVar(&opts.dangling, "dangling", false, "draw connections to unknown skills as dashed edges")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, input string, opts *graphOpts) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reg, err := pipeline.Load(ctx, pipeline.Options{Source: input})
	if err != nil {
		return err
	}

	dot := nodelink.ToDOT(reg, nodelink.Options{
		Detailed:     opts.detailed,
		Cluster:      opts.cluster,
		ShowDangling: opts.dangling,
	})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case pipeline.FormatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case pipeline.FormatPNG:
		data, err = nodelink.RenderPNG(ctx, dot, 2.0)
	case pipeline.FormatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: dot, svg, png, pdf)", opts.format)
	}
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = basePath("", input) + "-graph." + opts.format
	}
	if err := writeOutput(cmd, path, data); err != nil {
		return err
	}
	if path != "-" {
		printSuccess("Drew %d skills and %d connections", reg.Len(), len(reg.Edges()))
		printFile(path)
	}
	return nil
}
