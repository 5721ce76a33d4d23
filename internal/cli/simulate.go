package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dav88dev/skillorbit/pkg/engine"
	"github.com/dav88dev/skillorbit/pkg/errors"
	"github.com/dav88dev/skillorbit/pkg/pipeline"
)

// simulateOpts holds the flags of the simulate command.
type simulateOpts struct {
	renderOpts
	every  int  // print every n-th frame
	asJSON bool // one JSON frame per line
}

// simulateCommand creates the simulate command.
func (c *CLI) simulateCommand() *cobra.Command {
	var opts simulateOpts

	cmd := &cobra.Command{
		Use:   "simulate [file]",
		Short: "Print node positions as the animation runs",
		Long: `Simulate ticks the engine and prints the display position of every skill at
sampled frames. Use --json for one frame per line, suitable for piping into
other tools.`,
		Example: `  skillorbit simulate skills.yaml --frames 120 --every 30
  skillorbit simulate skills.json --mode spiral --json | jq .nodes[0]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.renderOptions(cmd, args[0], &opts.renderOpts)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("frames") {
				p.Frames = opts.frames
			}
			if opts.every <= 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--every must be positive (got %d)", opts.every)
			}
			return c.runSimulate(cmd.Context(), cmd.OutOrStdout(), p, &opts)
		},
	}

	addEngineFlags(cmd, &opts.renderOpts)
	cmd.Flags().IntVar(&opts.frames, "frames", 60, "number of frames to simulate")
	cmd.Flags().Float64Var(&opts.fps, "fps", 0, "simulated frames per second")
	cmd.Flags().IntVar(&opts.every, "every", 15, "print every n-th frame")
	cmd.Flags().StringVar(&opts.renderOpts.pointer, "pointer", "", "pointer position x,y held during the simulation")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print one JSON frame per line")

	return cmd
}

func (c *CLI) runSimulate(ctx context.Context, w io.Writer, p pipeline.Options, opts *simulateOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}

	reg, err := pipeline.Load(ctx, p)
	if err != nil {
		return err
	}
	eng := engine.FromRegistry(reg, p.EngineOptions()...)

	var frames []engine.Frame
	emit := func(f engine.Frame) error {
		if opts.asJSON {
			data, err := json.Marshal(f)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(data))
			return err
		}
		frames = append(frames, f)
		return nil
	}

	dt := 1 / p.FPS
	for i := 1; i <= p.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		eng.Tick(dt)
		if len(p.Pointer) == 2 {
			eng.PointerMove(p.Pointer[0], p.Pointer[1])
		}
		if i%opts.every == 0 || i == p.Frames {
			if err := emit(eng.Frame()); err != nil {
				return err
			}
		}
	}

	if opts.asJSON {
		return nil
	}
	_, err = fmt.Fprintln(w, positionsTable(frames, p.FPS))
	return err
}

// positionsTable renders sampled frames as one row per skill per frame.
func positionsTable(frames []engine.Frame, fps float64) string {
	var rows [][]string
	hovered := map[int]bool{}
	for _, f := range frames {
		frameNo := int(f.Elapsed*fps + 0.5)
		for _, n := range f.Nodes {
			mark := ""
			if n.Hovered {
				mark = "●"
				hovered[len(rows)] = true
			} else if n.ConnectedToHovered {
				mark = "○"
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d", frameNo),
				fmt.Sprintf("%.2f", f.Elapsed),
				n.Name,
				fmt.Sprintf("%.1f", n.X),
				fmt.Sprintf("%.1f", n.Y),
				fmt.Sprintf("%.1f", n.Radius),
				mark,
			})
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Frame", "t", "Skill", "X", "Y", "R", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case hovered[row]:
				return StyleHighlight.Bold(true)
			case col >= 3 && col <= 5:
				return StyleNumber
			case col <= 1:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}
