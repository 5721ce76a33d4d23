package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dav88dev/skillorbit/pkg/layout"
)

var modeDescriptions = map[layout.Mode]string{
	layout.ModeOrbit:  "rotating ring around the canvas center",
	layout.ModeFloat:  "nodes drift along their own sine paths",
	layout.ModeGrid:   "static near-square grid",
	layout.ModeWave:   "a row across the width on a travelling wave",
	layout.ModeSpiral: "slowly turning spiral winding out from the center",
}

// modesCommand lists the layout modes.
func (c *CLI) modesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List layout modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := c.Config().Engine.Mode
			for _, m := range layout.Modes() {
				name := fmt.Sprintf("%-8s", m)
				if string(m) == current {
					name = StyleHighlight.Render(name)
				} else {
					name = StyleValue.Render(name)
				}
				fmt.Fprintln(cmd.OutOrStdout(), name+" "+StyleDim.Render(modeDescriptions[m]))
			}
			return nil
		},
	}
}
