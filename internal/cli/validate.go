package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dav88dev/skillorbit/pkg/errors"
	"github.com/dav88dev/skillorbit/pkg/pipeline"
	"github.com/dav88dev/skillorbit/pkg/skills"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a skills file and report unknown connections",
		Long: `Validate decodes a skills file and builds the registry. Duplicate names,
empty names and levels outside 0..100 are errors. Connections naming skills
that do not exist are reported as warnings, or as errors with --strict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			reg, err := pipeline.Load(ctx, pipeline.Options{Source: args[0]})
			if err != nil {
				return err
			}
			return reportRegistry(args[0], reg, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat unknown connections as errors")
	return cmd
}

func reportRegistry(input string, reg *skills.Registry, strict bool) error {
	printSuccess("%s is valid", input)
	printKeyValue("Skills", fmt.Sprintf("%d", reg.Len()))
	printKeyValue("Connections", fmt.Sprintf("%d", len(reg.Edges())))
	printKeyValue("Categories", fmt.Sprintf("%d", countCategories(reg)))

	dangling := reg.Dangling()
	if len(dangling) == 0 {
		printNewline()
		printNextStep("Render it", "skillorbit render "+input)
		return nil
	}

	printNewline()
	printWarning("%d connection(s) name unknown skills", len(dangling))
	for _, d := range dangling {
		from, _ := reg.ByIndex(d.From)
		printDetail("%s → %s", from.Name, d.To)
	}
	if strict {
		return errors.New(errors.ErrCodeNotFound, "%d unknown connection(s)", len(dangling))
	}
	return nil
}

func countCategories(reg *skills.Registry) int {
	seen := map[string]bool{}
	for _, s := range reg.All() {
		seen[s.Category] = true
	}
	return len(seen)
}
