package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dav88dev/skillorbit/pkg/layout"
	"github.com/dav88dev/skillorbit/pkg/render/scene/styles"
)

// skillFileExts are the document extensions offered for skills file
// arguments.
var skillFileExts = []string{"json", "toml", "yaml", "yml"}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for skillorbit.

Completions cover subcommands, skills files (.json, .toml, .yaml) and the
values of --mode and --style.

  $ source <(skillorbit completion bash)
  $ skillorbit completion zsh > "${fpath[1]}/_skillorbit"
  $ skillorbit completion fish > ~/.config/fish/completions/skillorbit.fish
  PS> skillorbit completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// registerCompletions attaches argument and flag completion to every
// subcommand that takes a skills file or a --mode/--style flag.
func registerCompletions(root *cobra.Command) {
	for _, cmd := range root.Commands() {
		if takesSkillsFile(cmd) && cmd.ValidArgsFunction == nil {
			cmd.ValidArgsFunction = completeSkillsFile
		}
		if cmd.Flags().Lookup("mode") != nil {
			_ = cmd.RegisterFlagCompletionFunc("mode", completeModes)
		}
		if cmd.Flags().Lookup("style") != nil {
			_ = cmd.RegisterFlagCompletionFunc("style", cobra.FixedCompletions(styles.Names(), cobra.ShellCompDirectiveNoFileComp))
		}
	}
}

// takesSkillsFile reports whether cmd's usage names a file argument.
func takesSkillsFile(cmd *cobra.Command) bool {
	return strings.Contains(cmd.Use, "[file]")
}

// completeSkillsFile offers skills documents for the first argument only.
func completeSkillsFile(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return skillFileExts, cobra.ShellCompDirectiveFilterFileExt
}

// completeModes offers layout modes with their descriptions.
func completeModes(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, m := range layout.Modes() {
		if strings.HasPrefix(string(m), strings.ToLower(toComplete)) {
			out = append(out, string(m)+"\t"+modeDescriptions[m])
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
