package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// completionGenerators maps each supported shell to its cobra script writer.
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       (*cobra.Command).GenBashCompletion,
	"zsh":        (*cobra.Command).GenZshCompletion,
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for includecycle to stdout.

Completion covers subcommands and flags such as --format, --ext and --ignore.
Directory arguments fall back to the shell's own path completion.

Load it for the current session:

  bash:        source <(includecycle completion bash)
  zsh:         source <(includecycle completion zsh)
  fish:        includecycle completion fish | source
  powershell:  includecycle completion powershell | Out-String | Invoke-Expression

To make it permanent, write the script to your shell's completion directory,
for example:

  includecycle completion bash > /etc/bash_completion.d/includecycle
  includecycle completion zsh > "${fpath[1]}/_includecycle"
  includecycle completion fish > ~/.config/fish/completions/includecycle.fish
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.Root(), cmd.OutOrStdout())
		},
	}
}
