package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCmd wires cobra's shell completion generators. The script
// prints to stdout so users can redirect it wherever their shell loads
// completions from.
func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for the named shell.

The script prints to stdout. Source it for the current session or
install it permanently:

  bash:        source <(colplot completion bash)
               colplot completion bash > /etc/bash_completion.d/colplot
  zsh:         colplot completion zsh > "${fpath[1]}/_colplot"
  fish:        colplot completion fish | source
               colplot completion fish > ~/.config/fish/completions/colplot.fish
  powershell:  colplot completion powershell | Out-String | Invoke-Expression

Zsh needs completion enabled once before the script loads:

  echo "autoload -U compinit; compinit" >> ~/.zshrc
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
