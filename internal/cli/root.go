package cli

import (
	"github.com/spf13/cobra"
)

// Flags shared by every subcommand
var cfgFile string

// rootCmd is the watch itself: rrwatch [flags] command...
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	flags := &WatchFlags{}

	cmd := &cobra.Command{
		Use:   "rrwatch [flags] command...",
		Short: "Run a command periodically and browse its output history",
		Long: `rrwatch runs a shell command on a fixed interval and shows its output
full screen, with a history of every run whose output changed.

The header shows the interval, the command, when it last ran and whether it
succeeded, followed by the active filter and the display toggles. Press h
inside the watch screen for the full list of keys.

Settings are read from ~/.config/rrwatch/config.yaml (or --config), then
RRWATCH_* environment variables, then flags.

Examples:
  rrwatch df -h
  rrwatch -n 0.5 -c "kubectl get pods"
  rrwatch -d line -o stderr make test`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchCommand(cmd, args)
		},
	}

	// Everything after the command name belongs to the command
	cmd.Flags().SetInterspersed(false)
	AddWatchFlags(cmd, flags)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/rrwatch/config.yaml)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
