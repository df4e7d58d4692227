package cli

import (
	"fmt"

	"github.com/rileyhilliard/rrwatch/internal/config"
	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect rrwatch configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration rrwatch would use, after merging defaults,
the config file, and RRWATCH_* environment variables.

Examples:
  rrwatch config show
  RRWATCH_INTERVAL=5 rrwatch config show
  rrwatch config show --config ./watch.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return configShowCommand(cmd)
		},
	})

	return cmd
}

func configShowCommand(cmd *cobra.Command) error {
	path, err := config.Find(cfgFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if path == "" {
		fmt.Fprintln(w, "# no config file found, showing defaults")
	} else {
		fmt.Fprintf(w, "# %s\n", path)
	}
	fmt.Fprint(w, string(out))
	return config.Validate(cfg)
}
