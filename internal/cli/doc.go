// Package cli implements the rrwatch command-line interface.
//
// The root command is the watch itself; everything after the first
// positional argument is the command to run, so flags meant for the watched
// command don't need quoting:
//
//	rrwatch [flags] command...   - Run command every interval, full screen
//	rrwatch version [--short]    - Print build information
//	rrwatch config show          - Print the effective configuration
//
// # Flag Handling
//
// --config is persistent and available to every subcommand. The watch flags
// (-n, -c, -N, -d, -o, -s, -l, --log-file) live on the root command only.
// Settings resolve as defaults < config file < RRWATCH_* environment <
// flags that were explicitly set; see config.LoadWithFlags.
//
// # Errors
//
// Commands return *errors.Error values from RunE. Cobra's own error and
// usage printing is silenced; main prints the error and exits 1.
package cli
