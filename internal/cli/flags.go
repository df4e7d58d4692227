package cli

import (
	"strings"

	"github.com/rileyhilliard/rrwatch/internal/config"
	"github.com/rileyhilliard/rrwatch/internal/errors"
	"github.com/rileyhilliard/rrwatch/internal/watch"
	"github.com/spf13/cobra"
)

// WatchFlags holds the flags of the root command. Values only matter when
// set on the command line; config.LoadWithFlags reads them through the
// flag set so unset flags don't shadow the config file.
type WatchFlags struct {
	Interval   float64
	Color      bool
	LineNumber bool
	Diff       string
	Output     string
	Shell      string
	Limit      int
	LogFile    string
}

// AddWatchFlags registers the watch flags on a command.
func AddWatchFlags(cmd *cobra.Command, flags *WatchFlags) {
	f := cmd.Flags()
	f.Float64VarP(&flags.Interval, "interval", "n", config.DefaultInterval, "seconds between runs (minimum 0.1)")
	f.BoolVarP(&flags.Color, "color", "c", false, "interpret ANSI color sequences in the output")
	f.BoolVarP(&flags.LineNumber, "line-number", "N", false, "show line numbers")
	f.StringVarP(&flags.Diff, "diff", "d", config.DefaultDiff, "diff mode: none, watch, line, word")
	f.StringVarP(&flags.Output, "output", "o", config.DefaultOutput, "stream to show: output, stdout, stderr")
	f.StringVarP(&flags.Shell, "shell", "s", "", "shell used to run the command (default \"$SHELL -c\")")
	f.IntVarP(&flags.Limit, "limit", "l", config.DefaultLimit, "results kept in history (0 keeps all)")
	f.StringVar(&flags.LogFile, "log-file", "", "write debug logs to this file")
}

// CommandLine joins the positional arguments into the command string run
// by the shell. A blank command is a config error.
func CommandLine(args []string) (string, error) {
	command := strings.TrimSpace(strings.Join(args, " "))
	if command == "" {
		return "", errors.New(errors.ErrConfig,
			"Nothing to watch",
			"Pass a command, e.g. rrwatch df -h")
	}
	return command, nil
}

// WatchOptions converts a validated config into watch options.
func WatchOptions(cfg *config.Config, command string) watch.Options {
	return watch.Options{
		Command:    command,
		Interval:   cfg.IntervalDuration(),
		Color:      cfg.Color,
		LineNumber: cfg.LineNumber,
		Diff:       cfg.DiffMode(),
		Output:     cfg.OutputMode(),
		Limit:      cfg.Limit,
	}
}
