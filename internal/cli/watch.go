package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rrwatch/internal/config"
	"github.com/rileyhilliard/rrwatch/internal/errors"
	"github.com/rileyhilliard/rrwatch/internal/exec"
	"github.com/rileyhilliard/rrwatch/internal/logger"
	"github.com/rileyhilliard/rrwatch/internal/watch"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal reports whether stdin and stdout are both terminals.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// runProgram runs the Bubble Tea program. Tests replace it.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// watchCommand resolves config and runs the watch screen until the user quits.
func watchCommand(cmd *cobra.Command, args []string) error {
	command, err := CommandLine(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadWithFlags(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if !isTerminal() {
		return errors.New(errors.ErrTerminal,
			"rrwatch needs an interactive terminal",
			"Run it directly in a terminal; for one-off output just run the command.")
	}

	closer, err := logger.ToFile(cfg.LogFile, "rrwatch")
	if err != nil {
		return err
	}
	defer closer.Close()

	log := logger.NewEnvLogger("[watch]")
	log.Debug("rrwatch %s watching %q every %gs (shell %q)", formatVersion(GetVersion()), command, cfg.Interval, cfg.Shell)

	model := watch.NewModel(exec.NewRunner(cfg.Shell), WatchOptions(cfg, command), log)
	if err := runProgram(model); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"The watch screen stopped unexpectedly",
			"Check the terminal supports the alternate screen, or pass --log-file for details.")
	}
	return nil
}
