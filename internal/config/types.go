package config

// Config represents the rrwatch configuration file.
type Config struct {
	// Interval between runs, in seconds.
	Interval float64 `yaml:"interval" mapstructure:"interval"`

	// Color interprets ANSI escape sequences in the command output.
	Color bool `yaml:"color" mapstructure:"color"`

	// LineNumber prefixes each output line with its number.
	LineNumber bool `yaml:"line_number" mapstructure:"line_number"`

	// Diff is the initial diff mode: "none", "watch", "line", or "word".
	Diff string `yaml:"diff" mapstructure:"diff"`

	// Output is the initial stream: "output", "stdout", or "stderr".
	Output string `yaml:"output" mapstructure:"output"`

	// Shell is the invocation used to run the command, e.g. "bash -c".
	// Empty uses $SHELL -c.
	Shell string `yaml:"shell" mapstructure:"shell"`

	// Limit caps the number of results kept in history. 0 keeps everything.
	Limit int `yaml:"limit" mapstructure:"limit"`

	// LogFile receives debug logs while the TUI is running.
	LogFile string `yaml:"log_file" mapstructure:"log_file"`
}

// Defaults
const (
	DefaultInterval = 2.0
	DefaultLimit    = 5000
	DefaultDiff     = "none"
	DefaultOutput   = "output"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Interval: DefaultInterval,
		Diff:     DefaultDiff,
		Output:   DefaultOutput,
		Limit:    DefaultLimit,
	}
}
