package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"warn"`
	// Format is the log encoding (console, json).
	Format string `mapstructure:"format" default:"console"`
}

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// IsValidFormat checks if the configured format is supported.
func (c Config) IsValidFormat() bool {
	switch c.Format {
	case FormatConsole, FormatJSON:
		return true
	default:
		return false
	}
}
