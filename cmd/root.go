package cmd

import (
	"fmt"
	"os"

	"keyaudit/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	settingsFlag string
	jsonFlag     bool
)

// RootCmd represents the base command when called without any subcommands.
// Without a subcommand it runs the audit.
var RootCmd = &cobra.Command{
	Use:   "keyaudit",
	Short: "Cross-reference documented configuration keys with source code",
	Long: `keyaudit scans XML documentation for declared configuration keys and a
source tree for configuration key usages, then reports keys found on one side
but not on the other.

Sources and options are read from a settings file (code_base_files.ini by default).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runAudit,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with debug config for readable timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: logger.FormatConsole,
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&settingsFlag, "settings", "s", "", "Settings file (overrides AUDIT_FILE)")
	RootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Print the report as JSON")
}
