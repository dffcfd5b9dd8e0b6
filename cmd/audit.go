package cmd

import (
	"fmt"

	"keyaudit/core/config"
	"keyaudit/core/logger"
	"keyaudit/core/settings"
	"keyaudit/core/storage"
	"keyaudit/feature/audit"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// auditCmd runs the configuration key audit.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Report keys documented but unused, and used but undocumented",
	Long: `Scans the documentation root (xmlpath) and every source root of the
settings file, then prints two sections: keys in XMLs but not in source code,
and keys in source code but not in XMLs.

Examples:
  # Use ./code_base_files.ini
  keyaudit audit

  # Another settings file, JSON output
  keyaudit audit --settings meteoio.ini --json

  # Also scan documentation published to a bucket
  STORAGE_ENABLED=true STORAGE_BUCKET=docs STORAGE_PREFIX=inishell/ keyaudit audit`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

func init() {
	RootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("settings") {
		cfg.Audit.File = settingsFlag
	}
	if cmd.Flags().Changed("json") {
		cfg.Audit.JSON = jsonFlag
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	set, err := settings.Load(cfg.Audit.File)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	issues := out
	if cfg.Audit.JSON {
		// Keep stdout parseable.
		issues = cmd.ErrOrStderr()
	}
	opts := []audit.Option{audit.WithIssueWriter(issues)}

	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		opts = append(opts, audit.WithBucket(client, cfg.Storage.Bucket, cfg.Storage.Prefix))
		logg.Info("Documentation bucket enabled",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", cfg.Storage.Prefix),
		)
	}

	svc := audit.NewService(set, logg, opts...)
	report, err := svc.Run(cmd.Context())
	if err != nil {
		return err
	}

	if cfg.Audit.JSON {
		return audit.WriteJSON(out, report)
	}
	audit.PrintReport(out, report)
	return nil
}
