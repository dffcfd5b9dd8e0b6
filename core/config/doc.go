// Package config provides configuration management for keyaudit.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Audit: settings file path (AUDIT_FILE) and JSON output (AUDIT_JSON)
//   - Storage: optional documentation bucket (STORAGE_ENABLED, STORAGE_BUCKET, STORAGE_PREFIX, ...)
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//
// Command-line flags override the loaded values.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Audit.File)
package config
