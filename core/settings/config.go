package settings

// Config holds configuration for locating the settings file and shaping the report.
type Config struct {
	// File is the path of the settings file.
	File string `mapstructure:"file" default:"code_base_files.ini"`
	// JSON prints the report as JSON instead of the console sections.
	JSON bool `mapstructure:"json" default:"false"`
}
