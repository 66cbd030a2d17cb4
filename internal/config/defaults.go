package config

const (
	defaultConfigPath   = "~/.config/sieve/config.toml"
	projectConfigName   = "sieve.toml"
	defaultReportFormat = ReportFormatText
	defaultReportColor  = ColorAuto
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	sourceEnvVar        = "SIEVE_SOURCE"
)

// Report formats.
const (
	ReportFormatText  = "text"
	ReportFormatTable = "table"
	ReportFormatJSON  = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Report: Report{
			Format: defaultReportFormat,
			Color:  defaultReportColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
