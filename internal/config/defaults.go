package config

const (
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultLogDir       = ""
	defaultTraceEnabled = false
	defaultConfigPath   = "~/.config/recordgroup/config.toml"
	projectConfigName   = "recordgroup.toml"

	envLogLevel = "RECORDGROUP_LOG_LEVEL"
	envTrace    = "RECORDGROUP_TRACE"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir,
		},
		Trace: Trace{
			Enabled: defaultTraceEnabled,
		},
	}
}
