package utils

// ErrorLogFormat defines the formatting string for error log messages.
const ErrorLogFormat = "Error: %v"

// LoggerInitializationFailedMessageFormat is used when the logger cannot be built.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

const (
	// ApplicationName is the command name and configuration namespace.
	ApplicationName = "ftrek"
	// ConfigFileName is the local configuration file searched in the working directory.
	ConfigFileName = ".ftrek.yaml"
	// GlobalConfigDirectoryName is the directory under the home directory holding global configuration.
	GlobalConfigDirectoryName = ".ftrek"
	// GlobalConfigFileName is the configuration file inside GlobalConfigDirectoryName.
	GlobalConfigFileName = "config.yaml"
	// EnvironmentPrefix prefixes environment overrides, e.g. FTREK_GITIGNORE.
	EnvironmentPrefix = "FTREK"
	// NoColorEnvironmentVariable disables styling when present.
	NoColorEnvironmentVariable = "NO_COLOR"
)
