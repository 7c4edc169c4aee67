package utils

// Per-user storage layout shared by configuration loading and templates.
const (
	// GlobalConfigDirectoryName is the per-user treegen directory under the home directory.
	GlobalConfigDirectoryName = ".config/treegen"
	// TemplatesDirectoryName is the subdirectory holding saved templates.
	TemplatesDirectoryName = "templates"
	// GlobalConfigFileName is the configuration file name inside the global directory.
	GlobalConfigFileName = "config.yaml"
	// LocalConfigFileName is the configuration file name looked up in the working directory.
	LocalConfigFileName = ".treegen.yaml"
	// TemplateFileSuffix is the file suffix of saved templates.
	TemplateFileSuffix = ".txt"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
)

// LoggerInitializationFailedMessageFormat reports a failure to construct the logger.
const LoggerInitializationFailedMessageFormat = "logger initialization failed: %w"

// ApplicationExecutionFailedMessage prefixes fatal execution errors.
const ApplicationExecutionFailedMessage = "treegen execution failed"
