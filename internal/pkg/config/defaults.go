package config

// Default values for configuration.
const (
	// Paths defaults
	DefaultInputRoot  = "data"
	DefaultUserFile   = "data/users.json"
	DefaultOutputFile = "slack_messages.csv"

	// Input defaults
	DefaultInputExtension = ".json"

	// Output defaults
	DefaultOutputFormat = "" // по расширению output_file
	DefaultUseCRLF      = true
	DefaultSheetName    = "mensajes"
	DefaultTableWidth   = 60

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// DefaultConfigFile - файл конфигурации, который читается, если путь не задан явно.
	DefaultConfigFile = "config.yml"
)
