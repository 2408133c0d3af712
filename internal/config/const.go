package config

const (
	LogLevelDebug   string = "debug"
	LogLevelInfo    string = "info"
	LogLevelWarning string = "warn"
	LogLevelError   string = "error"

	LogFilePath string = "log/log_output.txt"

	Version string = "v0.1.0"

	DefaultConfigPath string = "quiz.yaml"
)
