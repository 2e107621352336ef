package config

// logConfiguration holds the config-file-overridable log level names for
// the standard and search logs. The numeric LogLevel/SearchLogLevel
// package vars are what the logging package actually reads; this struct
// exists so a config.toml file can set them by name.
type logConfiguration struct {
	LogLvl       string
	SearchLogLvl string
}

func init() {
	Settings.Log.LogLvl = "info"
	Settings.Log.SearchLogLvl = "info"
}

// setupLogLvl applies Settings.Log onto the numeric LogLevel/SearchLogLevel
// vars, for callers that read log levels from the config file rather than
// a command line flag.
func setupLogLvl() {
	if Settings.Log.LogLvl != "" {
		if lvl, found := LogLevels[Settings.Log.LogLvl]; found {
			LogLevel = lvl
		}
	}
	if Settings.Log.SearchLogLvl != "" {
		if lvl, found := LogLevels[Settings.Log.SearchLogLvl]; found {
			SearchLogLevel = lvl
		}
	}
}

// LogLevels maps the config file / command line string representation of a
// log level to the numeric level the go-logging backend expects.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}
