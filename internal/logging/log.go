// Package logging is a thin helper around "github.com/op/go-logging" to
// keep the configuration for the engine's various log streams (standard,
// search, test) in one place instead of repeating backend/formatter setup
// in every package.
package logging

import (
	"os"

	"github.com/op/go-logging"

	"github.com/frankkopp/DraughtsGo/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	testLog     *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
}

// GetLog returns the standard logger preconfigured with a Stdout backend
// and the engine's log level as set in config.Settings.
func GetLog() *logging.Logger {
	configureLevel(standardLog, config.LogLevel)
	return standardLog
}

// GetSearchLog returns the logger used by the search kernel for node-level
// tracing. Kept separate from the standard log so search tracing can be
// silenced independently of general engine logging.
func GetSearchLog() *logging.Logger {
	configureLevel(searchLog, config.SearchLogLevel)
	return searchLog
}

// GetTestLog returns the logger used by _test.go files.
func GetTestLog() *logging.Logger {
	configureLevel(testLog, config.TestLogLevel)
	return testLog
}

func configureLevel(log *logging.Logger, level int) {
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(backendFormatter)
	leveled.SetLevel(logging.Level(level), "")
	log.SetBackend(leveled)
}
