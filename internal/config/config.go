// Package config holds globally available configuration values for the
// engine core - search difficulty profiles, evaluator feature weights and
// rating constants - either left at their defaults or overridden from a
// TOML config file.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ConfFile holds the path to the config file (relative to the
	// working directory). Missing files are not an error; defaults apply.
	ConfFile = "./config.toml"

	// LogLevel is the standard engine log level (go-logging level ordinal).
	LogLevel = 4 // INFO

	// SearchLogLevel is the log level used by the search kernel's node tracing.
	SearchLogLevel = 4

	// TestLogLevel is the log level used while running tests.
	TestLogLevel = 4

	// Settings is the global configuration, either defaulted or read from ConfFile.
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
	Rating ratingConfiguration
	Log    logConfiguration
}

// Setup reads the configuration file (if present) and layers it on top of
// the package defaults. Safe to call multiple times; only the first call
// has an effect.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}
	setupLogLvl()
	initialized = true
}

// String prints the current configuration using reflection, mirroring the
// way the search and eval config structs are dumped for diagnostics.
func (c *conf) String() string {
	var b strings.Builder
	dump := func(title string, v interface{}) {
		b.WriteString(title)
		b.WriteString(":\n")
		s := reflect.ValueOf(v).Elem()
		t := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			b.WriteString(fmt.Sprintf("%-24s %v\n", t.Field(i).Name, f.Interface()))
		}
	}
	dump("Search Config", &c.Search)
	dump("Eval Config", &c.Eval)
	dump("Rating Config", &c.Rating)
	dump("Log Config", &c.Log)
	return b.String()
}
