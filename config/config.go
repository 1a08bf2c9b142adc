// Package config contains configuration options for programs that use the
// SQift storage packages, along with loading them from JSON or YAML files.
package config

import (
	"fmt"
	"time"

	sqift "github.com/NousDaddy/SQift"
	"github.com/NousDaddy/SQift/logging"
)

// Database contains options for connecting to the SQLite database.
type Database struct {
	// File is the path of the database file. Use ":memory:" for a database
	// held only in memory.
	File string
}

func (db Database) FillDefaults() Database {
	newDB := db

	if newDB.File == "" {
		newDB.File = ":memory:"
	}

	return newDB
}

func (db Database) Validate() error {
	if db.File == "" {
		return fmt.Errorf("file: must not be empty")
	}

	return nil
}

// Log contains logging options.
type Log struct {
	// Enabled is whether to enable built-in logging statements.
	Enabled bool

	// Provider must be the name of one of the logging providers. If set to
	// None or unset, it will default to logging.Jellog.
	Provider logging.Provider

	// File to log to. If not set, all logging will be done to stderr and it
	// will display all logging statements. If set, the file will receive all
	// levels of log messages and stderr will show only those of Info level or
	// higher.
	File string
}

func (log Log) Create() (logging.Logger, error) {
	return logging.New(log.Provider, log.File)
}

func (log Log) FillDefaults() Log {
	newLog := log

	if newLog.Provider == logging.None {
		newLog.Provider = logging.Jellog
	}

	return newLog
}

func (log Log) Validate() error {
	if log.Provider == logging.None {
		return fmt.Errorf("provider: must not be empty")
	}

	return nil
}

// Format contains options for the stored text form of date values.
type Format struct {
	// DateLayout is the time package reference layout dates are stored in.
	DateLayout string

	// TimeZone is the IANA name of the timezone dates are rendered in before
	// formatting, such as "UTC" or "America/New_York".
	TimeZone string
}

func (f Format) FillDefaults() Format {
	newF := f

	if newF.DateLayout == "" {
		newF.DateLayout = sqift.TimeLayout
	}
	if newF.TimeZone == "" {
		newF.TimeZone = "UTC"
	}

	return newF
}

func (f Format) Validate() error {
	if f.DateLayout == "" {
		return fmt.Errorf("date_layout: must not be empty")
	}
	if _, err := time.LoadLocation(f.TimeZone); err != nil {
		return fmt.Errorf("time_zone: %w", err)
	}

	return nil
}

// CreateDateFormat builds the immutable DateFormat described by the options.
// It should be called once at startup, before any date conversions happen.
func (f Format) CreateDateFormat() (sqift.DateFormat, error) {
	loc, err := time.LoadLocation(f.TimeZone)
	if err != nil {
		return sqift.DateFormat{}, fmt.Errorf("time_zone: %w", err)
	}

	return sqift.DateFormat{Layout: f.DateLayout, Location: loc}, nil
}

// Config is a complete configuration for a program using SQift storage.
type Config struct {
	DB     Database
	Log    Log
	Format Format
}

func (cfg Config) FillDefaults() Config {
	newCfg := cfg

	newCfg.DB = newCfg.DB.FillDefaults()
	newCfg.Log = newCfg.Log.FillDefaults()
	newCfg.Format = newCfg.Format.FillDefaults()

	return newCfg
}

func (cfg Config) Validate() error {
	if err := cfg.DB.Validate(); err != nil {
		return fmt.Errorf("db: %w", err)
	}
	if err := cfg.Log.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := cfg.Format.Validate(); err != nil {
		return fmt.Errorf("format: %w", err)
	}

	return nil
}
