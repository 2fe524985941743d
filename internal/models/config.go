package models

// Settings holds the values resolved from command-line flags.
type Settings struct {
	Type string // database type, DefaultDatabaseType if not set
	Log  LogSettings
}

// LogSettings controls the stderr logger.
type LogSettings struct {
	Verbose bool
	Quiet   bool // takes precedence over Verbose
	JSON    bool
}
