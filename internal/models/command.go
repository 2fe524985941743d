// Package models contains the data structures used throughout data-mirror.
package models

// DefaultDatabaseType is used when --type is omitted.
const DefaultDatabaseType = "postgres"

// Command names.
const (
	CommandEgress  = "egress"
	CommandIngress = "ingress"
)

// Cli is the parsed invocation.
type Cli struct {
	Command Command
}

// Command is one of EgressCmd or IngressCmd.
type Command interface {
	// Name returns the subcommand literal.
	Name() string
	// DatabaseType returns the resolved --type value.
	DatabaseType() string

	sealed()
}

// EgressCmd moves data out of a database.
type EgressCmd struct {
	Type string
}

// Name implements Command.
func (EgressCmd) Name() string { return CommandEgress }

// DatabaseType implements Command.
func (c EgressCmd) DatabaseType() string { return c.Type }

func (EgressCmd) sealed() {}

// IngressCmd moves data into a database.
type IngressCmd struct {
	Type string
}

// Name implements Command.
func (IngressCmd) Name() string { return CommandIngress }

// DatabaseType implements Command.
func (c IngressCmd) DatabaseType() string { return c.Type }

func (IngressCmd) sealed() {}
