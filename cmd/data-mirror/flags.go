package main

import (
	"fmt"

	"github.com/fgeck/data-mirror/internal/config"
	"github.com/fgeck/data-mirror/internal/models"
	"github.com/spf13/cobra"
)

// typeValue is a string flag that may be given at most once.
type typeValue struct {
	value string
	set   bool
}

func (v *typeValue) String() string { return v.value }

func (v *typeValue) Set(s string) error {
	if v.set {
		return fmt.Errorf("--%s may only be given once", config.KeyType)
	}
	v.value = s
	v.set = true
	return nil
}

func (v *typeValue) Type() string { return "string" }

// addTypeFlag registers the database type option on a subcommand.
func addTypeFlag(cmd *cobra.Command) {
	cmd.Flags().Var(&typeValue{value: models.DefaultDatabaseType}, config.KeyType, "type of database")
}

// addLogFlags registers the logging options on a subcommand. They are not
// persistent so that the command name always comes first.
func addLogFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP(config.KeyVerbose, "v", false, "enable verbose (debug) output")
	cmd.Flags().BoolP(config.KeyQuiet, "q", false, "enable quiet mode (errors only)")
	cmd.Flags().Bool(config.KeyJSON, false, "output logs in JSON format")
}
