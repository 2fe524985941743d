package main

import (
	"github.com/fgeck/data-mirror/internal/models"
	"github.com/spf13/cobra"
)

func newEgressCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   models.CommandEgress,
		Short: "Moving data out",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.dispatch(cmd, models.EgressCmd{Type: a.settings.Type})
		},
	}
	addTypeFlag(cmd)
	addLogFlags(cmd)
	return cmd
}
