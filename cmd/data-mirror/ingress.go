package main

import (
	"github.com/fgeck/data-mirror/internal/models"
	"github.com/spf13/cobra"
)

func newIngressCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   models.CommandIngress,
		Short: "Moving data in",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.dispatch(cmd, models.IngressCmd{Type: a.settings.Type})
		},
	}
	addTypeFlag(cmd)
	addLogFlags(cmd)
	return cmd
}
