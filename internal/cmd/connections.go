package cmd

import (
	"github.com/devconnect/cli/pkg/service"
	"github.com/spf13/cobra"
)

var connectionsCmd = &cobra.Command{
	Use:   "connections",
	Short: "View your accepted connections",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer flushToasts()
		if err := requireSession(); err != nil {
			return err
		}
		svc := service.NewConnectionService(stores.Connections, toasts)
		return svc.Show()
	},
}
