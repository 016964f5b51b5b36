package cmd

import (
	"github.com/devconnect/cli/pkg/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and edit your profile",
}

var profileViewCmd = &cobra.Command{
	Use:   "view",
	Short: "View your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer flushToasts()
		if err := requireSession(); err != nil {
			return err
		}
		svc := service.NewProfileService(stores.Session, toasts)
		return svc.View()
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your profile",
	Long:  "Update profile fields interactively; press enter to keep the current value",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer flushToasts()
		if err := requireSession(); err != nil {
			return err
		}
		svc := service.NewProfileService(stores.Session, toasts)
		return svc.Edit()
	},
}

func init() {
	profileCmd.AddCommand(profileViewCmd)
	profileCmd.AddCommand(profileEditCmd)
}
