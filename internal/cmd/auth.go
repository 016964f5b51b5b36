package cmd

import (
	"github.com/devconnect/cli/pkg/service"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Log in, log out, and inspect the current session",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to DevConnect",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer flushToasts()
		svc := service.NewAuthService(stores, toasts)
		return svc.Login()
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new DevConnect account",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer flushToasts()
		svc := service.NewAuthService(stores, toasts)
		return svc.Signup()
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer flushToasts()
		svc := service.NewAuthService(stores, toasts)
		return svc.Logout()
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer flushToasts()
		if err := requireSession(); err != nil {
			return err
		}
		svc := service.NewAuthService(stores, toasts)
		return svc.Whoami()
	},
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(signupCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
}
