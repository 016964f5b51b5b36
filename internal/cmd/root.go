package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/devconnect/cli/pkg/api"
	"github.com/devconnect/cli/pkg/client"
	"github.com/devconnect/cli/pkg/config"
	cliErrors "github.com/devconnect/cli/pkg/errors"
	"github.com/devconnect/cli/pkg/logger"
	"github.com/devconnect/cli/pkg/output"
	"github.com/devconnect/cli/pkg/service"
	"github.com/devconnect/cli/pkg/session"
	"github.com/devconnect/cli/pkg/state"
	"github.com/devconnect/cli/pkg/toast"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

// Process-wide application state, composed once per invocation
var (
	stores *state.Stores
	toasts *toast.Center
)

var rootCmd = &cobra.Command{
	Use:   "devconnect",
	Short: "DevConnect CLI - Connect with developers",
	Long: `DevConnect CLI is a command-line client for the DevConnect
developer matching platform. Review your candidate feed, manage
incoming connection requests, and browse your connections directly
from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		if outputFmt != "" && output.ValidateOutputFormat(outputFmt) {
			config.SetString("output.format", outputFmt)
		}

		stores = state.New()
		toasts = toast.NewCenterWithDuration(
			time.Duration(config.GetInt("toast.duration_ms")) * time.Millisecond)

		client.Init()
		service.NewAuthService(stores, toasts).RestoreSession()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, cliErrors.FormatError(err))
		os.Exit(1)
	}
}

// requireSession resolves the session gate. Protected commands run only
// behind an authenticated gate; their stores stay untouched otherwise.
func requireSession() error {
	gate := session.NewGate(stores.Session, toasts, api.GetProfile)

	unsub := gate.OnLoginRequest(func() {
		output.PrintInfo("Run 'devconnect auth login' to sign in")
	})
	defer unsub()

	if gate.Resolve() != session.StateAuthenticated {
		flushToasts()
		gate.RequestLogin()
		return cliErrors.UnauthorizedError()
	}
	return nil
}

// flushToasts prints the notifications raised during the command and
// stops their timers before the process exits.
func flushToasts() {
	for _, n := range toasts.Visible() {
		switch n.Severity {
		case toast.SeveritySuccess:
			output.PrintSuccess("%s", n.Message)
		default:
			output.PrintError("%s", n.Message)
		}
	}
	toasts.ClearAll()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/devconnect/cli/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	// Add subcommands
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(requestsCmd)
	rootCmd.AddCommand(connectionsCmd)
	rootCmd.AddCommand(versionCmd)
}
