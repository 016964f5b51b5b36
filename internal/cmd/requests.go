package cmd

import (
	"fmt"

	"github.com/devconnect/cli/pkg/api"
	"github.com/devconnect/cli/pkg/prompter"
	"github.com/devconnect/cli/pkg/service"
	"github.com/spf13/cobra"
)

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "Manage incoming connection requests",
	Long:  "View, accept, and reject pending connection requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer flushToasts()
		if err := requireSession(); err != nil {
			return err
		}
		svc := service.NewRequestService(stores.Requests, toasts)
		return svc.Show()
	},
}

var acceptRequestCmd = &cobra.Command{
	Use:   "accept <request-id>",
	Short: "Accept a connection request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer flushToasts()
		if err := requireSession(); err != nil {
			return err
		}
		svc := service.NewRequestService(stores.Requests, toasts)
		if err := svc.Load(); err != nil {
			return err
		}
		return svc.Resolve(api.ReviewAccepted, args[0])
	},
}

var rejectRequestCmd = &cobra.Command{
	Use:   "reject <request-id>",
	Short: "Reject a connection request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer flushToasts()
		if err := requireSession(); err != nil {
			return err
		}
		svc := service.NewRequestService(stores.Requests, toasts)
		if err := svc.Load(); err != nil {
			return err
		}
		return svc.Resolve(api.ReviewRejected, args[0])
	},
}

var reviewRequestsCmd = &cobra.Command{
	Use:   "review",
	Short: "Interactively review a pending request",
	Long:  "Pick a pending connection request and accept or reject it",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer flushToasts()
		if err := requireSession(); err != nil {
			return err
		}
		svc := service.NewRequestService(stores.Requests, toasts)
		if err := svc.Load(); err != nil {
			return err
		}

		pending, _ := stores.Requests.Snapshot()
		if len(pending) == 0 {
			fmt.Println("No pending connection requests")
			return nil
		}

		options := make([]string, 0, len(pending))
		for _, req := range pending {
			options = append(options, fmt.Sprintf("%s (%s)", req.FromUser.FullName(), req.ID))
		}
		idx, err := prompter.PromptSelect("Pending requests:", options)
		if err != nil {
			return err
		}

		verdict, err := prompter.PromptSelect("Decision:", []string{"Accept", "Reject"})
		if err != nil {
			return err
		}
		decision := api.ReviewAccepted
		if verdict == 1 {
			decision = api.ReviewRejected
		}

		return svc.Resolve(decision, pending[idx].ID)
	},
}

func init() {
	requestsCmd.AddCommand(acceptRequestCmd)
	requestsCmd.AddCommand(rejectRequestCmd)
	requestsCmd.AddCommand(reviewRequestsCmd)
}
