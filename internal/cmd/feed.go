package cmd

import (
	"fmt"

	"github.com/devconnect/cli/pkg/api"
	"github.com/devconnect/cli/pkg/service"
	"github.com/spf13/cobra"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Review your candidate feed",
	Long:  "View the next developer in your feed and send them a decision",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer flushToasts()
		if err := requireSession(); err != nil {
			return err
		}
		svc := service.NewFeedService(stores.Feed, toasts)
		return svc.ShowCurrent()
	},
}

var feedReviewCmd = &cobra.Command{
	Use:       "review (interested|ignore)",
	Short:     "Send a decision on the current candidate",
	Long:      "Submit your verdict on the developer at the head of your feed",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"interested", "ignore"},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer flushToasts()
		if err := requireSession(); err != nil {
			return err
		}

		var decision api.FeedDecision
		switch args[0] {
		case "interested":
			decision = api.DecisionInterested
		case "ignore", "ignored":
			decision = api.DecisionIgnored
		default:
			return fmt.Errorf("decision must be 'interested' or 'ignore', got %q", args[0])
		}

		svc := service.NewFeedService(stores.Feed, toasts)
		if err := svc.Load(); err != nil {
			return err
		}

		candidate, ok := svc.Current()
		if !ok {
			fmt.Println("No candidates left to review")
			return nil
		}

		if err := svc.Review(decision, candidate.ID); err != nil {
			return err
		}

		// Surface the next candidate right away
		if next, ok := svc.Current(); ok {
			fmt.Printf("\nNext: %s\n", next.FullName())
		} else {
			fmt.Println("\nThat was the last one. Check back later!")
		}
		return nil
	},
}

func init() {
	feedCmd.AddCommand(feedReviewCmd)
}
