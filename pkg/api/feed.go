package api

import (
	"fmt"

	"github.com/devconnect/cli/pkg/client"
	"github.com/devconnect/cli/pkg/logger"
	json "github.com/json-iterator/go"
)

// GetFeed retrieves candidate users not yet reviewed by the caller, in
// server order. The head of the sequence is the candidate on screen.
func GetFeed() ([]User, error) {
	logger.Debug("Fetching feed")

	resp, err := client.GetClient().
		R().
		Get("/feed")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var feedResp UserListResponse
	if err := json.Unmarshal(resp.Body(), &feedResp); err != nil {
		return nil, err
	}

	logger.Debug("Feed fetched", "candidates", len(feedResp.Data))
	return feedResp.Data, nil
}

// SendRequest submits a decision on a feed candidate and returns the
// server's confirmation message.
func SendRequest(decision FeedDecision, userID string) (string, error) {
	if !decision.Valid() {
		return "", fmt.Errorf("invalid feed decision: %q", decision)
	}

	logger.Debug("Sending connection request", "decision", decision, "user_id", userID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/request/send/%s/%s", decision, userID))

	if err := CheckResponse(resp, err); err != nil {
		return "", err
	}

	var msgResp MessageResponse
	if err := json.Unmarshal(resp.Body(), &msgResp); err != nil {
		return "", err
	}

	return msgResp.Message, nil
}
