package api

import (
	"fmt"

	"github.com/devconnect/cli/pkg/client"
	"github.com/devconnect/cli/pkg/logger"
	json "github.com/json-iterator/go"
)

// GetReceivedRequests retrieves pending incoming connection requests in
// fetch order.
func GetReceivedRequests() ([]ConnectionRequest, error) {
	logger.Debug("Fetching received requests")

	resp, err := client.GetClient().
		R().
		Get("/user/requests/received")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var reqResp RequestListResponse
	if err := json.Unmarshal(resp.Body(), &reqResp); err != nil {
		return nil, err
	}

	logger.Debug("Requests fetched", "count", len(reqResp.Data))
	return reqResp.Data, nil
}

// ReviewRequest accepts or rejects an incoming connection request and
// returns the server's confirmation message.
func ReviewRequest(decision ReviewDecision, requestID string) (string, error) {
	if !decision.Valid() {
		return "", fmt.Errorf("invalid review decision: %q", decision)
	}

	logger.Debug("Reviewing request", "decision", decision, "request_id", requestID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/request/review/%s/%s", decision, requestID))

	if err := CheckResponse(resp, err); err != nil {
		return "", err
	}

	var msgResp MessageResponse
	if err := json.Unmarshal(resp.Body(), &msgResp); err != nil {
		return "", err
	}

	return msgResp.Message, nil
}
