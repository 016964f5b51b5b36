package api

import (
	"github.com/devconnect/cli/pkg/client"
	"github.com/devconnect/cli/pkg/logger"
	json "github.com/json-iterator/go"
)

// GetConnections retrieves the accepted connections of the current user.
func GetConnections() ([]User, error) {
	logger.Debug("Fetching connections")

	resp, err := client.GetClient().
		R().
		Get("/user/connections")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var connResp UserListResponse
	if err := json.Unmarshal(resp.Body(), &connResp); err != nil {
		return nil, err
	}

	logger.Debug("Connections fetched", "count", len(connResp.Data))
	return connResp.Data, nil
}
