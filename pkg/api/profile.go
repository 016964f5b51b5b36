package api

import (
	"github.com/devconnect/cli/pkg/client"
	"github.com/devconnect/cli/pkg/logger"
	json "github.com/json-iterator/go"
)

// GetProfile fetches the current authenticated user. A 401 means there is
// no valid session.
func GetProfile() (*User, error) {
	logger.Debug("Fetching current profile")

	resp, err := client.GetClient().
		R().
		Get("/profile/view")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var userResp UserResponse
	if err := json.Unmarshal(resp.Body(), &userResp); err != nil {
		return nil, err
	}

	logger.Debug("Profile fetched", "user_id", userResp.Data.ID)
	return &userResp.Data, nil
}

// UpdateProfile edits the current user's profile and returns the updated
// record. The session user is replaced wholesale with the response.
func UpdateProfile(req UpdateProfileRequest) (*User, error) {
	logger.Debug("Updating profile")

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Patch("/profile/edit")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var userResp UserResponse
	if err := json.Unmarshal(resp.Body(), &userResp); err != nil {
		return nil, err
	}

	return &userResp.Data, nil
}
