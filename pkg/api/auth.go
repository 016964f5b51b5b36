package api

import (
	"net/http"

	"github.com/devconnect/cli/pkg/client"
	"github.com/devconnect/cli/pkg/logger"
	json "github.com/json-iterator/go"
)

// Login authenticates with email and password. The server establishes the
// session through a cookie on the response; the returned cookie is
// whatever the server set alongside the user record.
func Login(emailID, password string) (*User, *http.Cookie, error) {
	logger.Debug("Attempting login", "email", emailID)

	req := LoginRequest{
		EmailID:  emailID,
		Password: password,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/login")

	if err := CheckResponse(resp, err); err != nil {
		return nil, nil, err
	}

	var userResp UserResponse
	if err := json.Unmarshal(resp.Body(), &userResp); err != nil {
		return nil, nil, err
	}

	var sessionCookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Value != "" {
			sessionCookie = ck
			break
		}
	}

	logger.Debug("Login successful", "user_id", userResp.Data.ID)
	return &userResp.Data, sessionCookie, nil
}

// Signup registers a new account
func Signup(req SignupRequest) (*User, error) {
	logger.Debug("Signing up", "email", req.EmailID)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/signup")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var userResp UserResponse
	if err := json.Unmarshal(resp.Body(), &userResp); err != nil {
		return nil, err
	}

	return &userResp.Data, nil
}

// Logout invalidates the session cookie on the server
func Logout() error {
	logger.Debug("Logging out")

	resp, err := client.GetClient().
		R().
		Post("/logout")

	return CheckResponse(resp, err)
}
