package service

import (
	"fmt"

	"github.com/devconnect/cli/pkg/api"
	"github.com/devconnect/cli/pkg/client"
	"github.com/devconnect/cli/pkg/credentials"
	"github.com/devconnect/cli/pkg/logger"
	"github.com/devconnect/cli/pkg/output"
	"github.com/devconnect/cli/pkg/prompter"
	"github.com/devconnect/cli/pkg/state"
	"github.com/devconnect/cli/pkg/toast"
)

// AuthService handles login, logout and session restoration
type AuthService struct {
	stores *state.Stores
	toasts *toast.Center
}

// NewAuthService creates a new auth service
func NewAuthService(stores *state.Stores, toasts *toast.Center) *AuthService {
	return &AuthService{stores: stores, toasts: toasts}
}

// Login prompts for credentials and establishes a session
func (s *AuthService) Login() error {
	sess, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load session", "error", err)
		return err
	}

	if sess != nil && sess.IsValid() {
		output.PrintWarning("Already logged in as %s", sess.FirstName)
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	output.PrintInfo("Authenticating...")
	user, cookie, err := api.Login(email, password)
	if err != nil {
		s.toasts.Error(userMessage(err))
		output.PrintError("Login failed: %v", err)
		return err
	}

	// The session cookie lives in the client's jar for this process and
	// on disk for the next invocation.
	if cookie != nil {
		client.SetSessionCookie(cookie)
		sess = &credentials.Session{
			CookieName:  cookie.Name,
			CookieValue: cookie.Value,
			ExpiresAt:   cookie.Expires,
			UserID:      user.ID,
			FirstName:   user.FirstName,
			Email:       user.EmailID,
		}
		if err := credentials.Save(sess); err != nil {
			output.PrintError("Failed to save session: %v", err)
			return err
		}
	}

	s.stores.Session.Replace(*user)
	s.toasts.Success("Login successful")

	output.PrintSuccess("Login successful!")
	fmt.Printf("\n")
	keyValues := map[string]interface{}{
		"Name":  user.FullName(),
		"Email": user.EmailID,
	}
	output.PrintRecord("", keyValues)

	return nil
}

// Signup registers a new account. The server does not establish a
// session on signup; the user logs in afterwards.
func (s *AuthService) Signup() error {
	firstName, err := prompter.PromptString("First Name: ")
	if err != nil {
		return err
	}
	if firstName == "" {
		return fmt.Errorf("first name cannot be empty")
	}

	lastName, err := prompter.PromptString("Last Name: ")
	if err != nil {
		return err
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	output.PrintInfo("Creating account...")
	user, err := api.Signup(api.SignupRequest{
		FirstName: firstName,
		LastName:  lastName,
		EmailID:   email,
		Password:  password,
	})
	if err != nil {
		s.toasts.Error(userMessage(err))
		output.PrintError("Signup failed: %v", err)
		return err
	}

	s.toasts.Success("Account created")
	output.PrintSuccess("Account created for %s", user.FullName())
	output.PrintInfo("Run 'devconnect auth login' to sign in")
	return nil
}

// Logout invalidates the server session and clears every store
func (s *AuthService) Logout() error {
	if err := api.Logout(); err != nil {
		s.toasts.Error(userMessage(err))
		logger.Error("Logout request failed", "error", err)
	} else {
		s.toasts.Success("Logged out successfully")
	}

	// Local state is cleared regardless of what the server said
	s.stores.ClearAll()
	client.Reset()
	if err := credentials.Delete(); err != nil {
		logger.Error("Failed to delete saved session", "error", err)
	}

	output.PrintSuccess("Logged out")
	return nil
}

// RestoreSession loads a previously saved session cookie into the HTTP
// client. Called before protected commands so the session credential
// rides along implicitly.
func (s *AuthService) RestoreSession() {
	sess, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load saved session", "error", err)
		return
	}
	if sess == nil {
		return
	}
	if !sess.IsValid() {
		logger.Debug("Saved session expired", "expired_at", sess.ExpiresAt)
		return
	}

	client.SetSessionCookie(sess.Cookie())
	logger.Debug("Session restored", "user_id", sess.UserID)
}

// Whoami displays the current session user
func (s *AuthService) Whoami() error {
	user, ok := s.stores.Session.Get()
	if !ok {
		fetched, err := api.GetProfile()
		if err != nil {
			s.toasts.Error(userMessage(err))
			if api.IsUnauthorized(err) {
				return ErrLoginRequired
			}
			return err
		}
		s.stores.Session.Replace(*fetched)
		user = *fetched
	}

	keyValues := map[string]interface{}{
		"Name":  user.FullName(),
		"Email": user.EmailID,
		"ID":    user.ID,
	}
	output.PrintRecord("Logged in as", keyValues)
	return nil
}
