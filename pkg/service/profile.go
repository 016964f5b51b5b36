package service

import (
	"strconv"

	"github.com/devconnect/cli/pkg/api"
	"github.com/devconnect/cli/pkg/logger"
	"github.com/devconnect/cli/pkg/output"
	"github.com/devconnect/cli/pkg/prompter"
	"github.com/devconnect/cli/pkg/state"
	"github.com/devconnect/cli/pkg/toast"
)

// ProfileService views and edits the current user's profile
type ProfileService struct {
	session *state.UserStore
	toasts  *toast.Center
}

// NewProfileService creates a new profile service
func NewProfileService(session *state.UserStore, toasts *toast.Center) *ProfileService {
	return &ProfileService{session: session, toasts: toasts}
}

// View displays the session user's profile
func (s *ProfileService) View() error {
	user, ok := s.session.Get()
	if !ok {
		fetched, err := api.GetProfile()
		if err != nil {
			s.toasts.Error(userMessage(err))
			if api.IsUnauthorized(err) {
				return ErrLoginRequired
			}
			return err
		}
		s.session.Replace(*fetched)
		user = *fetched
	}

	output.PrintInfo("Your Profile")
	displayUserCard(user)
	return nil
}

// Edit prompts for profile fields and submits the update. On success the
// session user is replaced wholesale with the server's response.
func (s *ProfileService) Edit() error {
	user, ok := s.session.Get()
	if !ok {
		fetched, err := api.GetProfile()
		if err != nil {
			s.toasts.Error(userMessage(err))
			if api.IsUnauthorized(err) {
				return ErrLoginRequired
			}
			return err
		}
		s.session.Replace(*fetched)
		user = *fetched
	}

	firstName, err := prompter.PromptStringDefault("First Name", user.FirstName)
	if err != nil {
		return err
	}
	lastName, err := prompter.PromptStringDefault("Last Name", user.LastName)
	if err != nil {
		return err
	}
	photoURL, err := prompter.PromptStringDefault("Photo URL", user.PhotoURL)
	if err != nil {
		return err
	}
	ageStr, err := prompter.PromptStringDefault("Age", strconv.Itoa(user.Age))
	if err != nil {
		return err
	}
	age, err := strconv.Atoi(ageStr)
	if err != nil {
		s.toasts.Error("Age must be a number")
		return err
	}
	gender, err := prompter.PromptStringDefault("Gender", user.Gender)
	if err != nil {
		return err
	}
	about, err := prompter.PromptStringDefault("About", user.About)
	if err != nil {
		return err
	}

	updated, err := api.UpdateProfile(api.UpdateProfileRequest{
		FirstName: firstName,
		LastName:  lastName,
		PhotoURL:  photoURL,
		Age:       age,
		Gender:    gender,
		About:     about,
	})
	if err != nil {
		s.toasts.Error(userMessage(err))
		logger.Error("Profile update failed", "error", err)
		return err
	}

	s.session.Replace(*updated)
	s.toasts.Success("Profile updated successfully")

	output.PrintSuccess("Profile updated!")
	displayUserCard(*updated)
	return nil
}
