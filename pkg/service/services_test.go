package service

import (
	"errors"
	"testing"

	"github.com/devconnect/cli/pkg/api"
	"github.com/devconnect/cli/pkg/state"
	"github.com/devconnect/cli/pkg/toast"
)

func TestNewFeedService(t *testing.T) {
	service := NewFeedService(state.NewFeedStore(), toast.NewCenter())
	if service == nil {
		t.Error("NewFeedService returned nil")
	}
}

func TestNewRequestService(t *testing.T) {
	service := NewRequestService(state.NewRequestStore(), toast.NewCenter())
	if service == nil {
		t.Error("NewRequestService returned nil")
	}
}

func TestNewConnectionService(t *testing.T) {
	service := NewConnectionService(state.NewConnectionStore(), toast.NewCenter())
	if service == nil {
		t.Error("NewConnectionService returned nil")
	}
}

func TestNewAuthService(t *testing.T) {
	service := NewAuthService(state.New(), toast.NewCenter())
	if service == nil {
		t.Error("NewAuthService returned nil")
	}
}

func TestNewProfileService(t *testing.T) {
	service := NewProfileService(state.NewUserStore(), toast.NewCenter())
	if service == nil {
		t.Error("NewProfileService returned nil")
	}
}

// TestUserMessage validates that only server-supplied messages reach
// the user; raw transport errors degrade to a generic string
func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", &api.APIError{StatusCode: 400, Message: "Invalid credentials"}, "Invalid credentials"},
		{"raw error", errors.New("dial tcp: connection refused"), "Something went wrong"},
		{"empty server message", &api.APIError{StatusCode: 500}, "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userMessage(tt.err); got != tt.want {
				t.Errorf("Expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}
