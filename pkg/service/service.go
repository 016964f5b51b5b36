// Package service implements the controllers that keep the entity
// stores, the remote API and the notification center mutually
// consistent. Each service owns a disjoint store and reports every
// outcome, success or failure, through the notification center.
package service

import (
	"errors"

	"github.com/devconnect/cli/pkg/api"
	"github.com/devconnect/cli/pkg/toast"
)

// ErrLoginRequired signals that the caller should route to the login
// flow. An expired session is the most common cause of a protected
// fetch failing.
var ErrLoginRequired = errors.New("login required")

// ErrActionPending signals that the same item already has a submission
// in flight and the new one was not started.
var ErrActionPending = errors.New("action already in flight")

// userMessage extracts the server-supplied message of an error, or a
// generic string for error shapes without one. Raw error details never
// reach the user.
func userMessage(err error) string {
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	return "Something went wrong"
}

// submit runs a remote decision call and routes the outcome through the
// notification center. The success transition runs strictly after the
// call succeeds; a failed submission leaves local state untouched so
// the action stays retryable.
func submit(toasts *toast.Center, call func() (string, error), onSuccess func()) error {
	msg, err := call()
	if err != nil {
		toasts.Error(userMessage(err))
		return err
	}
	onSuccess()
	toasts.Success(msg)
	return nil
}
