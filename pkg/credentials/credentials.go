package credentials

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/devconnect/cli/pkg/config"
)

// Session holds the persisted session cookie between CLI invocations.
// The token itself is opaque to the client.
type Session struct {
	CookieName  string    `json:"cookie_name"`
	CookieValue string    `json:"cookie_value"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	FirstName   string    `json:"first_name"`
	Email       string    `json:"email"`
}

// Load loads the session from disk
func Load() (*Session, error) {
	path := config.GetSessionPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No session saved yet
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

// Save saves the session to disk
func Save(sess *Session) error {
	path := config.GetSessionPath()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}

// Delete deletes the session from disk
func Delete() error {
	path := config.GetSessionPath()
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsExpired checks if the session cookie is expired
func (s *Session) IsExpired() bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(s.ExpiresAt)
}

// IsValid checks if the session looks usable
func (s *Session) IsValid() bool {
	return s.CookieValue != "" && !s.IsExpired()
}

// Cookie returns the session as an HTTP cookie
func (s *Session) Cookie() *http.Cookie {
	return &http.Cookie{
		Name:    s.CookieName,
		Value:   s.CookieValue,
		Expires: s.ExpiresAt,
	}
}
