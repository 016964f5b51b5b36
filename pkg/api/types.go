package api

import "time"

// Auth Request Types
type LoginRequest struct {
	EmailID  string `json:"emailId"`
	Password string `json:"password"`
}

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	EmailID   string `json:"emailId"`
	Password  string `json:"password"`
}

// User is the profile record shared by the session, the feed and the
// connection list.
type User struct {
	ID        string   `json:"_id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	EmailID   string   `json:"emailId,omitempty"`
	PhotoURL  string   `json:"photoUrl,omitempty"`
	Age       int      `json:"age,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	About     string   `json:"about,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

// FullName returns the user's display name
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ConnectionRequest is a pending incoming request. Its id is distinct
// from the sender's user id.
type ConnectionRequest struct {
	ID        string    `json:"_id"`
	FromUser  User      `json:"fromUserId"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Profile Types
type UpdateProfileRequest struct {
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	PhotoURL  string   `json:"photoUrl,omitempty"`
	Age       int      `json:"age,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	About     string   `json:"about,omitempty"`
	Skills    []string `json:"skills,omitempty"`
}

// Response Envelopes
type UserResponse struct {
	Message string `json:"message"`
	Data    User   `json:"data"`
}

type UserListResponse struct {
	Message string `json:"message"`
	Data    []User `json:"data"`
}

type RequestListResponse struct {
	Message string              `json:"message"`
	Data    []ConnectionRequest `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error Response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// FeedDecision is the verdict on a feed candidate
type FeedDecision string

const (
	DecisionIgnored    FeedDecision = "ignored"
	DecisionInterested FeedDecision = "interested"
)

// Valid reports whether the decision is one the server accepts
func (d FeedDecision) Valid() bool {
	return d == DecisionIgnored || d == DecisionInterested
}

// ReviewDecision is the verdict on an incoming connection request
type ReviewDecision string

const (
	ReviewAccepted ReviewDecision = "accepted"
	ReviewRejected ReviewDecision = "rejected"
)

// Valid reports whether the decision is one the server accepts
func (d ReviewDecision) Valid() bool {
	return d == ReviewAccepted || d == ReviewRejected
}
