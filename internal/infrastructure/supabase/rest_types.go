package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrRemote marks failures reported by the platform itself (non-2xx answers)
var ErrRemote = errors.New("supabase: remote error")

// RemoteError is a non-2xx answer from the platform
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrRemote) true for every RemoteError
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}

// errorBody covers the error shapes of PostgREST (message) and GoTrue (msg, error_description)
type errorBody struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

func newRemoteError(status int, body []byte) *RemoteError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		for _, msg := range []string{eb.Message, eb.Msg, eb.ErrorDescription} {
			if msg != "" {
				return &RemoteError{StatusCode: status, Message: msg}
			}
		}
	}
	return &RemoteError{
		StatusCode: status,
		Message:    fmt.Sprintf("%d %s", status, http.StatusText(status)),
	}
}

type passwordGrantRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	User        *AuthUser `json:"user"`
}
