package tutor

import "fmt"

// ProfileError carries a user-facing tutor profile or availability failure.
type ProfileError struct {
	Code    string
	Message string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewProfileError(msg string) error {
	return &ProfileError{
		Code:    "profileError",
		Message: msg,
	}
}
