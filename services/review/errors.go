package review

import "fmt"

// ReviewError carries a user-facing review failure.
type ReviewError struct {
	Code    string
	Message string
}

func (e *ReviewError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewReviewError(msg string) error {
	return &ReviewError{
		Code:    "reviewError",
		Message: msg,
	}
}
