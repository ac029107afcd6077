package booking

import "fmt"

// ReservationError carries a user-facing rejection message for a reservation
// attempt (tutor not available, slot taken, and so on).
type ReservationError struct {
	Code    string
	Message string
}

func (e *ReservationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewReservationError(msg string) error {
	return &ReservationError{
		Code:    "reservationError",
		Message: msg,
	}
}

// Flow guard errors. These signal disabled operations, not failures; handlers
// map them to 4xx responses without touching flow state.
var (
	ErrNoStartTime      = fmt.Errorf("no start time selected")
	ErrSubmitInFlight   = fmt.Errorf("reservation submission already in progress")
	ErrFlowAlreadyDone  = fmt.Errorf("booking flow already completed")
	ErrNoBlockSelected  = fmt.Errorf("no availability block selected")
	ErrInvalidStartTime = fmt.Errorf("start time is not one of the offered options")
)
