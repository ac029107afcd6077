package payment

import "fmt"

// PaymentError carries a user-facing rejection message for a payment attempt.
type PaymentError struct {
	Code    string
	Message string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewPaymentError(msg string) error {
	return &PaymentError{
		Code:    "paymentError",
		Message: msg,
	}
}
