package appointment

import "errors"

var (
	ErrInvalidState          = errors.New("operation not allowed in the current appointment state")
	ErrInvalidStatus         = errors.New("invalid appointment status")
	ErrInvalidPaymentStatus  = errors.New("invalid payment status")
	ErrTransitionNotAllowed  = errors.New("status transition not allowed")
	ErrMissingCustomer       = errors.New("appointment requires a customer")
	ErrMissingServices       = errors.New("appointment requires at least one service")
	ErrInvalidDuration       = errors.New("duration must be positive")
	ErrInvalidAppointmentDay = errors.New("appointment date is not a valid calendar date")
)
