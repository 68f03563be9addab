package errs

import "errors"

// Sentinel errors shared by the command and query use cases
var (
	// Appointment errors
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSeriesNotCreated    = errors.New("appointment series could not be created")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPetNotOwned      = errors.New("pet does not belong to customer")
	ErrServiceNotFound  = errors.New("service not found")

	// Request errors
	ErrRateLimited = errors.New("too many requests")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
