package httperr

import (
	"errors"
	"net/http"

	"groombook/internal/domain/appointment"
	"groombook/internal/domain/calendar"
	"groombook/internal/domain/recurrence"
	"groombook/internal/pkg/errs"
	"groombook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type mapping struct {
	target  error
	status  int
	message string
}

var mappings = []mapping{
	{errs.ErrAppointmentNotFound, http.StatusNotFound, "Appointment not found"},
	{errs.ErrCustomerNotFound, http.StatusNotFound, "Customer not found"},
	{errs.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
	{errs.ErrPetNotOwned, http.StatusBadRequest, "Pet does not belong to customer"},
	{appointment.ErrInvalidState, http.StatusConflict, "Only cancelled appointments can be deleted"},
	{appointment.ErrTransitionNotAllowed, http.StatusConflict, "Status transition not allowed"},
	{appointment.ErrInvalidStatus, http.StatusBadRequest, "Invalid appointment status"},
	{appointment.ErrInvalidPaymentStatus, http.StatusBadRequest, "Invalid payment status"},
	{appointment.ErrMissingCustomer, http.StatusBadRequest, "Customer is required"},
	{appointment.ErrMissingServices, http.StatusBadRequest, "At least one service is required"},
	{appointment.ErrInvalidDuration, http.StatusBadRequest, "Duration must be positive"},
	{appointment.ErrInvalidAppointmentDay, http.StatusBadRequest, "Invalid appointment date"},
	{calendar.ErrInvalidDayKey, http.StatusBadRequest, "Invalid date"},
	{calendar.ErrInvalidTimeOfDay, http.StatusBadRequest, "Invalid time"},
	{queries.ErrInvalidBucket, http.StatusBadRequest, "Unknown bucket"},
	{queries.ErrInvalidDateRange, http.StatusBadRequest, "Invalid date range"},
	{errs.ErrRateLimited, http.StatusTooManyRequests, "Too many requests"},
}

// Status resolves the HTTP status and public message for a use case error.
func Status(err error) (int, string) {
	var verr *recurrence.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, "Invalid recurrence"
	}
	for _, m := range mappings {
		if errors.Is(err, m.target) || errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort maps err with Status and aborts the request. Recurrence validation
// errors carry the offending field as detail.
func Abort(c *gin.Context, err error) {
	status, msg := Status(err)

	var detail any
	var verr *recurrence.ValidationError
	if errors.As(err, &verr) {
		detail = gin.H{"field": verr.Field, "reason": verr.Cause.Error()}
	}
	AbortWithError(c, status, err, msg, detail)
}
