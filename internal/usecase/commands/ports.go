package commands

// BookingRecorder receives business counters from the write side.
// *metrics.Metrics satisfies it; nil disables recording.
type BookingRecorder interface {
	AppointmentsBooked(occurrences int)
	StatusChanged(status string)
}
