package appointment

// statusTransitions lists every move an operator may make. The graph is
// currently complete; tightening the workflow means editing this table.
var statusTransitions = map[Status][]Status{
	StatusScheduled:  AllStatuses,
	StatusPending:    AllStatuses,
	StatusInProgress: AllStatuses,
	StatusConfirmed:  AllStatuses,
	StatusCompleted:  AllStatuses,
	StatusCancelled:  AllStatuses,
}

func CanTransition(from, to Status) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// SetStatus returns a copy of a with the new status. Persisting it is up to the caller.
func SetStatus(a Appointment, next Status) (Appointment, error) {
	if !next.IsValid() {
		return a, ErrInvalidStatus
	}
	if !CanTransition(a.Status, next) {
		return a, ErrTransitionNotAllowed
	}
	a.Status = next
	return a, nil
}

// TogglePayment flips between unpaid and paid regardless of status.
func TogglePayment(a Appointment) Appointment {
	if a.PaymentStatus == PaymentPaid {
		a.PaymentStatus = PaymentUnpaid
	} else {
		a.PaymentStatus = PaymentPaid
	}
	return a
}

func CanDelete(a Appointment) bool {
	return a.Status == StatusCancelled
}

// EnsureDeletable is the one hard lifecycle rule: only cancelled appointments may be deleted.
func EnsureDeletable(a Appointment) error {
	if !CanDelete(a) {
		return ErrInvalidState
	}
	return nil
}
