package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusActive   Status = "active"
	StatusCanceled Status = "canceled"
)

// CanCancel allows the active -> canceled transition exactly once.
func CanCancel(id uint, current Status) error {
	if current == StatusCanceled {
		return ErrAlreadyCanceled(id)
	}
	return nil
}

func InitialStatus() Status {
	return StatusActive
}
