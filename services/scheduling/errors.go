package scheduling

// ValidationError reports a request rejected before any write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports an unknown therapist or session.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError reports a booking that lost to another one, either at the
// availability check or at the unique-index safety net. Callers should
// re-fetch available slots and retry with a different time.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
