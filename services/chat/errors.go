package chat

// ValidationError reports a request the orchestrator refuses outright:
// missing fields, invalid chat types, role mismatches.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports an unknown sender, receiver or participant.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }
