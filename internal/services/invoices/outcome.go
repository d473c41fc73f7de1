package invoices

// OutcomeKind discriminates the result of one mutation attempt.
type OutcomeKind int

const (
	// OutcomeRedirect is the terminal signal of a successful create/update.
	// It is a plain value, so no failure-handling path can intercept it.
	OutcomeRedirect OutcomeKind = iota
	OutcomeValidationFailed
	OutcomePersistenceFailed
	// OutcomeSuccess reports a completed delete, which stays on the listing
	// instead of redirecting.
	OutcomeSuccess
)

// Outcome is the result of a single mutation attempt. Exactly one of the
// variant payloads is populated per invocation.
type Outcome struct {
	Kind       OutcomeKind
	RedirectTo string
	Errors     map[string][]string
	Message    string
}

func redirect(path string) Outcome {
	return Outcome{Kind: OutcomeRedirect, RedirectTo: path}
}

func validationFailed(errors map[string][]string, message string) Outcome {
	return Outcome{Kind: OutcomeValidationFailed, Errors: errors, Message: message}
}

func persistenceFailed(message string) Outcome {
	return Outcome{Kind: OutcomePersistenceFailed, Message: message}
}

func success(message string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Message: message}
}
