package interview

import "errors"

// Failure taxonomy shared by the wizard pipeline. Catalog trouble is the only
// kind recovered transparently (ResolveQuestions falls back to the default
// script); everything else surfaces to the caller.
var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrNotFound           = errors.New("not found")
	ErrCatalogUnavailable = errors.New("question catalog unavailable")
	ErrSynthesisFailed    = errors.New("answer synthesis failed")
	ErrSubmissionFailed   = errors.New("report submission failed")

	ErrEmptyAnswer  = errors.New("answer is empty")
	ErrSessionState = errors.New("operation not allowed in current session state")
)
