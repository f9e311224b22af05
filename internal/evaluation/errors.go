package evaluation

import "errors"

// ErrEmptyResume reports resume text that is empty after extraction.
// Evaluation short-circuits without consuming an AI call.
var ErrEmptyResume = errors.New("resume content is empty")

// ErrEmptyJobDescription reports a blank job description. Evaluation
// short-circuits without consuming an AI call.
var ErrEmptyJobDescription = errors.New("job description is empty")

// ServiceError reports an AI call that failed, timed out, or returned
// text that does not parse as JSON.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return "ai evaluation failed: " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
