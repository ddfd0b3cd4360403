package genai

import "errors"

// ErrorKind classifies a generation failure. Kinds drive both control flow
// and the message the UI shows; there is no retry behind any of them.
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation_error"
	KindNetworkUnreachable ErrorKind = "network_unreachable"
	KindTimeout            ErrorKind = "timeout"
	KindServiceError       ErrorKind = "service_error"
	KindMalformedResponse  ErrorKind = "malformed_response"
	KindNoUsableQuestions  ErrorKind = "no_usable_questions"
)

// Error is a classified generation failure. Message is written for the end
// user; Status and BodyExcerpt are populated only for KindServiceError.
type Error struct {
	Kind        ErrorKind
	Message     string
	Status      int
	BodyExcerpt string
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf returns the classification of err, or "" if err is not a *Error.
func KindOf(err error) ErrorKind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return ""
}
