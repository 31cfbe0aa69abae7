package errdefs

type ErrorType int

const (
	ErrTypeUnresolvedScript ErrorType = iota
	ErrTypeMissingRequiredField
	ErrTypeChildProcessFailure
	ErrTypeClipboardUnavailable
	ErrTypeGeneric
)

type CustomError struct {
	Type    ErrorType
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

// IsType reports whether err is a CustomError of the given type.
func IsType(err error, errType ErrorType) bool {
	ce, ok := err.(*CustomError)
	return ok && ce.Type == errType
}
