package httperr

import "errors"

// Kind groups business codes into the status families a caller can branch on.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
)

type BusinessError struct {
	Code    string
	Kind    Kind
	Message string
	Details map[string]any
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// ErrBusinessWith builds a business error carrying the context a caller
// needs to fix the request.
func ErrBusinessWith(kind Kind, code, message string, details map[string]any) error {
	return BusinessError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Details: details,
	}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}
