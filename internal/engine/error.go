package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateRange   = errors.New("check-out must be after check-in")
	ErrPastCheckIn        = errors.New("check-in must not be in the past")
	ErrInsufficientPoints = errors.New("requested points exceed account balance")
)

// InputError collects admissibility failures keyed by field so the UI
// layer can render a message next to the offending control.
type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}
