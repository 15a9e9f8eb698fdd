package booking

import (
	"errors"
	"fmt"

	"github.com/elodie-boweren/MyBooking-sub000/internal/engine"
)

var ErrIllegalTransition = errors.New("illegal attempt state transition")

// AvailabilityError reports rooms the backend declared unavailable for
// the requested range.
type AvailabilityError struct {
	errors []string
}

func NewAvailabilityError() *AvailabilityError {
	return &AvailabilityError{}
}

func IsAvailabilityError(err error) *AvailabilityError {
	if err == nil {
		return nil
	}

	var availabilityError *AvailabilityError

	if errors.As(err, &availabilityError) {
		return availabilityError
	}

	return nil
}

func (e *AvailabilityError) AddUnavailableRoom(roomID string, stay engine.Stay) {
	e.errors = append(e.errors, fmt.Sprintf(
		"room '%v' is not available from %v to %v",
		roomID,
		stay.CheckIn.UTC().Format(dateLayout),
		stay.CheckOut.UTC().Format(dateLayout),
	))
}

func (e *AvailabilityError) Error() string {
	return fmt.Sprintf("%+v", e.errors)
}

func (e *AvailabilityError) Fields() []string {
	return e.errors
}

// SubmissionError surfaces a failure from the external reservation
// endpoint. Message carries the backend's own wording when it sent
// one; a transport failure with no response gets the generic message.
type SubmissionError struct {
	StatusCode int
	Message    string
}

const genericSubmissionMessage = "reservation service unreachable, please try again"

func NewSubmissionError(statusCode int, message string) *SubmissionError {
	if message == "" {
		message = genericSubmissionMessage
	}

	return &SubmissionError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func IsSubmissionError(err error) *SubmissionError {
	if err == nil {
		return nil
	}

	var submissionError *SubmissionError

	if errors.As(err, &submissionError) {
		return submissionError
	}

	return nil
}

func (e *SubmissionError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}

	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}
