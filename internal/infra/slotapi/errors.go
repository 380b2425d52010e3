package slotapi

import (
	"fmt"

	"slot-booking-web/internal/pkg/errs"
)

// RequestError is returned for any non-success response from the slot service.
// Message is the optional human-readable text from the error body.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
	err        error
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

func (e *RequestError) Unwrap() error { return e.err }

func (e *RequestError) Is(target error) bool {
	return target == errs.ErrSlotServiceRequest
}

// NetworkError is returned when a request could not complete at all.
type NetworkError struct {
	Op  string
	err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.err)
}

func (e *NetworkError) Unwrap() error { return e.err }

func (e *NetworkError) Is(target error) bool {
	return target == errs.ErrSlotServiceNetwork
}

// ServerMessage exposes the message to errs.ServiceMessage.
func (e *RequestError) ServerMessage() string { return e.Message }
