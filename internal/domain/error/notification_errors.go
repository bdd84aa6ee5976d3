// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Notification domain errors.
var (
	// ErrTemporaryDeliveryFailure is returned for deliveries worth retrying (rate
	// limits, upstream 5xx).
	ErrTemporaryDeliveryFailure = errors.New("temporary notification delivery failure")

	// ErrPermanentDeliveryFailure is returned for deliveries that will never
	// succeed (bad credentials, rejected recipient).
	ErrPermanentDeliveryFailure = errors.New("permanent notification delivery failure")
)

// NotificationErrorCode defines error codes for notification errors.
type NotificationErrorCode string

const (
	ErrCodeTemporaryDeliveryFailure NotificationErrorCode = "NTF-010001"
	ErrCodePermanentDeliveryFailure NotificationErrorCode = "NTF-010002"
)

// NotificationError represents a notification error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
