package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Dispatch failure taxonomy
const (
	ErrorTypeConfiguration       ErrorType = "configuration_error"
	ErrorTypeRecipientResolution ErrorType = "recipient_resolution_error"
	ErrorTypeDelivery            ErrorType = "delivery_error"
	ErrorTypeDataStore           ErrorType = "data_store_error"
)

// DispatchError is raised while evaluating or sending a single reminder.
// Only data store errors abort a batch; the others are recorded per reminder.
type DispatchError struct {
	*AppError
	ReminderID uint
	Cause      error
}

// Error implements the error interface
func (e *DispatchError) Error() string {
	msg := e.AppError.Error()
	if e.ReminderID != 0 {
		msg = fmt.Sprintf("reminder %d: %s", e.ReminderID, msg)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes both the AppError and the underlying cause to errors.Is/As.
func (e *DispatchError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.AppError}
	}
	return []error{e.AppError, e.Cause}
}

// Fatal reports whether the error must stop the whole run.
func (e *DispatchError) Fatal() bool {
	return e.Type == ErrorTypeDataStore
}

func newDispatchError(errType ErrorType, code int, reminderID uint, message string, cause error) *DispatchError {
	return &DispatchError{
		AppError: &AppError{
			Type:    errType,
			Message: message,
			Code:    code,
		},
		ReminderID: reminderID,
		Cause:      cause,
	}
}

// NewConfigurationError reports a reminder type that cannot be dispatched as configured
// (missing template, missing recipient policy, empty interval set).
func NewConfigurationError(reminderID uint, message string) *DispatchError {
	return newDispatchError(ErrorTypeConfiguration, http.StatusUnprocessableEntity, reminderID, message, nil)
}

// NewRecipientResolutionError reports that no deliverable address was found.
func NewRecipientResolutionError(reminderID uint, message string) *DispatchError {
	return newDispatchError(ErrorTypeRecipientResolution, http.StatusUnprocessableEntity, reminderID, message, nil)
}

// NewDeliveryError reports a failed or timed out email send.
func NewDeliveryError(reminderID uint, message string, cause error) *DispatchError {
	return newDispatchError(ErrorTypeDelivery, http.StatusBadGateway, reminderID, message, cause)
}

// NewDataStoreError reports an unreachable or failing data store.
func NewDataStoreError(message string, cause error) *DispatchError {
	return newDispatchError(ErrorTypeDataStore, http.StatusServiceUnavailable, 0, message, cause)
}

// GetDispatchError extracts DispatchError from error
func GetDispatchError(err error) *DispatchError {
	var dispatchErr *DispatchError
	if stderrors.As(err, &dispatchErr) {
		return dispatchErr
	}
	return nil
}

// IsDataStoreError checks if the error is a data store error
func IsDataStoreError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == ErrorTypeDataStore
}
