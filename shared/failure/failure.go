package failure

import (
	"errors"
	"net/http"
)

// Machine readable reasons carried next to the HTTP code.
const (
	ReasonInvalidTimeFormat     = "InvalidTimeFormat"
	ReasonInvalidDateFormat     = "InvalidDateFormat"
	ReasonNotAWeekday           = "NotAWeekday"
	ReasonOutsideBusinessHours  = "OutsideBusinessHours"
	ReasonPastTimeSlot          = "PastTimeSlot"
	ReasonSlotAlreadyBooked     = "SlotAlreadyBooked"
	ReasonSlotNotFound          = "SlotNotFound"
	ReasonMeetingCreationFailed = "MeetingCreationFailed"
	ReasonNotificationFailed    = "NotificationFailed"
	ReasonStoreUnavailable      = "StoreUnavailable"
	ReasonValidation            = "ValidationFailed"
	ReasonUnauthorized          = "Unauthorized"
	ReasonForbidden             = "Forbidden"
	ReasonInternal              = "InternalError"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions", Reason: ReasonForbidden}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
			Reason:  ReasonValidation,
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Reason:  ReasonValidation,
	}
}

// Rejected returns a bad request Failure tagged with a specific reason.
func Rejected(reason, msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Reason:  reason,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
		Reason:  ReasonUnauthorized,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			Reason:  ReasonInternal,
		}
	}

	return nil
}

// MeetingCreationFailed marks a failed call to the meeting provider.
func MeetingCreationFailed(err error) error {
	msg := "Failed to create meeting"
	if err != nil {
		msg = msg + ": " + err.Error()
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: msg,
		Reason:  ReasonMeetingCreationFailed,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
		Reason:  ReasonSlotNotFound,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
		Reason:  ReasonForbidden,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the machine reason of an error, InternalError when unknown.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Reason != "" {
		return fail.Reason
	}

	return ReasonInternal
}

// GetMessage returns the human readable message of a Failure, or the raw error text.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	if err == nil {
		return ""
	}

	return err.Error()
}
