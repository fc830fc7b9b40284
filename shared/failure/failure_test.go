package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"meetslot/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed", Reason: failure.ReasonValidation},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if *f != *expectedF {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestRejected(t *testing.T) {
	result := failure.Rejected(failure.ReasonNotAWeekday, "Meetings can only be scheduled Monday through Friday")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}
	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}
	if f.Reason != failure.ReasonNotAWeekday {
		t.Errorf("expected reason to be %s, got %s", failure.ReasonNotAWeekday, f.Reason)
	}
}

func TestMeetingCreationFailed(t *testing.T) {
	tests := []struct {
		name    string
		input   error
		message string
	}{
		{
			name:    "with cause",
			input:   errors.New("graph returned 503"),
			message: "Failed to create meeting: graph returned 503",
		},
		{
			name:    "without cause",
			input:   nil,
			message: "Failed to create meeting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.MeetingCreationFailed(tt.input)

			if failure.GetCode(result) != http.StatusInternalServerError {
				t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, failure.GetCode(result))
			}
			if failure.GetReason(result) != failure.ReasonMeetingCreationFailed {
				t.Errorf("expected reason to be %s, got %s", failure.ReasonMeetingCreationFailed, failure.GetReason(result))
			}
			if failure.GetMessage(result) != tt.message {
				t.Errorf("expected message to be %q, got %q", tt.message, failure.GetMessage(result))
			}
		})
	}
}

func TestUnauthorized(t *testing.T) {
	result := failure.Unauthorized("token expired")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusUnauthorized {
			t.Errorf("expected code to be %d, got %d", http.StatusUnauthorized, f.Code)
		}
		if f.Message != "token expired" {
			t.Errorf("expected message to be 'token expired', got %s", f.Message)
		}
	}
}

func TestInternalError(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("database connection failed"),
			expected: &failure.Failure{Code: http.StatusInternalServerError, Message: "database connection failed", Reason: failure.ReasonInternal},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.InternalError(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				f, ok := result.(*failure.Failure)
				if !ok {
					t.Errorf("expected result to be *failure.Failure, got %T", result)
				} else {
					expectedF := tt.expected.(*failure.Failure)
					if *f != *expectedF {
						t.Errorf("expected %+v, got %+v", expectedF, f)
					}
				}
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("booked slot not found")

	if failure.GetCode(result) != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, failure.GetCode(result))
	}
	if failure.GetMessage(result) != "booked slot not found" {
		t.Errorf("expected message to be 'booked slot not found', got %s", failure.GetMessage(result))
	}
}

func TestForbidden(t *testing.T) {
	result := failure.Forbidden("Access denied")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Errorf("expected result to be *failure.Failure, got %T", result)
	} else {
		if f.Code != http.StatusForbidden {
			t.Errorf("expected code to be %d, got %d", http.StatusForbidden, f.Code)
		}
		if f.Message != "Access denied" {
			t.Errorf("expected message to be 'Access denied', got %s", f.Message)
		}
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("failed to schedule: %w", failure.Rejected(failure.ReasonPastTimeSlot, "past")),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestGetReason(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected string
	}{
		{
			name:     "wrapped rejection",
			input:    fmt.Errorf("check: %w", failure.Rejected(failure.ReasonSlotAlreadyBooked, "booked")),
			expected: failure.ReasonSlotAlreadyBooked,
		},
		{
			name:     "failure without reason",
			input:    failure.Conflict("conflict"),
			expected: failure.ReasonInternal,
		},
		{
			name:     "plain error",
			input:    errors.New("boom"),
			expected: failure.ReasonInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetReason(tt.input); got != tt.expected {
				t.Errorf("expected reason to be %s, got %s", tt.expected, got)
			}
		})
	}
}
