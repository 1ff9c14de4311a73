package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "message only",
			err:  &AppError{Code: ErrCodeNotFound, Message: "property not found"},
			want: "property not found",
		},
		{
			name: "message with cause",
			err:  &AppError{Code: ErrCodeInternal, Message: "query failed", Cause: errors.New("conn reset")},
			want: "query failed: conn reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(cause, ErrCodeInternal, "wrapped")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		want      bool
	}{
		{name: "not found matches", err: NotFound("x"), predicate: IsNotFound, want: true},
		{name: "not found mismatch", err: Conflict("x"), predicate: IsNotFound, want: false},
		{name: "conflict matches", err: Conflict("x"), predicate: IsConflict, want: true},
		{name: "validation matches", err: Validation("x"), predicate: IsValidation, want: true},
		{name: "unauthorized matches", err: Unauthorized("x"), predicate: IsUnauthorized, want: true},
		{name: "internal matches", err: Internal("x"), predicate: IsInternal, want: true},
		{name: "plain error never matches", err: errors.New("x"), predicate: IsInternal, want: false},
		{name: "nil never matches", err: nil, predicate: IsNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.predicate(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPredicates_WrappedDeep(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("user missing"))
	if !IsNotFound(err) {
		t.Error("IsNotFound should see through fmt.Errorf wrapping")
	}
}

func TestWrap_NilPassthrough(t *testing.T) {
	if Wrap(nil, ErrCodeInternal, "x") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, ErrCodeInternal, "x %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(Unauthorized("no token")); got != ErrCodeUnauthorized {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeUnauthorized)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
}

func TestGetField(t *testing.T) {
	err := ValidationField("email", "invalid format")
	if got := GetField(err); got != "email" {
		t.Errorf("GetField() = %q, want %q", got, "email")
	}
	if got := GetField(Validation("no field")); got != "" {
		t.Errorf("GetField() = %q, want empty", got)
	}
}
