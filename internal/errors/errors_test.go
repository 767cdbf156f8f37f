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
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "resource not found",
			},
			want: "resource not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeSaveFailed,
				Message: "Save failed",
				Cause:   errors.New("underlying error"),
			},
			want: "Save failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &AppError{
		Code:    ErrCodeInternal,
		Message: "wrapped error",
		Cause:   cause,
	}

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestInvalidCredentials(t *testing.T) {
	err := InvalidCredentials(errors.New("401"))
	if err.Code != ErrCodeInvalidCredentials {
		t.Errorf("InvalidCredentials().Code = %v, want %v", err.Code, ErrCodeInvalidCredentials)
	}
	if err.Message != "Invalid username or password." {
		t.Errorf("InvalidCredentials().Message = %q", err.Message)
	}
	if UserMessage(err, "") != InvalidCredentialsMessage {
		t.Errorf("UserMessage() = %q, want %q", UserMessage(err, ""), InvalidCredentialsMessage)
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("email", "invalid email format")
	if err.Code != ErrCodeValidation {
		t.Errorf("ValidationField().Code = %v, want %v", err.Code, ErrCodeValidation)
	}
	if err.Field != "email" {
		t.Errorf("ValidationField().Field = %v, want %v", err.Field, "email")
	}
	if got := GetFields(err)["email"]; got != "invalid email format" {
		t.Errorf("GetFields()[email] = %q", got)
	}
}

func TestValidationFields(t *testing.T) {
	if err := ValidationFields(nil); err != nil {
		t.Errorf("ValidationFields(nil) = %v, want nil", err)
	}

	fields := FieldErrors{"name": "Name is required"}
	err := ValidationFields(fields)
	if !IsValidation(err) {
		t.Fatalf("ValidationFields() code = %v, want validation", GetCode(err))
	}
	fields["name"] = "mutated"
	if GetFields(err)["name"] != "Name is required" {
		t.Error("ValidationFields() should copy the field map")
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, ErrCodeLoadFailed, "Failed to load suppliers")

	if err.Code != ErrCodeLoadFailed {
		t.Errorf("Wrap().Code = %v, want %v", err.Code, ErrCodeLoadFailed)
	}
	if !errors.Is(err, cause) {
		t.Error("Wrap() should preserve cause for errors.Is")
	}
}

func TestWrap_NilError(t *testing.T) {
	if err := Wrap(nil, ErrCodeInternal, "message"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(errors.New("boom"), ErrCodeLoadFailed, "Failed to load %s", "products")
	if err.Message != "Failed to load products" {
		t.Errorf("Wrapf().Message = %q", err.Message)
	}
}

func TestReclassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode ErrorCode
	}{
		{
			name:     "nil stays nil",
			err:      nil,
			wantCode: "",
		},
		{
			name:     "authorization expired passes through",
			err:      fmt.Errorf("list suppliers: %w", AuthorizationExpired(nil)),
			wantCode: ErrCodeAuthorizationExpired,
		},
		{
			name:     "not found passes through",
			err:      NotFound("missing"),
			wantCode: ErrCodeNotFound,
		},
		{
			name:     "unavailable becomes load failed",
			err:      FromStatus(500, ""),
			wantCode: ErrCodeLoadFailed,
		},
		{
			name:     "plain error becomes load failed",
			err:      errors.New("boom"),
			wantCode: ErrCodeLoadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reclassify(tt.err, ErrCodeLoadFailed, "Failed to load",
				ErrCodeAuthorizationExpired, ErrCodeNotFound)
			if tt.err == nil {
				if got != nil {
					t.Errorf("Reclassify(nil) = %v, want nil", got)
				}
				return
			}
			if GetCode(got) != tt.wantCode {
				t.Errorf("Reclassify() code = %v, want %v", GetCode(got), tt.wantCode)
			}
		})
	}
}

func TestReclassify_KeepsStatus(t *testing.T) {
	got := Reclassify(FromStatus(503, ""), ErrCodeSaveFailed, "Save failed")
	if GetStatus(got) != 503 {
		t.Errorf("GetStatus() = %d, want 503", GetStatus(got))
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found", NotFound("x"), IsNotFound, true},
		{"wrapped not found", fmt.Errorf("get: %w", NotFound("x")), IsNotFound, true},
		{"validation", Validation("x"), IsValidation, true},
		{"invalid credentials", InvalidCredentials(nil), IsInvalidCredentials, true},
		{"authorization expired", AuthorizationExpired(nil), IsAuthorizationExpired, true},
		{"unavailable", FromStatus(502, ""), IsUnavailable, true},
		{"internal", Internal("x"), IsInternal, true},
		{"standard error", errors.New("x"), IsNotFound, false},
		{"nil", nil, IsValidation, false},
		{"different code", NotFound("x"), IsConflict, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"app error", Validation("x"), ErrCodeValidation},
		{"wrapped app error", fmt.Errorf("wrapped: %w", NotFound("x")), ErrCodeNotFound},
		{"standard error", errors.New("x"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(errors.New("raw"), "Save failed"); got != "Save failed" {
		t.Errorf("UserMessage() = %q, want fallback", got)
	}
	if got := UserMessage(Validation("Name is required"), "Save failed"); got != "Name is required" {
		t.Errorf("UserMessage() = %q, want app message", got)
	}
}
