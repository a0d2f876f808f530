package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"
)

func TestCodeForStatus(t *testing.T) {
	tests := []struct {
		status int
		code   Code
	}{
		{status: http.StatusUnauthorized, code: CodeUnauthorized},
		{status: http.StatusForbidden, code: CodeForbidden},
		{status: http.StatusNotFound, code: CodeNotFound},
		{status: http.StatusBadRequest, code: CodeValidation},
		{status: http.StatusInternalServerError, code: CodeServer},
		{status: http.StatusConflict, code: CodeServer},
	}
	for _, tt := range tests {
		if got := CodeForStatus(tt.status); got != tt.code {
			t.Fatalf("status %d expected code %s got %s", tt.status, tt.code, got)
		}
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing quantity")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing quantity" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Status() != 0 {
		t.Fatalf("status should be zero by default, got %d", base.Status())
	}

	withStatus := New(CodeServer, "boom").WithStatus(http.StatusBadGateway)
	if withStatus.Status() != http.StatusBadGateway {
		t.Fatalf("expected status 502 got %d", withStatus.Status())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("connection refused")
	wrapped := Wrap(CodeTransport, cause, "request failed")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
	if !IsTransport(wrapped) {
		t.Fatal("expected transport classification")
	}

	var typed *Error
	if !stdErrors.As(wrapped, &typed) {
		t.Fatal("expected errors.As to find typed error")
	}
	if typed.Code() != CodeTransport {
		t.Fatalf("unexpected code %s", typed.Code())
	}
}

func TestAsOnForeignError(t *testing.T) {
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("expected nil for untyped error")
	}
	if As(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestNilReceiverSafety(t *testing.T) {
	var e *Error
	if e.Code() != CodeInternal {
		t.Fatalf("nil error should report internal code, got %s", e.Code())
	}
	if e.Error() != "" || e.Message() != "" {
		t.Fatal("nil error should stringify empty")
	}
	if e.Unwrap() != nil {
		t.Fatal("nil error should unwrap to nil")
	}
}
