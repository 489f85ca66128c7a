package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("expected AppError to unwrap to its cause")
	}
	if got := err.Error(); got != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("Error() = %q", got)
	}
	if body := err.ToHTTPError(); body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAppError_WithMessage(t *testing.T) {
	base := NewDomainErrorSimple("INVALID_TRANSITION", "Status change not allowed", http.StatusConflict)
	custom := base.WithMessage("only pending applications may be withdrawn")

	if base.Message != "Status change not allowed" {
		t.Fatalf("base was mutated: %q", base.Message)
	}
	if custom.Code != base.Code || custom.HTTPStatus != http.StatusConflict {
		t.Fatalf("code/status not kept: %+v", custom)
	}
	if custom.Error() != "INVALID_TRANSITION: only pending applications may be withdrawn" {
		t.Fatalf("Error() = %q", custom.Error())
	}
}
