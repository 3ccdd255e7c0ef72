package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewDomainError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)

	if err.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected default 500, got %d", err.HTTPStatus)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected error to unwrap to cause")
	}
	if err.Error() != "INTERNAL_ERROR: An internal error occurred: disk full" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestNewDomainErrorSimple_ToHTTPError(t *testing.T) {
	err := NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work Order Not Found", http.StatusNotFound)
	if err.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", err.HTTPStatus)
	}
	body := err.ToHTTPError()
	if body.Code != "WORK_ORDER_NOT_FOUND" || body.Message != "Work Order Not Found" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if err.Error() != "WORK_ORDER_NOT_FOUND: Work Order Not Found" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
