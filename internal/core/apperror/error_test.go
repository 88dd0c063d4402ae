package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCodesMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{NewInvalidQuantity(-1), CodeInvalidQuantity, http.StatusBadRequest},
		{NewUnknownReference("product", "x"), CodeUnknownReference, http.StatusUnprocessableEntity},
		{NewInsufficientStock("p", 5, 3), CodeInsufficientStock, http.StatusUnprocessableEntity},
		{NewStorageFailure(errors.New("conn refused")), CodeStorageFailure, http.StatusServiceUnavailable},
		{NewNotFound("product", "x"), CodeNotFound, http.StatusNotFound},
		{NewDuplicate("product", "sku", "SKU-1"), CodeDuplicate, http.StatusConflict},
		{NewValidation("bad input"), CodeValidation, http.StatusBadRequest},
	}

	for _, tt := range tests {
		if tt.err.Code != tt.wantCode {
			t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
		}
		if tt.err.HTTPStatus != tt.wantStatus {
			t.Errorf("%s: expected status %d, got %d", tt.wantCode, tt.wantStatus, tt.err.HTTPStatus)
		}
	}
}

func TestWrap(t *testing.T) {
	// nil passes through
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) must be nil")
	}

	// AppError passes through unchanged, even wrapped
	orig := NewInvalidQuantity(0)
	wrapped := fmt.Errorf("submit order: %w", orig)
	got := Wrap(wrapped)
	if got.Code != CodeInvalidQuantity {
		t.Errorf("expected AppError to pass through, got %s", got.Code)
	}

	// Plain errors become retryable storage failures
	got = Wrap(errors.New("connection reset"))
	if got.Code != CodeStorageFailure || got.HTTPStatus != http.StatusServiceUnavailable {
		t.Errorf("expected storage failure 503, got %s %d", got.Code, got.HTTPStatus)
	}
}

func TestGetHTTPStatus_UnknownError(t *testing.T) {
	if got := GetHTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Errorf("expected 500 for unknown error, got %d", got)
	}
}

func TestInsufficientStockDetails(t *testing.T) {
	err := NewInsufficientStock("prod-1", 5, 3)

	if err.Details["requested"] != int64(5) {
		t.Errorf("expected requested=5, got %v", err.Details["requested"])
	}
	if err.Details["available"] != int64(3) {
		t.Errorf("expected available=3, got %v", err.Details["available"])
	}
	if !IsInsufficientStock(err) {
		t.Error("IsInsufficientStock must detect its own error")
	}
}

func TestWithDetailAndCause(t *testing.T) {
	cause := errors.New("underlying")
	err := NewValidation("bad").WithDetail("field", "sku").WithCause(cause)

	if err.Details["field"] != "sku" {
		t.Errorf("expected field detail, got %v", err.Details)
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap must expose the cause")
	}
}
