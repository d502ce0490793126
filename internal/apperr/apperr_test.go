package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusPerKind(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{UnsupportedRegion("international shipping not available"), http.StatusBadRequest},
		{NotFound("order not found"), http.StatusNotFound},
		{Upstream("commerce order create", errors.New("boom")), http.StatusBadGateway},
		{Payment("gateway order create", errors.New("boom")), http.StatusInternalServerError},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := c.err.HTTPStatus(); got != c.status {
			t.Fatalf("code %s: expected status %d, got %d", c.err.Code, c.status, got)
		}
	}
}

func TestFromUnwrapsThroughChain(t *testing.T) {
	cause := Upstream("commerce order read", errors.New("timeout"))
	wrapped := fmt.Errorf("fetch order: %w", cause)

	got := From(wrapped)
	if got.Kind != KindUpstream {
		t.Fatalf("expected upstream kind, got %v", got.Kind)
	}
	if got.Code != "upstream_error" {
		t.Fatalf("unexpected code %q", got.Code)
	}
}

func TestFromUncategorizedBecomesInternal(t *testing.T) {
	got := From(errors.New("something odd"))
	if got.Kind != KindInternal {
		t.Fatalf("expected internal kind, got %v", got.Kind)
	}
	if got.HTTPStatus() != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got.HTTPStatus())
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("resolve rates: %w", Validation("empty cart"))
	if !IsKind(err, KindValidation) {
		t.Fatal("expected validation kind through wrapping")
	}
	if IsKind(err, KindUpstream) {
		t.Fatal("did not expect upstream kind")
	}
}

func TestUnsupportedRegionCode(t *testing.T) {
	err := UnsupportedRegion("we only ship domestically")
	if err.Code != "unsupported_region" {
		t.Fatalf("unexpected code %q", err.Code)
	}
	if err.Kind != KindValidation {
		t.Fatalf("expected validation kind, got %v", err.Kind)
	}
}
