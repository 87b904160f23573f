package validators

import (
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/vitrum-studio/vitrum-backend/pkg/errors"
)

func TestParseQueryInt64(t *testing.T) {
	r := httptest.NewRequest("GET", "/?package_id=42", nil)
	value, err := ParseQueryInt64(r, "package_id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != 42 {
		t.Fatalf("expected 42, got %d", value)
	}
}

func TestParseQueryInt64_Missing(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	_, err := ParseQueryInt64(r, "package_id")
	if err == nil {
		t.Fatal("expected error for missing parameter")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryInt64_NotNumeric(t *testing.T) {
	r := httptest.NewRequest("GET", "/?package_id=abc", nil)
	_, err := ParseQueryInt64(r, "package_id")
	if err == nil {
		t.Fatal("expected error for non-numeric parameter")
	}
}

func TestParseQueryBool(t *testing.T) {
	r := httptest.NewRequest("GET", "/?active_only=true&with_components=1", nil)
	if !ParseQueryBool(r, "active_only") {
		t.Fatal("expected active_only to parse as true")
	}
	if ParseQueryBool(r, "with_components") {
		t.Fatal("only the literal true switches the flag on")
	}
	if ParseQueryBool(r, "missing") {
		t.Fatal("missing parameter should be false")
	}
}
