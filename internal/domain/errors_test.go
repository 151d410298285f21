package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/todolist-service/internal/domain"
)

func TestValidationError_UnwrapsToErrValidation(t *testing.T) {
	t.Parallel()

	var err error = &domain.ValidationError{Fields: map[string]string{"name": domain.MsgRequired}}

	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}

	wrapped := fmt.Errorf("creating list: %w", err)
	var verr *domain.ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatalf("errors.As(wrapped, *ValidationError) = false")
	}
	if verr.Fields["name"] != domain.MsgRequired {
		t.Errorf("Fields[name] = %q, want %q", verr.Fields["name"], domain.MsgRequired)
	}
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"name":                   "is required",
		"entries[0].description": "is required",
	}}

	want := "validation error: entries[0].description: is required; name: is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
