package dto

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestHandleValidationErrorListsFields(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding") // same tag the HTTP layer validates
	err := v.Struct(RegisterRequest{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected a validation failure")
	}

	detail := HandleValidationError(err)
	if detail.Code != ErrorCodeValidationFailed {
		t.Errorf("code = %s", detail.Code)
	}

	messages, ok := detail.Details.([]string)
	if !ok {
		t.Fatalf("details should be field messages, got %T", detail.Details)
	}
	joined := strings.Join(messages, "; ")
	if !strings.Contains(joined, "Email") || !strings.Contains(joined, "Password") {
		t.Errorf("messages should name both failing fields, got %q", joined)
	}
}

func TestHandleValidationErrorNonFieldError(t *testing.T) {
	detail := HandleValidationError(errors.New("unexpected EOF"))
	if detail.Code != ErrorCodeValidationFailed {
		t.Errorf("code = %s", detail.Code)
	}
	if detail.Details != "unexpected EOF" {
		t.Errorf("details = %v", detail.Details)
	}
}
