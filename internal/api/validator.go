package api

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "modelarena/internal/errors"
)

// This file provides a centralized, singleton-based validation helper for API request bodies.
// Using a singleton for the validator is a performance best practice, as it avoids
// the costly process of recreating the validator instance on every request.

var (
	// validate holds the single instance of the validator.
	validate *validator.Validate
	// once ensures that the validator is initialized only one time.
	once sync.Once
)

// getInstance uses sync.Once to safely initialize and return the validator singleton.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
	})
	return validate
}

// validateRequest checks a given payload struct against the validation rules
// defined in its field tags (e.g., `validate:"required,min=1"`). Failures on
// fields inside the message list map to ErrInvalidMessage; everything else,
// like a missing conversation or an oversized model list, maps to
// ErrInvalidRequest. Validation is pure and always runs before any upstream
// call is attempted.
func validateRequest(payload interface{}) error {
	v := getInstance()
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", apperrors.ErrInvalidRequest, err.Error())
	}

	sentinel := apperrors.ErrInvalidRequest
	var errorMessages []string
	for _, fieldErr := range validationErrors {
		// A failure on Messages[i].Role or Messages[i].Content is a
		// message-level problem, not a request-shape problem.
		if strings.Contains(fieldErr.Namespace(), "Messages[") {
			sentinel = apperrors.ErrInvalidMessage
		}
		errMsg := fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag())
		errorMessages = append(errorMessages, errMsg)
	}

	return fmt.Errorf("%w: %s", sentinel, strings.Join(errorMessages, "; "))
}
