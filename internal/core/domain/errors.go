package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a provider or store has no record for an id.
	ErrNotFound = errors.New("domain: not found")

	// ErrUnknownIntent is returned when an event names an intent no handler serves.
	ErrUnknownIntent = errors.New("domain: unknown intent")

	// ErrMalformedProviderResponse indicates a provider payload missing required fields.
	ErrMalformedProviderResponse = errors.New("domain: malformed provider response")
)

// MalformedProviderResponseError provides context for a payload that failed
// validation at the provider boundary.
type MalformedProviderResponseError struct {
	Provider string
	Field    string
}

func (e *MalformedProviderResponseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Provider, ErrMalformedProviderResponse.Error())
	}
	return fmt.Sprintf("%s: malformed provider response: missing or invalid %q", e.Provider, e.Field)
}

func (e *MalformedProviderResponseError) Is(target error) bool {
	return target == ErrMalformedProviderResponse
}
