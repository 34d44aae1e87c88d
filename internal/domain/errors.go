package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrStatNotFound       = errors.New("monthly stat not found")
	ErrDuplicatePeriod    = errors.New("monthly stat already exists for period")
	ErrProfileUnavailable = errors.New("steam profile unavailable")
	ErrInvalidSteamID     = errors.New("invalid steam id")
	ErrPlayerExists       = errors.New("player already exists")
)

// ValidationError holds user-correctable problems keyed by form field.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) Has(field string) bool {
	return len(e.Fields[field]) > 0
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// OrNil returns nil when no field failed so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}
