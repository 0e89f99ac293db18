// Package dates coerces the date and date-time forms accepted on the wire
// into the single representation the store holds.
package dates

import (
	"errors"
	"time"
)

// ErrInvalidFormat is returned when a value matches none of the accepted
// date forms.
var ErrInvalidFormat = errors.New("formato de fecha inválido")

// Layouts tried in order for string input. ISO-8601 forms first, then the
// DD/MM/YYYY forms common in the clinic's locale.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
}

// Normalize coerces v into a date-time. A time.Time passes through
// unchanged (a calendar date is already midnight). Strings are parsed
// against the accepted layouts, first match wins; date-only layouts yield
// midnight UTC. Anything else fails with ErrInvalidFormat.
func Normalize(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		for _, layout := range layouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, nil
			}
		}
		return time.Time{}, ErrInvalidFormat
	default:
		return time.Time{}, ErrInvalidFormat
	}
}

// Canonical renders t in the stored representation: RFC3339 in UTC. The
// store holds plain strings, so every accepted input form funnels through
// here before persistence.
func Canonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// NormalizeString is the common Normalize-then-Canonical path for values
// arriving from JSON payloads.
func NormalizeString(v any) (string, error) {
	t, err := Normalize(v)
	if err != nil {
		return "", err
	}
	return Canonical(t), nil
}
