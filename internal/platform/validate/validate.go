// Package validate holds the field-level checks shared by every entity.
// Checks are purely structural: they trim, bound and pattern-match single
// fields and never consult the store, so duplicates and dangling
// references are out of their reach.
package validate

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Error reports a single field-contract violation.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return e.Field + ": " + e.Reason
}

func errf(field, format string, args ...any) *Error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// namePattern admits letters (accented Latin and ñ/Ñ included), spaces,
// hyphens and apostrophes.
var namePattern = regexp.MustCompile(`^[\p{L}' -]+$`)

// Required trims v and enforces presence plus the min/max length bounds.
// The trimmed value is returned so callers persist the stripped form.
func Required(field, v string, min, max int) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", errf(field, "es requerido")
	}
	if n := len([]rune(v)); n < min {
		return "", errf(field, "longitud mínima %d caracteres", min)
	} else if n > max {
		return "", errf(field, "longitud máxima %d caracteres", max)
	}
	return v, nil
}

// Optional trims v when present and enforces the max length bound. Absence
// is valid.
func Optional(field string, v *string, max int) (*string, error) {
	if v == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*v)
	if len([]rune(trimmed)) > max {
		return nil, errf(field, "longitud máxima %d caracteres", max)
	}
	return &trimmed, nil
}

// Name applies Required and additionally restricts the character set to
// letters, spaces, hyphens and apostrophes.
func Name(field, v string, min, max int) (string, error) {
	trimmed, err := Required(field, v, min, max)
	if err != nil {
		return "", err
	}
	if !namePattern.MatchString(trimmed) {
		return "", errf(field, "solo se permiten letras, espacios, guiones y apóstrofes")
	}
	return trimmed, nil
}

// PositiveRef enforces that a foreign-key field is a strictly positive
// integer. Whether the referenced record exists is not checked.
func PositiveRef(field string, v int) error {
	if v <= 0 {
		return errf(field, "debe ser un entero positivo")
	}
	return nil
}

// StringValue coerces a dynamic payload value to string, for partial
// updates where fields arrive untyped.
func StringValue(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errf(field, "debe ser una cadena")
	}
	return s, nil
}

// RequiredField checks a required string field inside a dynamic payload,
// writing the trimmed value back so the stripped form is persisted. An
// explicit null is rejected; required fields cannot be cleared.
func RequiredField(fields map[string]any, name string, max int) error {
	if fields[name] == nil {
		return errf(name, "es requerido")
	}
	s, err := StringValue(name, fields[name])
	if err != nil {
		return err
	}
	trimmed, err := Required(name, s, 1, max)
	if err != nil {
		return err
	}
	fields[name] = trimmed
	return nil
}

// OptionalField checks an optional string field inside a dynamic payload.
// An explicit null is valid and clears the stored value.
func OptionalField(fields map[string]any, name string, max int) error {
	if fields[name] == nil {
		return nil
	}
	s, err := StringValue(name, fields[name])
	if err != nil {
		return err
	}
	trimmed, err := Optional(name, &s, max)
	if err != nil {
		return err
	}
	fields[name] = *trimmed
	return nil
}

// NameField checks a name field inside a dynamic payload. Names are
// required, so an explicit null is rejected.
func NameField(fields map[string]any, name string, min, max int) error {
	if fields[name] == nil {
		return errf(name, "es requerido")
	}
	s, err := StringValue(name, fields[name])
	if err != nil {
		return err
	}
	trimmed, err := Name(name, s, min, max)
	if err != nil {
		return err
	}
	fields[name] = trimmed
	return nil
}

// RefField checks a reference-id field inside a dynamic payload,
// normalizing the JSON float to an int.
func RefField(fields map[string]any, name string) error {
	n, err := RefValue(name, fields[name])
	if err != nil {
		return err
	}
	fields[name] = n
	return nil
}

// RefValue coerces a dynamic payload value to a strictly positive integer.
// JSON numbers decode as float64, so integral floats are accepted.
func RefValue(field string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		if err := PositiveRef(field, n); err != nil {
			return 0, err
		}
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, errf(field, "debe ser un entero positivo")
		}
		i := int(n)
		if err := PositiveRef(field, i); err != nil {
			return 0, err
		}
		return i, nil
	default:
		return 0, errf(field, "debe ser un entero positivo")
	}
}
