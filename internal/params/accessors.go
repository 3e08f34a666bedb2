package params

import (
	"errors"
	"fmt"

	"github.com/flowline-labs/nodekit/internal/core/ports/driven"
)

// ErrInvalidType indicates a parameter exists but holds a value of the wrong
// type. Kept distinct from domain.ErrParameterNotFound so callers can tell a
// missing parameter from a misconfigured one.
var ErrInvalidType = errors.New("params: invalid parameter type")

// String reads a string parameter.
func String(store driven.ParameterStore, name string, itemIndex int) (string, error) {
	val, err := store.GetParameter(name, itemIndex)
	if err != nil {
		return "", err
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is %T, want string", ErrInvalidType, name, val)
	}
	return s, nil
}

// StringOr reads a string parameter, returning def when the parameter is
// absent or not a string.
func StringOr(store driven.ParameterStore, name string, itemIndex int, def string) string {
	s, err := String(store, name, itemIndex)
	if err != nil {
		return def
	}
	return s
}

// Bool reads a boolean parameter.
func Bool(store driven.ParameterStore, name string, itemIndex int) (bool, error) {
	val, err := store.GetParameter(name, itemIndex)
	if err != nil {
		return false, err
	}
	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q is %T, want bool", ErrInvalidType, name, val)
	}
	return b, nil
}

// BoolOr reads a boolean parameter, returning def when the parameter is
// absent or not a boolean.
func BoolOr(store driven.ParameterStore, name string, itemIndex int, def bool) bool {
	b, err := Bool(store, name, itemIndex)
	if err != nil {
		return def
	}
	return b
}

// Int reads an integer parameter. TOML and JSON decoders produce int64 and
// float64 respectively, so both are accepted.
func Int(store driven.ParameterStore, name string, itemIndex int) (int, error) {
	val, err := store.GetParameter(name, itemIndex)
	if err != nil {
		return 0, err
	}
	switch n := val.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %q is %T, want integer", ErrInvalidType, name, val)
	}
}

// IntOr reads an integer parameter, returning def when the parameter is
// absent or not an integer.
func IntOr(store driven.ParameterStore, name string, itemIndex int, def int) int {
	n, err := Int(store, name, itemIndex)
	if err != nil {
		return def
	}
	return n
}
