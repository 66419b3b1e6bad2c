package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "config.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("config.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: config.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("typing_interval", "must be positive", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "typing_interval", validationErr.Field)
	require.Contains(t, err.Error(), "must be positive")
}

func TestRouteErrorListsKnownRoutes(t *testing.T) {
	t.Parallel()

	err := NewRouteError("/pricing", []string{"/", "/about"})

	var routeErr *RouteError
	require.ErrorAs(t, err, &routeErr)
	require.Equal(t, "/pricing", routeErr.Route)
	require.Contains(t, err.Error(), "/, /about")
}
