package navigation

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to errors raised by this package.
const (
	TextCodeInvalidState   = "INVALID_NAVIGATION_STATE"
	TextCodeInvalidConfig  = "INVALID_PATH_CONFIG"
	TextCodeUnmatchedRoute = "UNMATCHED_ROUTE"
)

func newInvalidStateError(message string) error {
	return goerrors.New(message, goerrors.CategoryValidation).
		WithTextCode(TextCodeInvalidState)
}

func newConfigError(message string, metadata map[string]any) error {
	err := goerrors.New(message, goerrors.CategoryValidation).
		WithTextCode(TextCodeInvalidConfig)
	if metadata != nil {
		err = err.WithMetadata(metadata)
	}
	return err
}

func newUnmatchedRouteError(name string) error {
	message := fmt.Sprintf("could not resolve a path configuration for route %q", name)
	return goerrors.New(message, goerrors.CategoryRouting).
		WithTextCode(TextCodeUnmatchedRoute).
		WithMetadata(map[string]any{"route": name})
}
