package tooltip

import (
	"errors"
	"strings"

	tterrors "github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/symbol"
)

var (
	// ErrUnknownStrategy is returned when the state names a strategy that
	// is not registered and no formatter is set.
	ErrUnknownStrategy = errors.New("tooltip: unknown strategy")

	// ErrMalformedDescriptor is returned when a strategy or formatter
	// produces a value that is not a deferred renderer, a structured
	// descriptor or a sequence of rows.
	ErrMalformedDescriptor = errors.New("tooltip: malformed content descriptor")

	// ErrUnknownShape is reported for icon cells naming an unregistered shape.
	ErrUnknownShape = symbol.ErrUnknownShape
)

func unknownStrategyError(name string, known []string) error {
	return tterrors.New("T001").
		WithDetailf("strategy %q is not registered", name).
		WithSuggestion("Register the strategy, set a formatter, or use one of: " + strings.Join(known, ", ")).
		Wrap(ErrUnknownStrategy)
}

func malformedError(format string, args ...any) error {
	return tterrors.New("T002").
		WithDetailf(format, args...).
		WithSuggestion("Return a func() string, a Structured descriptor, or a slice of rows").
		Wrap(ErrMalformedDescriptor)
}

func unknownShapeError(err error) error {
	return tterrors.New("T003").
		WithSuggestion("Use one of the registered shapes or pass a ShapeFunc").
		Wrap(err)
}
