package doris

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	// ErrUnsupportedType indicates a descriptor kind that has no logical type.
	ErrUnsupportedType = errors.New("doris: unsupported type")
	// ErrPrecondition indicates a caller broke an operation's precondition,
	// such as formatting a row of a column that is absent or still constant.
	ErrPrecondition = errors.New("doris: precondition violated")
	// ErrColumnMismatch indicates a column whose physical kind does not match the type.
	ErrColumnMismatch = errors.New("doris: column does not match type")
	// ErrRowOutOfRange indicates a row index outside the column.
	ErrRowOutOfRange = errors.New("doris: row out of range")
)

// TypeError is returned by the conversion entry points of TypeRegistry when a
// descriptor cannot be turned into a LogicalType.
type TypeError struct {
	// Descriptor names the descriptor shape, e.g. "field", "arrow".
	Descriptor string

	// Kind is the offending kind as the descriptor spells it.
	Kind string

	// Err is the underlying cause, usually ErrUnsupportedType.
	Err error
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	if e == nil {
		return "nil TypeError"
	}
	return fmt.Sprintf("%s descriptor %s: %v", e.Descriptor, e.Kind, e.Err)
}

// Unwrap returns the underlying cause so errors.Is can match the sentinels.
func (e *TypeError) Unwrap() error {
	return e.Err
}

func unsupported(descriptor string, kind fmt.Stringer) error {
	log.Debug().Str("descriptor", descriptor).Str("kind", kind.String()).Msg("unsupported type in descriptor")
	return &TypeError{Descriptor: descriptor, Kind: kind.String(), Err: ErrUnsupportedType}
}

func invalidDescriptor(descriptor, kind string, err error) error {
	return &TypeError{Descriptor: descriptor, Kind: kind, Err: err}
}
