package doris

import (
	"fmt"

	"github.com/git-hulk/doris/column_json"
)

// LogicalType describes the logical kind of a value: how it compares, how it
// renders as text, and how it is written into wire metadata.
//
// Types are immutable and shared by pointer between goroutines. Equality is
// structural: Name is the full structural signature of the type, so two types
// are equal exactly when their names are.
type LogicalType interface {
	// Name returns the structural signature, e.g. "Array(Nullable(Int32))".
	Name() string

	// Equals reports structural equality.
	Equals(other LogicalType) bool

	// IsNullable reports whether the type is a Nullable wrapper.
	IsNullable() bool

	// ToString formats the value at row. col must be a materialized (not
	// constant) column of the type's physical kind.
	ToString(col ColumnStore, row int) (string, error)

	// ToColumnMeta writes the type descriptor, recursively, into meta. Fields
	// the type does not own are left as they are; TypedColumn.ToColumnMeta
	// clears the record first.
	ToColumnMeta(meta *column_json.ColumnMeta)

	// CreateColumn returns an empty column matching the type.
	CreateColumn() ColumnStore
}

func equalNames(t LogicalType, other LogicalType) bool {
	return other != nil && t.Name() == other.Name()
}

// MakeNullable wraps t in Nullable unless it already is nullable.
func MakeNullable(t LogicalType) LogicalType {
	if t.IsNullable() {
		return t
	}
	return NewNullableType(t)
}

// RemoveNullable returns the base of a Nullable type, or t itself.
func RemoveNullable(t LogicalType) LogicalType {
	if n, ok := t.(*NullableType); ok {
		return n.Nested()
	}
	return t
}

// columnAt checks the ToString preconditions and returns col as C.
func columnAt[C ColumnStore](t LogicalType, col ColumnStore, row int) (C, error) {
	var zero C
	if col == nil {
		return zero, fmt.Errorf("%w: %s.ToString on a nil column", ErrPrecondition, t.Name())
	}
	if col.IsConst() {
		return zero, fmt.Errorf("%w: %s.ToString on constant column %s, materialize it first",
			ErrPrecondition, t.Name(), col.Name())
	}
	c, ok := col.(C)
	if !ok {
		return zero, fmt.Errorf("%w: %s cannot read column %s", ErrColumnMismatch, t.Name(), col.Name())
	}
	if row < 0 || row >= col.Len() {
		return zero, fmt.Errorf("%w: row %d of %d", ErrRowOutOfRange, row, col.Len())
	}
	return c, nil
}

// NothingType is the type of values that are never known, such as a bare NULL literal.
type NothingType struct{}

var nothingType = &NothingType{}

// NewNothingType returns the shared Nothing type.
func NewNothingType() *NothingType { return nothingType }

func (t *NothingType) Name() string                  { return "Nothing" }
func (t *NothingType) Equals(other LogicalType) bool { return equalNames(t, other) }
func (t *NothingType) IsNullable() bool              { return false }
func (t *NothingType) CreateColumn() ColumnStore     { return &ColumnNothing{} }

func (t *NothingType) ToString(col ColumnStore, row int) (string, error) {
	if _, err := columnAt[*ColumnNothing](t, col, row); err != nil {
		return "", err
	}
	return "NULL", nil
}

func (t *NothingType) ToColumnMeta(meta *column_json.ColumnMeta) {
	meta.Type = column_json.TypeIDNothing
}
