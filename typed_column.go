package doris

import (
	"fmt"
	"io"
	"strings"

	"github.com/git-hulk/doris/column_json"
)

const (
	anonymousColumnMarker = "[Anonymous Column]"
	nilMarker             = "nil"
)

// TypedColumn is the (name, type, column) unit exchanged between operators;
// a row batch is a slice of them.
//
// Type is shared and immutable. Column is owned by the TypedColumn and may be
// nil for schema-only values. When both are present, Column is expected to be
// of Type's physical kind; this is not checked.
type TypedColumn struct {
	Name   string
	Type   LogicalType
	Column ColumnStore
}

// NewTypedColumn returns a TypedColumn with an empty column created by t.
func NewTypedColumn(name string, t LogicalType) TypedColumn {
	return TypedColumn{Name: name, Type: t, Column: t.CreateColumn()}
}

// CloneEmpty returns a schema-only copy: same name, the same shared type, and
// an empty clone of the column if there is one.
func (c TypedColumn) CloneEmpty() TypedColumn {
	res := TypedColumn{Name: c.Name, Type: c.Type}
	if c.Column != nil {
		res.Column = c.Column.CloneEmpty()
	}
	return res
}

// Equals compares names, types structurally, and column kinds. Row contents
// are never compared.
func (c TypedColumn) Equals(other TypedColumn) bool {
	if c.Name != other.Name {
		return false
	}
	switch {
	case c.Type == nil && other.Type == nil:
	case c.Type != nil && other.Type != nil && c.Type.Equals(other.Type):
	default:
		return false
	}
	switch {
	case c.Column == nil && other.Column == nil:
		return true
	case c.Column != nil && other.Column != nil:
		return c.Column.Name() == other.Column.Name()
	default:
		return false
	}
}

// WriteStructure writes "<name> <type> <column structure>" to w, substituting
// markers for an empty name and for an absent type or column.
func (c TypedColumn) WriteStructure(w io.Writer) error {
	name := c.Name
	if name == "" {
		name = anonymousColumnMarker
	}
	typeName := nilMarker
	if c.Type != nil {
		typeName = c.Type.Name()
	}
	columnDump := nilMarker
	if c.Column != nil {
		columnDump = c.Column.DumpStructure()
	}
	_, err := fmt.Fprintf(w, "%s %s %s", name, typeName, columnDump)
	return err
}

// DumpStructure returns the WriteStructure output as a string.
func (c TypedColumn) DumpStructure() string {
	var sb strings.Builder
	_ = c.WriteStructure(&sb)
	return sb.String()
}

// ToString formats the value at row, materializing a constant column first.
// Both Type and Column must be present.
func (c TypedColumn) ToString(row int) (string, error) {
	if c.Type == nil || c.Column == nil {
		return "", fmt.Errorf("%w: ToString on column %q needs both a type and a column", ErrPrecondition, c.Name)
	}
	return c.Type.ToString(c.Column.ConvertToFullColumnIfConst(), row)
}

// ToColumnMeta overwrites meta with the column name and its type descriptor.
// It is the only path from a runtime column to wire metadata, so a record can
// be reused across columns.
func (c TypedColumn) ToColumnMeta(meta *column_json.ColumnMeta) error {
	if c.Type == nil {
		return fmt.Errorf("%w: ToColumnMeta on column %q without a type", ErrPrecondition, c.Name)
	}
	if meta == nil {
		return fmt.Errorf("%w: ToColumnMeta on column %q into a nil record", ErrPrecondition, c.Name)
	}
	*meta = column_json.ColumnMeta{Name: c.Name}
	c.Type.ToColumnMeta(meta)
	return nil
}
