package doris

import (
	"strings"

	"github.com/git-hulk/doris/column_json"
)

// ArrayType is a variable-length list of elements of one nested type.
type ArrayType struct {
	nested LogicalType
}

// NewArrayType returns Array(nested).
func NewArrayType(nested LogicalType) *ArrayType {
	return &ArrayType{nested: nested}
}

func (t *ArrayType) Name() string                  { return "Array(" + t.nested.Name() + ")" }
func (t *ArrayType) Equals(other LogicalType) bool { return equalNames(t, other) }
func (t *ArrayType) IsNullable() bool              { return false }
func (t *ArrayType) Nested() LogicalType           { return t.nested }

func (t *ArrayType) CreateColumn() ColumnStore {
	return NewColumnArray(t.nested.CreateColumn())
}

// ToString renders the row as "[a, b, c]"; string elements are single-quoted.
func (t *ArrayType) ToString(col ColumnStore, row int) (string, error) {
	c, err := columnAt[*ColumnArray](t, col, row)
	if err != nil {
		return "", err
	}
	_, quote := RemoveNullable(t.nested).(*StringType)

	var sb strings.Builder
	sb.WriteByte('[')
	begin, end := c.RowBounds(row)
	for i := begin; i < end; i++ {
		if i > begin {
			sb.WriteString(", ")
		}
		s, err := t.nested.ToString(c.Data(), i)
		if err != nil {
			return "", err
		}
		if quote && !isNullAt(c.Data(), i) {
			sb.WriteByte('\'')
			sb.WriteString(s)
			sb.WriteByte('\'')
		} else {
			sb.WriteString(s)
		}
	}
	sb.WriteByte(']')
	return sb.String(), nil
}

func (t *ArrayType) ToColumnMeta(meta *column_json.ColumnMeta) {
	meta.Type = column_json.TypeIDList
	t.nested.ToColumnMeta(meta.AddChild())
}

func isNullAt(col ColumnStore, row int) bool {
	n, ok := col.(*ColumnNullable)
	return ok && n.IsNullAt(row)
}

// NullableType composes a base type with a per-row null indicator.
type NullableType struct {
	nested LogicalType
}

// NewNullableType returns Nullable(nested). Use MakeNullable to avoid
// wrapping a type that is already nullable.
func NewNullableType(nested LogicalType) *NullableType {
	return &NullableType{nested: nested}
}

func (t *NullableType) Name() string                  { return "Nullable(" + t.nested.Name() + ")" }
func (t *NullableType) Equals(other LogicalType) bool { return equalNames(t, other) }
func (t *NullableType) IsNullable() bool              { return true }
func (t *NullableType) Nested() LogicalType           { return t.nested }

func (t *NullableType) CreateColumn() ColumnStore {
	return NewColumnNullable(t.nested.CreateColumn())
}

func (t *NullableType) ToString(col ColumnStore, row int) (string, error) {
	c, err := columnAt[*ColumnNullable](t, col, row)
	if err != nil {
		return "", err
	}
	if c.IsNullAt(row) {
		return "NULL", nil
	}
	return t.nested.ToString(c.Nested(), row)
}

func (t *NullableType) ToColumnMeta(meta *column_json.ColumnMeta) {
	t.nested.ToColumnMeta(meta)
	meta.IsNullable = true
}
