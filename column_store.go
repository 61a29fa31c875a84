package doris

import (
	"fmt"
	"strings"
)

// ColumnStore is a mutable, per-batch container of the rows of one physical
// kind. It does not know its LogicalType; Name is a cheap tag for the concrete
// kind and is what TypedColumn compares.
//
// A ColumnStore is owned by one operator at a time and is not safe for
// concurrent mutation.
type ColumnStore interface {
	// Name identifies the concrete kind, e.g. "Int32" or "Nullable(String)".
	Name() string

	// Len returns the number of rows.
	Len() int

	// CloneEmpty returns a new column of the same concrete kind with zero rows
	// and storage independent of the receiver.
	CloneEmpty() ColumnStore

	// IsConst reports whether the column is a constant column.
	IsConst() bool

	// ConvertToFullColumnIfConst materializes a constant column into a dense
	// column holding the value once per row. Other columns return themselves.
	ConvertToFullColumnIfConst() ColumnStore

	// InsertDefault appends the default value of the kind.
	InsertDefault()

	// InsertRangeFrom appends length rows of src starting at start. src must be
	// of the same concrete kind; a mismatch or an out-of-range slice panics, as
	// it is a programming error rather than a data condition.
	InsertRangeFrom(src ColumnStore, start, length int)

	// DumpStructure describes the column and its sub-columns with their sizes.
	DumpStructure() string
}

// Element is the set of fixed-width values a ColumnVector can hold.
type Element interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64 | Int128
}

func elementName[T Element]() string {
	var zero T
	switch any(zero).(type) {
	case int8:
		return "Int8"
	case int16:
		return "Int16"
	case int32:
		return "Int32"
	case int64:
		return "Int64"
	case uint8:
		return "UInt8"
	case uint16:
		return "UInt16"
	case uint32:
		return "UInt32"
	case uint64:
		return "UInt64"
	case float32:
		return "Float32"
	case float64:
		return "Float64"
	default:
		return "Int128"
	}
}

func dumpStructure(kind string, size int, children ...ColumnStore) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(size = %d", kind, size)
	for _, c := range children {
		sb.WriteString(", ")
		sb.WriteString(c.DumpStructure())
	}
	sb.WriteByte(')')
	return sb.String()
}

func mustSameKind[C ColumnStore](dst, src ColumnStore) C {
	c, ok := src.(C)
	if !ok || src.Name() != dst.Name() {
		panic(fmt.Sprintf("doris: cannot insert from %s into %s", src.Name(), dst.Name()))
	}
	return c
}

// --- ColumnVector ---

// ColumnVector is a dense column of fixed-width values.
type ColumnVector[T Element] struct {
	data []T
}

var _ ColumnStore = (*ColumnVector[int32])(nil)

// NewColumnVector returns an empty vector, optionally seeded with values.
func NewColumnVector[T Element](values ...T) *ColumnVector[T] {
	c := &ColumnVector[T]{}
	c.data = append(c.data, values...)
	return c
}

func (c *ColumnVector[T]) Name() string { return elementName[T]() }
func (c *ColumnVector[T]) Len() int     { return len(c.data) }
func (c *ColumnVector[T]) IsConst() bool {
	return false
}

func (c *ColumnVector[T]) CloneEmpty() ColumnStore {
	return &ColumnVector[T]{}
}

func (c *ColumnVector[T]) ConvertToFullColumnIfConst() ColumnStore { return c }

func (c *ColumnVector[T]) InsertDefault() {
	var zero T
	c.data = append(c.data, zero)
}

func (c *ColumnVector[T]) InsertRangeFrom(src ColumnStore, start, length int) {
	s := mustSameKind[*ColumnVector[T]](c, src)
	c.data = append(c.data, s.data[start:start+length]...)
}

func (c *ColumnVector[T]) DumpStructure() string {
	return dumpStructure(c.Name(), c.Len())
}

// Append adds values at the end of the column.
func (c *ColumnVector[T]) Append(values ...T) {
	c.data = append(c.data, values...)
}

// Get returns the value at row i.
func (c *ColumnVector[T]) Get(i int) T {
	return c.data[i]
}

// Data exposes the backing slice. Callers must not retain it across appends.
func (c *ColumnVector[T]) Data() []T {
	return c.data
}

// --- ColumnDecimal ---

// ColumnDecimal stores unscaled 128-bit decimal values sharing one scale.
type ColumnDecimal struct {
	data  []Int128
	scale int32
}

var _ ColumnStore = (*ColumnDecimal)(nil)

// NewColumnDecimal returns an empty decimal column with the given scale.
func NewColumnDecimal(scale int32) *ColumnDecimal {
	return &ColumnDecimal{scale: scale}
}

func (c *ColumnDecimal) Name() string  { return "Decimal128" }
func (c *ColumnDecimal) Len() int      { return len(c.data) }
func (c *ColumnDecimal) IsConst() bool { return false }
func (c *ColumnDecimal) Scale() int32  { return c.scale }

func (c *ColumnDecimal) CloneEmpty() ColumnStore {
	return &ColumnDecimal{scale: c.scale}
}

func (c *ColumnDecimal) ConvertToFullColumnIfConst() ColumnStore { return c }

func (c *ColumnDecimal) InsertDefault() {
	c.data = append(c.data, Int128{})
}

func (c *ColumnDecimal) InsertRangeFrom(src ColumnStore, start, length int) {
	s := mustSameKind[*ColumnDecimal](c, src)
	c.data = append(c.data, s.data[start:start+length]...)
}

func (c *ColumnDecimal) DumpStructure() string {
	return dumpStructure(c.Name(), c.Len())
}

// Append adds unscaled values.
func (c *ColumnDecimal) Append(values ...Int128) {
	c.data = append(c.data, values...)
}

// Get returns the unscaled value at row i.
func (c *ColumnDecimal) Get(i int) Int128 {
	return c.data[i]
}

// --- ColumnString ---

// ColumnString stores variable-length values back to back in chars; offsets[i]
// is the end of row i.
type ColumnString struct {
	chars   []byte
	offsets []int
}

var _ ColumnStore = (*ColumnString)(nil)

// NewColumnString returns a string column seeded with values.
func NewColumnString(values ...string) *ColumnString {
	c := &ColumnString{}
	c.Append(values...)
	return c
}

func (c *ColumnString) Name() string  { return "String" }
func (c *ColumnString) Len() int      { return len(c.offsets) }
func (c *ColumnString) IsConst() bool { return false }

func (c *ColumnString) CloneEmpty() ColumnStore { return &ColumnString{} }

func (c *ColumnString) ConvertToFullColumnIfConst() ColumnStore { return c }

func (c *ColumnString) InsertDefault() {
	c.offsets = append(c.offsets, len(c.chars))
}

func (c *ColumnString) InsertRangeFrom(src ColumnStore, start, length int) {
	s := mustSameKind[*ColumnString](c, src)
	for i := start; i < start+length; i++ {
		c.Append(s.Get(i))
	}
}

func (c *ColumnString) DumpStructure() string {
	return dumpStructure(c.Name(), c.Len())
}

// Append adds values at the end of the column.
func (c *ColumnString) Append(values ...string) {
	for _, v := range values {
		c.chars = append(c.chars, v...)
		c.offsets = append(c.offsets, len(c.chars))
	}
}

// Get returns the value at row i.
func (c *ColumnString) Get(i int) string {
	begin := 0
	if i > 0 {
		begin = c.offsets[i-1]
	}
	return string(c.chars[begin:c.offsets[i]])
}
