package doris

import "fmt"

// --- ColumnArray ---

// ColumnArray stores the elements of all rows in one data column; offsets[i]
// is the end of row i in data.
type ColumnArray struct {
	data    ColumnStore
	offsets []int
}

var _ ColumnStore = (*ColumnArray)(nil)

// NewColumnArray returns an empty array column over an empty element column.
func NewColumnArray(data ColumnStore) *ColumnArray {
	return &ColumnArray{data: data}
}

func (c *ColumnArray) Name() string  { return "Array(" + c.data.Name() + ")" }
func (c *ColumnArray) Len() int      { return len(c.offsets) }
func (c *ColumnArray) IsConst() bool { return false }

func (c *ColumnArray) CloneEmpty() ColumnStore {
	return &ColumnArray{data: c.data.CloneEmpty()}
}

func (c *ColumnArray) ConvertToFullColumnIfConst() ColumnStore { return c }

func (c *ColumnArray) InsertDefault() {
	c.FinishRow()
}

func (c *ColumnArray) InsertRangeFrom(src ColumnStore, start, length int) {
	s := mustSameKind[*ColumnArray](c, src)
	for i := start; i < start+length; i++ {
		begin, end := s.RowBounds(i)
		c.data.InsertRangeFrom(s.data, begin, end-begin)
		c.FinishRow()
	}
}

func (c *ColumnArray) DumpStructure() string {
	return dumpStructure("Array", c.Len(), c.data)
}

// Data returns the element column. Append elements to it, then call FinishRow.
func (c *ColumnArray) Data() ColumnStore { return c.data }

// FinishRow closes the current row at the end of the element column.
func (c *ColumnArray) FinishRow() {
	c.offsets = append(c.offsets, c.data.Len())
}

// RowBounds returns the half-open element range of row i.
func (c *ColumnArray) RowBounds(i int) (begin, end int) {
	if i > 0 {
		begin = c.offsets[i-1]
	}
	return begin, c.offsets[i]
}

// --- ColumnNullable ---

// ColumnNullable pairs a nested column with a null map; nullMap[i] == 1 marks
// row i as NULL. Null rows still occupy a default value in the nested column.
type ColumnNullable struct {
	nested  ColumnStore
	nullMap []uint8
}

var _ ColumnStore = (*ColumnNullable)(nil)

// NewColumnNullable returns an empty nullable column over an empty nested column.
func NewColumnNullable(nested ColumnStore) *ColumnNullable {
	return &ColumnNullable{nested: nested}
}

func (c *ColumnNullable) Name() string  { return "Nullable(" + c.nested.Name() + ")" }
func (c *ColumnNullable) Len() int      { return len(c.nullMap) }
func (c *ColumnNullable) IsConst() bool { return false }

func (c *ColumnNullable) CloneEmpty() ColumnStore {
	return &ColumnNullable{nested: c.nested.CloneEmpty()}
}

func (c *ColumnNullable) ConvertToFullColumnIfConst() ColumnStore { return c }

// InsertDefault appends a NULL row.
func (c *ColumnNullable) InsertDefault() {
	c.AppendNull()
}

func (c *ColumnNullable) InsertRangeFrom(src ColumnStore, start, length int) {
	s := mustSameKind[*ColumnNullable](c, src)
	c.nested.InsertRangeFrom(s.nested, start, length)
	c.nullMap = append(c.nullMap, s.nullMap[start:start+length]...)
}

func (c *ColumnNullable) DumpStructure() string {
	return dumpStructure("Nullable", c.Len(), c.nested, NewColumnVector(c.nullMap...))
}

// Nested returns the value column.
func (c *ColumnNullable) Nested() ColumnStore { return c.nested }

// AppendNull appends a NULL row.
func (c *ColumnNullable) AppendNull() {
	c.nested.InsertDefault()
	c.nullMap = append(c.nullMap, 1)
}

// AppendNullFlag records the null flag of a row whose value the caller has
// already appended to Nested.
func (c *ColumnNullable) AppendNullFlag(isNull bool) {
	var flag uint8
	if isNull {
		flag = 1
	}
	c.nullMap = append(c.nullMap, flag)
}

// IsNullAt reports whether row i is NULL.
func (c *ColumnNullable) IsNullAt(i int) bool {
	return c.nullMap[i] != 0
}

// --- ColumnConst ---

// ColumnConst represents one value repeated over size rows without per-row storage.
type ColumnConst struct {
	data ColumnStore
	size int
}

var _ ColumnStore = (*ColumnConst)(nil)

// NewColumnConst wraps a single-row column as a constant over size rows.
func NewColumnConst(data ColumnStore, size int) (*ColumnConst, error) {
	if data == nil || data.Len() != 1 {
		return nil, fmt.Errorf("%w: constant column needs a single-row value column", ErrPrecondition)
	}
	if data.IsConst() {
		data = data.ConvertToFullColumnIfConst()
	}
	return &ColumnConst{data: data, size: size}, nil
}

func (c *ColumnConst) Name() string  { return "Const(" + c.data.Name() + ")" }
func (c *ColumnConst) Len() int      { return c.size }
func (c *ColumnConst) IsConst() bool { return true }

// CloneEmpty keeps the constant value but drops every row.
func (c *ColumnConst) CloneEmpty() ColumnStore {
	value := c.data.CloneEmpty()
	value.InsertRangeFrom(c.data, 0, 1)
	return &ColumnConst{data: value}
}

func (c *ColumnConst) ConvertToFullColumnIfConst() ColumnStore {
	full := c.data.CloneEmpty()
	for i := 0; i < c.size; i++ {
		full.InsertRangeFrom(c.data, 0, 1)
	}
	return full
}

// InsertDefault extends the constant by one row.
func (c *ColumnConst) InsertDefault() {
	c.size++
}

func (c *ColumnConst) InsertRangeFrom(src ColumnStore, start, length int) {
	mustSameKind[*ColumnConst](c, src)
	c.size += length
}

func (c *ColumnConst) DumpStructure() string {
	return dumpStructure("Const", c.Len(), c.data)
}

// Value returns the single-row column holding the constant.
func (c *ColumnConst) Value() ColumnStore { return c.data }

// --- ColumnNothing ---

// ColumnNothing holds rows of the Nothing type: a row count and no values.
type ColumnNothing struct {
	size int
}

var _ ColumnStore = (*ColumnNothing)(nil)

func (c *ColumnNothing) Name() string                            { return "Nothing" }
func (c *ColumnNothing) Len() int                                { return c.size }
func (c *ColumnNothing) IsConst() bool                           { return false }
func (c *ColumnNothing) CloneEmpty() ColumnStore                 { return &ColumnNothing{} }
func (c *ColumnNothing) ConvertToFullColumnIfConst() ColumnStore { return c }
func (c *ColumnNothing) InsertDefault()                          { c.size++ }

func (c *ColumnNothing) InsertRangeFrom(src ColumnStore, start, length int) {
	mustSameKind[*ColumnNothing](c, src)
	c.size += length
}

func (c *ColumnNothing) DumpStructure() string {
	return dumpStructure(c.Name(), c.size)
}
