// Package doristest provides column fixtures for tests of code built on the
// doris type layer.
package doristest

import (
	"fmt"

	"github.com/git-hulk/doris"
)

// Fill appends rows sample values to col. Values are derived from the row
// number so that different rows hold different values: nullable columns hold
// NULL on odd rows and array row i holds i%3 elements.
func Fill(col doris.ColumnStore, rows int) {
	fill(col, 0, rows)
}

func fill(col doris.ColumnStore, start, rows int) {
	switch c := col.(type) {
	case *doris.ColumnVector[int8]:
		appendN(c, start, rows, func(i int) int8 { return int8(i) })
	case *doris.ColumnVector[int16]:
		appendN(c, start, rows, func(i int) int16 { return int16(i) })
	case *doris.ColumnVector[int32]:
		appendN(c, start, rows, func(i int) int32 { return int32(i) })
	case *doris.ColumnVector[int64]:
		appendN(c, start, rows, func(i int) int64 { return int64(i) })
	case *doris.ColumnVector[uint8]:
		appendN(c, start, rows, func(i int) uint8 { return uint8(i) })
	case *doris.ColumnVector[uint16]:
		appendN(c, start, rows, func(i int) uint16 { return uint16(i) })
	case *doris.ColumnVector[uint32]:
		appendN(c, start, rows, func(i int) uint32 { return uint32(i) })
	case *doris.ColumnVector[uint64]:
		appendN(c, start, rows, func(i int) uint64 { return uint64(i) })
	case *doris.ColumnVector[float32]:
		appendN(c, start, rows, func(i int) float32 { return float32(i) + 0.5 })
	case *doris.ColumnVector[float64]:
		appendN(c, start, rows, func(i int) float64 { return float64(i) + 0.25 })
	case *doris.ColumnVector[doris.Int128]:
		appendN(c, start, rows, func(i int) doris.Int128 { return doris.Int128FromInt64(int64(i)) })
	case *doris.ColumnDecimal:
		for i := start; i < start+rows; i++ {
			c.Append(doris.Int128FromInt64(int64(i) * 1000))
		}
	case *doris.ColumnString:
		for i := start; i < start+rows; i++ {
			c.Append(fmt.Sprintf("s%d", i))
		}
	case *doris.ColumnNullable:
		for i := start; i < start+rows; i++ {
			if i%2 == 1 {
				c.AppendNull()
				continue
			}
			fill(c.Nested(), i, 1)
			c.AppendNullFlag(false)
		}
	case *doris.ColumnArray:
		for i := start; i < start+rows; i++ {
			fill(c.Data(), i, i%3)
			c.FinishRow()
		}
	default:
		for i := 0; i < rows; i++ {
			col.InsertDefault()
		}
	}
}

func appendN[T doris.Element](c *doris.ColumnVector[T], start, rows int, value func(int) T) {
	for i := start; i < start+rows; i++ {
		c.Append(value(i))
	}
}

// Column returns a TypedColumn of type t named name, holding rows sample rows.
func Column(name string, t doris.LogicalType, rows int) doris.TypedColumn {
	c := doris.NewTypedColumn(name, t)
	Fill(c.Column, rows)
	return c
}

// RegistryColumns returns one filled column per canonical name of r, named
// after the type.
func RegistryColumns(r *doris.TypeRegistry, rows int) []doris.TypedColumn {
	names := r.Names()
	cols := make([]doris.TypedColumn, 0, len(names))
	for _, name := range names {
		t, _ := r.Get(name)
		cols = append(cols, Column(name, t, rows))
	}
	return cols
}
