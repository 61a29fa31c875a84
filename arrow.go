package doris

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/git-hulk/doris/storage"
)

var arrowFieldTypes = map[arrow.Type]storage.FieldType{
	arrow.BOOL:         storage.FieldTypeBool,
	arrow.INT8:         storage.FieldTypeTinyInt,
	arrow.INT16:        storage.FieldTypeSmallInt,
	arrow.INT32:        storage.FieldTypeInt,
	arrow.INT64:        storage.FieldTypeBigInt,
	arrow.UINT8:        storage.FieldTypeUnsignedTinyInt,
	arrow.UINT16:       storage.FieldTypeUnsignedSmallInt,
	arrow.UINT32:       storage.FieldTypeUnsignedInt,
	arrow.UINT64:       storage.FieldTypeUnsignedBigInt,
	arrow.FLOAT32:      storage.FieldTypeFloat,
	arrow.FLOAT64:      storage.FieldTypeDouble,
	arrow.STRING:       storage.FieldTypeString,
	arrow.LARGE_STRING: storage.FieldTypeString,
	arrow.BINARY:       storage.FieldTypeString,
	arrow.LARGE_BINARY: storage.FieldTypeString,
	arrow.DATE32:       storage.FieldTypeDate,
	arrow.DATE64:       storage.FieldTypeDate,
	arrow.TIMESTAMP:    storage.FieldTypeDateTime,
}

// CreateFromArrow converts an Arrow data type. nullable decides the top level;
// list elements follow the nullability of the list's element field. Timestamps
// of every unit map to DateTime.
func (r *TypeRegistry) CreateFromArrow(dt arrow.DataType, nullable bool) (LogicalType, error) {
	if dt == nil {
		return nil, invalidDescriptor(descriptorArrow, "nil", ErrPrecondition)
	}
	var (
		t   LogicalType
		err error
	)
	switch typed := dt.(type) {
	case *arrow.ListType:
		elemField := typed.ElemField()
		var elem LogicalType
		if elem, err = r.CreateFromArrow(elemField.Type, elemField.Nullable); err != nil {
			return nil, err
		}
		t = NewArrayType(elem)
	case *arrow.Decimal128Type:
		t, err = r.decimalType(descriptorArrow, typed.Precision, typed.Scale)
	case *arrow.NullType:
		t = NewNothingType()
	default:
		ft, ok := arrowFieldTypes[dt.ID()]
		if !ok {
			return nil, unsupported(descriptorArrow, dt.ID())
		}
		t, err = r.primitiveType(descriptorArrow, ft)
	}
	if err != nil {
		return nil, err
	}
	if nullable {
		return MakeNullable(t), nil
	}
	return t, nil
}

// ArrowType maps t to the Arrow data type that holds its values. Nullability is
// not part of an Arrow data type; use ArrowField to keep it.
func ArrowType(t LogicalType) (arrow.DataType, error) {
	switch typed := t.(type) {
	case *NullableType:
		return ArrowType(typed.Nested())
	case *ArrayType:
		elem, err := ArrowType(typed.Nested())
		if err != nil {
			return nil, err
		}
		return arrow.ListOfField(arrow.Field{Name: "item", Type: elem, Nullable: typed.Nested().IsNullable()}), nil
	case *DecimalType:
		return &arrow.Decimal128Type{Precision: typed.Precision(), Scale: typed.Scale()}, nil
	case *NothingType:
		return arrow.Null, nil
	case *DateType:
		return arrow.FixedWidthTypes.Date32, nil
	case *DateTimeType:
		return arrow.FixedWidthTypes.Timestamp_s, nil
	case *StringType:
		return arrow.BinaryTypes.String, nil
	case *NumberType[int8]:
		return arrow.PrimitiveTypes.Int8, nil
	case *NumberType[int16]:
		return arrow.PrimitiveTypes.Int16, nil
	case *NumberType[int32]:
		return arrow.PrimitiveTypes.Int32, nil
	case *NumberType[int64]:
		return arrow.PrimitiveTypes.Int64, nil
	case *NumberType[uint8]:
		return arrow.PrimitiveTypes.Uint8, nil
	case *NumberType[uint16]:
		return arrow.PrimitiveTypes.Uint16, nil
	case *NumberType[uint32]:
		return arrow.PrimitiveTypes.Uint32, nil
	case *NumberType[uint64]:
		return arrow.PrimitiveTypes.Uint64, nil
	case *NumberType[float32]:
		return arrow.PrimitiveTypes.Float32, nil
	case *NumberType[float64]:
		return arrow.PrimitiveTypes.Float64, nil
	case nil:
		return nil, fmt.Errorf("%w: nil type has no arrow type", ErrPrecondition)
	default:
		return nil, &TypeError{Descriptor: descriptorArrow, Kind: t.Name(), Err: ErrUnsupportedType}
	}
}

// ArrowField returns the Arrow field describing c.
func ArrowField(c TypedColumn) (arrow.Field, error) {
	dt, err := ArrowType(c.Type)
	if err != nil {
		return arrow.Field{}, err
	}
	return arrow.Field{Name: c.Name, Type: dt, Nullable: c.Type.IsNullable()}, nil
}

// ArrowArray copies the rows of c into a new Arrow array allocated from mem.
// A constant column is materialized first. The caller must Release the result.
func ArrowArray(mem memory.Allocator, c TypedColumn) (arrow.Array, error) {
	if c.Type == nil || c.Column == nil {
		return nil, fmt.Errorf("%w: ArrowArray on column %q needs both a type and a column", ErrPrecondition, c.Name)
	}
	dt, err := ArrowType(c.Type)
	if err != nil {
		return nil, err
	}
	b := array.NewBuilder(mem, dt)
	defer b.Release()

	col := c.Column.ConvertToFullColumnIfConst()
	if err := appendArrowRows(b, col, 0, col.Len()); err != nil {
		return nil, err
	}
	return b.NewArray(), nil
}

func appendArrowRows(b array.Builder, col ColumnStore, begin, end int) error {
	mismatch := func() error {
		return fmt.Errorf("%w: cannot write column %s into %s", ErrColumnMismatch, col.Name(), b.Type())
	}
	switch c := col.(type) {
	case *ColumnNullable:
		for i := begin; i < end; i++ {
			if c.IsNullAt(i) {
				b.AppendNull()
				continue
			}
			if err := appendArrowRows(b, c.Nested(), i, i+1); err != nil {
				return err
			}
		}
	case *ColumnArray:
		lb, ok := b.(*array.ListBuilder)
		if !ok {
			return mismatch()
		}
		for i := begin; i < end; i++ {
			lb.Append(true)
			from, to := c.RowBounds(i)
			if err := appendArrowRows(lb.ValueBuilder(), c.Data(), from, to); err != nil {
				return err
			}
		}
	case *ColumnNothing:
		b.AppendNulls(end - begin)
	case *ColumnString:
		sb, ok := b.(*array.StringBuilder)
		if !ok {
			return mismatch()
		}
		for i := begin; i < end; i++ {
			sb.Append(c.Get(i))
		}
	case *ColumnDecimal:
		db, ok := b.(*array.Decimal128Builder)
		if !ok {
			return mismatch()
		}
		for i := begin; i < end; i++ {
			db.Append(c.Get(i).Num())
		}
	case *ColumnVector[int32]:
		switch vb := b.(type) {
		case *array.Int32Builder:
			vb.AppendValues(c.Data()[begin:end], nil)
		case *array.Date32Builder:
			for _, v := range c.Data()[begin:end] {
				vb.Append(arrow.Date32(v))
			}
		default:
			return mismatch()
		}
	case *ColumnVector[int64]:
		switch vb := b.(type) {
		case *array.Int64Builder:
			vb.AppendValues(c.Data()[begin:end], nil)
		case *array.TimestampBuilder:
			for _, v := range c.Data()[begin:end] {
				vb.Append(arrow.Timestamp(v))
			}
		default:
			return mismatch()
		}
	case *ColumnVector[int8]:
		return appendFixed[int8, *array.Int8Builder](b, c, begin, end, mismatch)
	case *ColumnVector[int16]:
		return appendFixed[int16, *array.Int16Builder](b, c, begin, end, mismatch)
	case *ColumnVector[uint8]:
		return appendFixed[uint8, *array.Uint8Builder](b, c, begin, end, mismatch)
	case *ColumnVector[uint16]:
		return appendFixed[uint16, *array.Uint16Builder](b, c, begin, end, mismatch)
	case *ColumnVector[uint32]:
		return appendFixed[uint32, *array.Uint32Builder](b, c, begin, end, mismatch)
	case *ColumnVector[uint64]:
		return appendFixed[uint64, *array.Uint64Builder](b, c, begin, end, mismatch)
	case *ColumnVector[float32]:
		return appendFixed[float32, *array.Float32Builder](b, c, begin, end, mismatch)
	case *ColumnVector[float64]:
		return appendFixed[float64, *array.Float64Builder](b, c, begin, end, mismatch)
	default:
		return mismatch()
	}
	return nil
}

type valuesBuilder[T Element] interface {
	AppendValues(v []T, valid []bool)
}

func appendFixed[T Element, B valuesBuilder[T]](b array.Builder, c *ColumnVector[T], begin, end int, mismatch func() error) error {
	vb, ok := b.(B)
	if !ok {
		return mismatch()
	}
	vb.AppendValues(c.Data()[begin:end], nil)
	return nil
}
