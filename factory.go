package doris

import (
	"fmt"

	"github.com/git-hulk/doris/column_json"
	"github.com/git-hulk/doris/storage"
)

// Descriptor names used in TypeError.
const (
	descriptorField      = "field"
	descriptorTablet     = "tablet column"
	descriptorTypeDesc   = "type descriptor"
	descriptorColumnMeta = "column meta"
	descriptorArrow      = "arrow"
)

// decimalType returns Decimal(precision, scale), or the default decimal when
// the descriptor leaves precision unset.
func (r *TypeRegistry) decimalType(descriptor string, precision, scale int32) (LogicalType, error) {
	if precision == 0 && scale == 0 {
		return r.defaultDecimal, nil
	}
	d, err := NewDecimalType(precision, scale)
	if err != nil {
		return nil, invalidDescriptor(descriptor, fmt.Sprintf("DECIMAL(%d,%d)", precision, scale), err)
	}
	return d, nil
}

// CreateFromField converts a physical on-disk field descriptor. The result is
// never nullable at the top level. Array elements are nullable, because the
// storage format always keeps a null map for them.
func (r *TypeRegistry) CreateFromField(f storage.Field) (LogicalType, error) {
	switch f.Type {
	case storage.FieldTypeArray:
		if f.Item == nil {
			return nil, invalidDescriptor(descriptorField, f.Type.String(), fmt.Errorf("%w: array field %q without item", ErrPrecondition, f.Name))
		}
		elem, err := r.CreateFromField(*f.Item)
		if err != nil {
			return nil, err
		}
		return NewArrayType(MakeNullable(elem)), nil
	case storage.FieldTypeDecimal:
		return r.decimalType(descriptorField, f.Precision, f.Scale)
	default:
		return r.primitiveType(descriptorField, f.Type)
	}
}

// CreateFromTabletColumn converts a table-schema column. nullable decides the
// top level; array sub columns carry their own IsNullable.
func (r *TypeRegistry) CreateFromTabletColumn(c storage.TabletColumn, nullable bool) (LogicalType, error) {
	var (
		t   LogicalType
		err error
	)
	switch c.Type {
	case storage.FieldTypeArray:
		if len(c.SubColumns) != 1 {
			return nil, invalidDescriptor(descriptorTablet, c.Type.String(),
				fmt.Errorf("%w: array column %q needs 1 sub column, has %d", ErrPrecondition, c.Name, len(c.SubColumns)))
		}
		sub := c.SubColumns[0]
		var elem LogicalType
		if elem, err = r.CreateFromTabletColumn(sub, sub.IsNullable); err != nil {
			return nil, err
		}
		t = NewArrayType(elem)
	case storage.FieldTypeDecimal:
		t, err = r.decimalType(descriptorTablet, c.Precision, c.Scale)
	default:
		t, err = r.primitiveType(descriptorTablet, c.Type)
	}
	if err != nil {
		return nil, err
	}
	if nullable {
		return MakeNullable(t), nil
	}
	return t, nil
}

var primitiveFieldTypes = map[PrimitiveType]storage.FieldType{
	PrimitiveBoolean:  storage.FieldTypeBool,
	PrimitiveTinyInt:  storage.FieldTypeTinyInt,
	PrimitiveSmallInt: storage.FieldTypeSmallInt,
	PrimitiveInt:      storage.FieldTypeInt,
	PrimitiveBigInt:   storage.FieldTypeBigInt,
	PrimitiveLargeInt: storage.FieldTypeLargeInt,
	PrimitiveFloat:    storage.FieldTypeFloat,
	PrimitiveDouble:   storage.FieldTypeDouble,
	PrimitiveDate:     storage.FieldTypeDate,
	PrimitiveDateTime: storage.FieldTypeDateTime,
	PrimitiveChar:     storage.FieldTypeChar,
	PrimitiveVarchar:  storage.FieldTypeVarchar,
	PrimitiveString:   storage.FieldTypeString,
}

// CreateFromTypeDescriptor converts an engine-level type descriptor. nullable
// decides the top level (the engine's slots are nullable unless proven
// otherwise, so most callers pass true); array elements follow ContainsNull.
// A NULL descriptor becomes Nothing.
func (r *TypeRegistry) CreateFromTypeDescriptor(d TypeDescriptor, nullable bool) (LogicalType, error) {
	var (
		t   LogicalType
		err error
	)
	switch d.Type {
	case PrimitiveArray:
		if len(d.Children) != 1 {
			return nil, invalidDescriptor(descriptorTypeDesc, d.Type.String(),
				fmt.Errorf("%w: ARRAY needs 1 child, has %d", ErrPrecondition, len(d.Children)))
		}
		var elem LogicalType
		if elem, err = r.CreateFromTypeDescriptor(d.Children[0], d.ContainsNull); err != nil {
			return nil, err
		}
		t = NewArrayType(elem)
	case PrimitiveDecimal:
		t, err = r.decimalType(descriptorTypeDesc, d.Precision, d.Scale)
	case PrimitiveNull:
		t = NewNothingType()
	default:
		ft, ok := primitiveFieldTypes[d.Type]
		if !ok {
			return nil, unsupported(descriptorTypeDesc, d.Type)
		}
		t, err = r.primitiveType(descriptorTypeDesc, ft)
	}
	if err != nil {
		return nil, err
	}
	if nullable {
		return MakeNullable(t), nil
	}
	return t, nil
}

var typeIDFieldTypes = map[column_json.TypeID]storage.FieldType{
	column_json.TypeIDUInt8:    storage.FieldTypeUnsignedTinyInt,
	column_json.TypeIDUInt16:   storage.FieldTypeUnsignedSmallInt,
	column_json.TypeIDUInt32:   storage.FieldTypeUnsignedInt,
	column_json.TypeIDUInt64:   storage.FieldTypeUnsignedBigInt,
	column_json.TypeIDInt8:     storage.FieldTypeTinyInt,
	column_json.TypeIDInt16:    storage.FieldTypeSmallInt,
	column_json.TypeIDInt32:    storage.FieldTypeInt,
	column_json.TypeIDInt64:    storage.FieldTypeBigInt,
	column_json.TypeIDInt128:   storage.FieldTypeLargeInt,
	column_json.TypeIDFloat:    storage.FieldTypeFloat,
	column_json.TypeIDDouble:   storage.FieldTypeDouble,
	column_json.TypeIDBoolean:  storage.FieldTypeBool,
	column_json.TypeIDDate:     storage.FieldTypeDate,
	column_json.TypeIDDateTime: storage.FieldTypeDateTime,
	column_json.TypeIDString:   storage.FieldTypeString,
}

// CreateFromColumnMeta converts a wire metadata record. Nullability is read
// from the record at every level. A DECIMAL128 record must carry its
// decimalParam, as ColumnMeta.Validate requires.
func (r *TypeRegistry) CreateFromColumnMeta(m *column_json.ColumnMeta) (LogicalType, error) {
	if m == nil {
		return nil, invalidDescriptor(descriptorColumnMeta, "nil", ErrPrecondition)
	}
	var (
		t   LogicalType
		err error
	)
	switch m.Type {
	case column_json.TypeIDList:
		if len(m.Children) != 1 {
			return nil, invalidDescriptor(descriptorColumnMeta, m.Type.String(),
				fmt.Errorf("%w: LIST needs 1 child, has %d", ErrPrecondition, len(m.Children)))
		}
		var elem LogicalType
		if elem, err = r.CreateFromColumnMeta(m.Children[0]); err != nil {
			return nil, err
		}
		t = NewArrayType(elem)
	case column_json.TypeIDDecimal128:
		if m.DecimalParam == nil {
			return nil, invalidDescriptor(descriptorColumnMeta, m.Type.String(),
				fmt.Errorf("%w: column %q: DECIMAL128 without decimalParam", ErrPrecondition, m.Name))
		}
		t, err = r.decimalType(descriptorColumnMeta, m.DecimalParam.Precision, m.DecimalParam.Scale)
	case column_json.TypeIDNothing:
		t = NewNothingType()
	default:
		ft, ok := typeIDFieldTypes[m.Type]
		if !ok {
			return nil, unsupported(descriptorColumnMeta, m.Type)
		}
		t, err = r.primitiveType(descriptorColumnMeta, ft)
	}
	if err != nil {
		return nil, err
	}
	if m.IsNullable {
		return MakeNullable(t), nil
	}
	return t, nil
}
