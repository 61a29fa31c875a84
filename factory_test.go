package doris_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-hulk/doris"
	"github.com/git-hulk/doris/column_json"
	"github.com/git-hulk/doris/storage"
)

func TestCreateFromField(t *testing.T) {
	r := doris.Instance()

	tests := []struct {
		field storage.Field
		want  string
	}{
		{storage.Field{Type: storage.FieldTypeInt}, "Int32"},
		{storage.Field{Type: storage.FieldTypeUnsignedBigInt}, "UInt64"},
		{storage.Field{Type: storage.FieldTypeLargeInt}, "Int128"},
		{storage.Field{Type: storage.FieldTypeBool}, "UInt8"},
		{storage.Field{Type: storage.FieldTypeVarchar, Length: 20}, "String"},
		{storage.Field{Type: storage.FieldTypeChar, Length: 1}, "String"},
		{storage.Field{Type: storage.FieldTypeDate}, "Date"},
		{storage.Field{Type: storage.FieldTypeDecimal}, "Decimal(27, 9)"},
		{storage.Field{Type: storage.FieldTypeDecimal, Precision: 10, Scale: 2}, "Decimal(10, 2)"},
		{
			storage.Field{Type: storage.FieldTypeArray, Item: &storage.Field{Type: storage.FieldTypeDouble}},
			"Array(Nullable(Float64))",
		},
		{
			storage.Field{Type: storage.FieldTypeArray, Item: &storage.Field{
				Type: storage.FieldTypeArray, Item: &storage.Field{Type: storage.FieldTypeString},
			}},
			"Array(Nullable(Array(Nullable(String))))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			typ, err := r.CreateFromField(tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.want, typ.Name())
			assert.False(t, typ.IsNullable())
		})
	}

	t.Run("Shared primitive", func(t *testing.T) {
		typ, err := r.CreateFromField(storage.Field{Type: storage.FieldTypeSmallInt})
		require.NoError(t, err)
		want, _ := r.Get("Int16")
		assert.Same(t, want, typ)
	})

	t.Run("Array without item", func(t *testing.T) {
		_, err := r.CreateFromField(storage.Field{Name: "a", Type: storage.FieldTypeArray})
		assert.ErrorIs(t, err, doris.ErrPrecondition)
	})

	t.Run("Invalid decimal", func(t *testing.T) {
		_, err := r.CreateFromField(storage.Field{Type: storage.FieldTypeDecimal, Precision: 50, Scale: 2})
		assert.ErrorIs(t, err, doris.ErrPrecondition)
	})
}

func TestCreateFromField_Unsupported(t *testing.T) {
	r := doris.Instance()

	for _, ft := range []storage.FieldType{
		storage.FieldTypeUnknown, storage.FieldTypeHLL, storage.FieldTypeObject,
		storage.FieldTypeStruct, storage.FieldTypeMap,
	} {
		t.Run(ft.String(), func(t *testing.T) {
			typ, err := r.CreateFromField(storage.Field{Type: ft})
			assert.Nil(t, typ)
			require.ErrorIs(t, err, doris.ErrUnsupportedType)

			var typeErr *doris.TypeError
			require.True(t, errors.As(err, &typeErr))
			assert.Equal(t, "field", typeErr.Descriptor)
			assert.Equal(t, ft.String(), typeErr.Kind)
		})
	}

	t.Run("Unsupported item", func(t *testing.T) {
		_, err := r.CreateFromField(storage.Field{Type: storage.FieldTypeArray, Item: &storage.Field{Type: storage.FieldTypeHLL}})
		assert.ErrorIs(t, err, doris.ErrUnsupportedType)
	})
}

func TestCreateFromTabletColumn(t *testing.T) {
	r := doris.Instance()

	t.Run("Nullable int", func(t *testing.T) {
		typ, err := r.CreateFromTabletColumn(storage.TabletColumn{Name: "c1", Type: storage.FieldTypeInt}, true)
		require.NoError(t, err)
		require.IsType(t, &doris.NullableType{}, typ)
		i32, _ := r.Get("Int32")
		assert.Same(t, i32, typ.(*doris.NullableType).Nested())
	})

	t.Run("Flag decides the top level", func(t *testing.T) {
		col := storage.TabletColumn{Name: "c1", Type: storage.FieldTypeString, IsNullable: true}
		typ, err := r.CreateFromTabletColumn(col, false)
		require.NoError(t, err)
		assert.Equal(t, "String", typ.Name())
	})

	t.Run("Array sub column nullability", func(t *testing.T) {
		col := storage.TabletColumn{
			Name: "tags",
			Type: storage.FieldTypeArray,
			SubColumns: []storage.TabletColumn{
				{Type: storage.FieldTypeVarchar, IsNullable: false},
			},
		}
		typ, err := r.CreateFromTabletColumn(col, true)
		require.NoError(t, err)
		assert.Equal(t, "Nullable(Array(String))", typ.Name())

		col.SubColumns[0].IsNullable = true
		typ, err = r.CreateFromTabletColumn(col, false)
		require.NoError(t, err)
		assert.Equal(t, "Array(Nullable(String))", typ.Name())
	})

	t.Run("Decimal", func(t *testing.T) {
		typ, err := r.CreateFromTabletColumn(storage.TabletColumn{Type: storage.FieldTypeDecimal, Precision: 12, Scale: 3}, false)
		require.NoError(t, err)
		assert.Equal(t, "Decimal(12, 3)", typ.Name())
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := r.CreateFromTabletColumn(storage.TabletColumn{Type: storage.FieldTypeArray}, false)
		assert.ErrorIs(t, err, doris.ErrPrecondition)

		_, err = r.CreateFromTabletColumn(storage.TabletColumn{Type: storage.FieldTypeMap}, true)
		assert.ErrorIs(t, err, doris.ErrUnsupportedType)
	})
}

func TestCreateFromTabletColumn_ToColumnMeta(t *testing.T) {
	r := doris.Instance()

	typ, err := r.CreateFromTabletColumn(storage.TabletColumn{Name: "c1", Type: storage.FieldTypeInt}, true)
	require.NoError(t, err)
	col := doris.TypedColumn{Name: "c1", Type: typ, Column: typ.CreateColumn()}
	assert.Equal(t, "Nullable(Int32)", col.Column.Name())

	meta := &column_json.ColumnMeta{}
	require.NoError(t, col.ToColumnMeta(meta))
	assert.Equal(t, "c1", meta.Name)
	assert.Equal(t, column_json.TypeIDInt32, meta.Type)
	assert.True(t, meta.IsNullable)
	assert.Empty(t, meta.Children)
}

func TestCreateFromTypeDescriptor(t *testing.T) {
	r := doris.Instance()

	tests := []struct {
		input    string
		nullable bool
		want     string
	}{
		{"INT", true, "Nullable(Int32)"},
		{"INT", false, "Int32"},
		{"BOOLEAN", false, "UInt8"},
		{"LARGEINT", false, "Int128"},
		{"VARCHAR(20)", false, "String"},
		{"DATETIME", false, "DateTime"},
		{"DECIMAL", false, "Decimal(27, 9)"},
		{"DECIMAL(10,2)", true, "Nullable(Decimal(10, 2))"},
		{"ARRAY<INT>", false, "Array(Nullable(Int32))"},
		{"ARRAY<INT NOT NULL>", true, "Nullable(Array(Int32))"},
		{"ARRAY<ARRAY<STRING> NOT NULL>", false, "Array(Array(Nullable(String)))"},
		{"NULL", false, "Nothing"},
		{"NULL", true, "Nullable(Nothing)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := doris.ParseTypeDescriptor(tt.input)
			require.NoError(t, err)
			typ, err := r.CreateFromTypeDescriptor(d, tt.nullable)
			require.NoError(t, err)
			assert.Equal(t, tt.want, typ.Name())
		})
	}

	t.Run("Unsupported", func(t *testing.T) {
		for _, p := range []doris.PrimitiveType{doris.PrimitiveInvalid, doris.PrimitiveTime, doris.PrimitiveHLL, doris.PrimitiveBitmap} {
			_, err := r.CreateFromTypeDescriptor(doris.TypeDescriptor{Type: p}, true)
			assert.ErrorIs(t, err, doris.ErrUnsupportedType, p.String())
		}
	})

	t.Run("Array without element", func(t *testing.T) {
		_, err := r.CreateFromTypeDescriptor(doris.TypeDescriptor{Type: doris.PrimitiveArray}, true)
		assert.ErrorIs(t, err, doris.ErrPrecondition)
	})
}

func TestCreateFromTypeDescriptor_DefaultDecimal(t *testing.T) {
	r, err := doris.NewTypeRegistry(doris.WithDefaultDecimal(18, 4))
	require.NoError(t, err)

	d, err := doris.ParseTypeDescriptor("DECIMAL")
	require.NoError(t, err)
	typ, err := r.CreateFromTypeDescriptor(d, false)
	require.NoError(t, err)
	assert.Equal(t, "Decimal(18, 4)", typ.Name())
	assert.Same(t, r.DefaultDecimal(), typ)

	name, ok := r.NameOf(typ)
	require.True(t, ok)
	assert.Equal(t, "Decimal", name)

	d, err = doris.ParseTypeDescriptor("ARRAY<DECIMAL>")
	require.NoError(t, err)
	typ, err = r.CreateFromTypeDescriptor(d, true)
	require.NoError(t, err)
	assert.Equal(t, "Nullable(Array(Nullable(Decimal(18, 4))))", typ.Name())
	name, ok = r.NameOf(typ)
	require.True(t, ok)
	assert.Equal(t, "Array(Nullable(Decimal))", name)

	d, err = doris.ParseTypeDescriptor("DECIMAL(27,9)")
	require.NoError(t, err)
	typ, err = r.CreateFromTypeDescriptor(d, false)
	require.NoError(t, err)
	assert.Equal(t, "Decimal(27, 9)", typ.Name())
	_, ok = r.NameOf(typ)
	assert.False(t, ok)
}

func TestCreateFromColumnMeta(t *testing.T) {
	r := doris.Instance()

	t.Run("Nullability from the record", func(t *testing.T) {
		meta := &column_json.ColumnMeta{
			Type:       column_json.TypeIDList,
			IsNullable: true,
			Children: []*column_json.ColumnMeta{
				{Type: column_json.TypeIDDecimal128, DecimalParam: &column_json.DecimalParam{Precision: 9, Scale: 1}},
			},
		}
		typ, err := r.CreateFromColumnMeta(meta)
		require.NoError(t, err)
		assert.Equal(t, "Nullable(Array(Decimal(9, 1)))", typ.Name())

		meta.IsNullable = false
		meta.Children[0].IsNullable = true
		typ, err = r.CreateFromColumnMeta(meta)
		require.NoError(t, err)
		assert.Equal(t, "Array(Nullable(Decimal(9, 1)))", typ.Name())
	})

	t.Run("From JSON", func(t *testing.T) {
		meta, err := column_json.Unmarshal([]byte(`{"name":"c","type":"BOOLEAN","isNullable":true}`))
		require.NoError(t, err)
		typ, err := r.CreateFromColumnMeta(meta)
		require.NoError(t, err)
		assert.Equal(t, "Nullable(UInt8)", typ.Name())
	})

	t.Run("Nothing", func(t *testing.T) {
		typ, err := r.CreateFromColumnMeta(&column_json.ColumnMeta{Type: column_json.TypeIDNothing})
		require.NoError(t, err)
		assert.Equal(t, "Nothing", typ.Name())
	})

	t.Run("Decimal without decimalParam", func(t *testing.T) {
		meta := &column_json.ColumnMeta{Name: "d", Type: column_json.TypeIDDecimal128}
		assert.Error(t, meta.Validate())

		_, err := r.CreateFromColumnMeta(meta)
		assert.ErrorIs(t, err, doris.ErrPrecondition)

		_, err = r.CreateFromColumnMeta(&column_json.ColumnMeta{
			Type:     column_json.TypeIDList,
			Children: []*column_json.ColumnMeta{meta},
		})
		assert.ErrorIs(t, err, doris.ErrPrecondition)

		_, err = column_json.Unmarshal([]byte(`{"name":"d","type":"DECIMAL128"}`))
		assert.Error(t, err)
	})

	t.Run("Default decimal round trip", func(t *testing.T) {
		meta := &column_json.ColumnMeta{}
		r.DefaultDecimal().ToColumnMeta(meta)
		require.NoError(t, meta.Validate())

		typ, err := r.CreateFromColumnMeta(meta)
		require.NoError(t, err)
		assert.True(t, typ.Equals(r.DefaultDecimal()))
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := r.CreateFromColumnMeta(nil)
		assert.ErrorIs(t, err, doris.ErrPrecondition)

		_, err = r.CreateFromColumnMeta(&column_json.ColumnMeta{Type: column_json.TypeIDList})
		assert.ErrorIs(t, err, doris.ErrPrecondition)

		_, err = r.CreateFromColumnMeta(&column_json.ColumnMeta{Type: column_json.TypeIDUnknown})
		assert.ErrorIs(t, err, doris.ErrUnsupportedType)

		_, err = r.CreateFromColumnMeta(&column_json.ColumnMeta{Type: column_json.TypeID(99)})
		assert.ErrorIs(t, err, doris.ErrUnsupportedType)
	})
}

func TestCreateFromTabletSchema(t *testing.T) {
	r := doris.Instance()

	schema, err := storage.ParseCreateTable(`CREATE TABLE orders (
		id BIGINT NOT NULL,
		amount DECIMAL(12, 2),
		note VARCHAR(64),
		PRIMARY KEY (id)
	)`)
	require.NoError(t, err)

	want := map[string]string{
		"id":     "Int64",
		"amount": "Nullable(Decimal(12, 2))",
		"note":   "Nullable(String)",
	}
	for _, col := range schema.Columns {
		typ, err := r.CreateFromTabletColumn(col, col.IsNullable)
		require.NoError(t, err)
		assert.Equal(t, want[col.Name], typ.Name(), col.Name)

		field, err := r.CreateFromField(col.ToField())
		require.NoError(t, err)
		assert.True(t, field.Equals(doris.RemoveNullable(typ)), col.Name)
	}
}
