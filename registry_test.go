package doris_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-hulk/doris"
	"github.com/git-hulk/doris/column_json"
	"github.com/git-hulk/doris/doristest"
)

var registeredPrimitives = []string{
	"UInt8", "UInt16", "UInt32", "UInt64",
	"Int8", "Int16", "Int32", "Int64", "Int128",
	"Float32", "Float64",
	"Date", "DateTime", "String", "Decimal",
}

func TestTypeRegistry_Primitives(t *testing.T) {
	r := doris.Instance()

	for _, name := range registeredPrimitives {
		t.Run(name, func(t *testing.T) {
			typ, ok := r.Get(name)
			require.True(t, ok)
			assert.True(t, typ.Equals(typ))
			assert.False(t, typ.IsNullable())

			array, ok := r.Get("Array(" + name + ")")
			require.True(t, ok)
			require.IsType(t, &doris.ArrayType{}, array)
			assert.True(t, array.(*doris.ArrayType).Nested().Equals(typ))

			nullableArray, ok := r.Get("Array(Nullable(" + name + "))")
			require.True(t, ok)
			require.IsType(t, &doris.ArrayType{}, nullableArray)
			elem := nullableArray.(*doris.ArrayType).Nested()
			require.IsType(t, &doris.NullableType{}, elem)
			assert.True(t, elem.(*doris.NullableType).Nested().Equals(typ))
		})
	}
}

func TestTypeRegistry_NameOf(t *testing.T) {
	r := doris.Instance()

	for _, name := range r.Names() {
		typ, ok := r.Get(name)
		require.True(t, ok, name)

		got, ok := r.NameOf(typ)
		require.True(t, ok, name)
		assert.Equal(t, name, got)

		got, ok = r.NameOf(doris.MakeNullable(typ))
		require.True(t, ok, name)
		assert.Equal(t, name, got)
	}

	t.Run("Structurally equal instance", func(t *testing.T) {
		d, err := doris.NewDecimalType(doris.DefaultDecimalPrecision, doris.DefaultDecimalScale)
		require.NoError(t, err)
		name, ok := r.NameOf(doris.NewArrayType(doris.NewNullableType(d)))
		assert.True(t, ok)
		assert.Equal(t, "Array(Nullable(Decimal))", name)
	})

	t.Run("Not registered", func(t *testing.T) {
		d, err := doris.NewDecimalType(10, 2)
		require.NoError(t, err)
		_, ok := r.NameOf(d)
		assert.False(t, ok)

		i32, _ := r.Get("Int32")
		_, ok = r.NameOf(doris.NewArrayType(doris.NewArrayType(i32)))
		assert.False(t, ok)

		_, ok = r.NameOf(doris.NewNothingType())
		assert.False(t, ok)

		_, ok = r.NameOf(nil)
		assert.False(t, ok)
	})
}

func TestTypeRegistry_GetUnknown(t *testing.T) {
	r := doris.Instance()
	before := len(r.Names())

	typ, ok := r.Get("Nullable(Int32)")
	assert.False(t, ok)
	assert.Nil(t, typ)

	_, ok = r.Get("int32")
	assert.False(t, ok)

	_, ok = r.Get("")
	assert.False(t, ok)

	assert.Len(t, r.Names(), before)
}

func TestTypeRegistry_SharedInstances(t *testing.T) {
	r := doris.Instance()
	i32, _ := r.Get("Int32")
	array, _ := r.Get("Array(Int32)")
	assert.Same(t, i32, array.(*doris.ArrayType).Nested())

	assert.Equal(t, "Decimal(27, 9)", r.DefaultDecimal().Name())
	decimal, _ := r.Get("Decimal")
	assert.Same(t, r.DefaultDecimal(), decimal)
}

func TestNewTypeRegistry(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		r, err := doris.NewTypeRegistry()
		require.NoError(t, err)
		assert.Equal(t, doris.Instance().Names(), r.Names())
		assert.NotSame(t, doris.Instance(), r)
	})

	t.Run("WithDefaultDecimal", func(t *testing.T) {
		r, err := doris.NewTypeRegistry(doris.WithDefaultDecimal(18, 4))
		require.NoError(t, err)

		decimal, ok := r.Get("Decimal")
		require.True(t, ok)
		assert.Equal(t, "Decimal(18, 4)", decimal.Name())

		array, ok := r.Get("Array(Nullable(Decimal))")
		require.True(t, ok)
		assert.Equal(t, "Array(Nullable(Decimal(18, 4)))", array.Name())
	})

	t.Run("Invalid option", func(t *testing.T) {
		_, err := doris.NewTypeRegistry(doris.WithDefaultDecimal(40, 2))
		assert.ErrorIs(t, err, doris.ErrPrecondition)
	})
}

func TestTypeRegistry_SampleColumns(t *testing.T) {
	r := doris.Instance()

	for _, c := range doristest.RegistryColumns(r, 4) {
		t.Run(c.Name, func(t *testing.T) {
			require.Equal(t, 4, c.Column.Len())
			assert.Equal(t, c.Type.CreateColumn().Name(), c.Column.Name())

			for row := 0; row < c.Column.Len(); row++ {
				_, err := c.ToString(row)
				require.NoError(t, err)
			}

			meta := &column_json.ColumnMeta{}
			require.NoError(t, c.ToColumnMeta(meta))
			require.NoError(t, meta.Validate())
			assert.Equal(t, c.Name, meta.Name)

			back, err := r.CreateFromColumnMeta(meta)
			require.NoError(t, err)
			assert.True(t, back.Equals(c.Type), "%s != %s", back.Name(), c.Type.Name())
		})
	}
}
