// Package doris implements the type and column layer of a vectorized query
// engine: logical types, the in-memory columns that hold their rows, the
// typed columns exchanged between operators, and the registry that resolves
// storage, planner, wire and Arrow schema descriptors into shared types.
//
// # Types
//
// A LogicalType is immutable and compared structurally by its name:
//
//	t := doris.NewArrayType(doris.MakeNullable(doris.NewNothingType()))
//	t.Name() // "Array(Nullable(Nothing))"
//
// # Registry
//
// The process-wide registry is built once on first use:
//
//	r := doris.Instance()
//	i32, _ := r.Get("Int32")
//	name, _ := r.NameOf(doris.MakeNullable(i32)) // "Int32"
//
// Descriptors are converted with the CreateFrom* methods. Each descriptor kind
// has a fixed nullability convention:
//
//	d, _ := doris.ParseTypeDescriptor("ARRAY<DECIMAL(10,2) NOT NULL>")
//	t, err := r.CreateFromTypeDescriptor(d, true)
//	// t.Name() == "Nullable(Array(Decimal(10, 2)))"
//
// Kinds without a logical type fail with an error matching ErrUnsupportedType.
//
// # Columns
//
// A TypedColumn pairs a name and type with a column of rows:
//
//	c := doris.NewTypedColumn("id", i32)
//	c.Column.(*doris.ColumnVector[int32]).Append(1, 2, 3)
//	s, _ := c.ToString(1) // "2"
//
// Wire metadata for a column is produced only through TypedColumn.ToColumnMeta.
package doris
