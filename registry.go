package doris

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/git-hulk/doris/column_json"
	"github.com/git-hulk/doris/storage"
	"github.com/git-hulk/doris/utils"
)

// TypeRegistry maps canonical type names to shared LogicalType instances and
// back, and converts external schema descriptors into LogicalTypes.
//
// A registry is fully built by its constructor and never modified afterwards,
// so it is safe for concurrent use without locking.
//
// Canonical names take the forms "<Primitive>", "Array(<Primitive>)" and
// "Array(Nullable(<Primitive>))". Nullability is not part of a top-level
// canonical name: NameOf resolves Nullable(T) to the name of T.
type TypeRegistry struct {
	types map[string]LogicalType

	// names maps canonical names to structural signatures (LogicalType.Name).
	// They differ only where a canonical name omits parameters, e.g. "Decimal"
	// for "Decimal(27, 9)".
	names *utils.BiMap[string, string]

	defaultDecimal *DecimalType
}

// primitiveEntry is a registered primitive and the storage kind it resolves from.
type primitiveEntry struct {
	name      string
	fieldType storage.FieldType
	newType   func(cfg *registryConfig) LogicalType
}

var primitiveEntries = []primitiveEntry{
	{"UInt8", storage.FieldTypeUnsignedTinyInt, func(*registryConfig) LogicalType { return newNumberType[uint8](column_json.TypeIDUInt8) }},
	{"UInt16", storage.FieldTypeUnsignedSmallInt, func(*registryConfig) LogicalType { return newNumberType[uint16](column_json.TypeIDUInt16) }},
	{"UInt32", storage.FieldTypeUnsignedInt, func(*registryConfig) LogicalType { return newNumberType[uint32](column_json.TypeIDUInt32) }},
	{"UInt64", storage.FieldTypeUnsignedBigInt, func(*registryConfig) LogicalType { return newNumberType[uint64](column_json.TypeIDUInt64) }},
	{"Int8", storage.FieldTypeTinyInt, func(*registryConfig) LogicalType { return newNumberType[int8](column_json.TypeIDInt8) }},
	{"Int16", storage.FieldTypeSmallInt, func(*registryConfig) LogicalType { return newNumberType[int16](column_json.TypeIDInt16) }},
	{"Int32", storage.FieldTypeInt, func(*registryConfig) LogicalType { return newNumberType[int32](column_json.TypeIDInt32) }},
	{"Int64", storage.FieldTypeBigInt, func(*registryConfig) LogicalType { return newNumberType[int64](column_json.TypeIDInt64) }},
	{"Int128", storage.FieldTypeLargeInt, func(*registryConfig) LogicalType { return newNumberType[Int128](column_json.TypeIDInt128) }},
	{"Float32", storage.FieldTypeFloat, func(*registryConfig) LogicalType { return newNumberType[float32](column_json.TypeIDFloat) }},
	{"Float64", storage.FieldTypeDouble, func(*registryConfig) LogicalType { return newNumberType[float64](column_json.TypeIDDouble) }},
	{"Date", storage.FieldTypeDate, func(*registryConfig) LogicalType { return &DateType{} }},
	{"DateTime", storage.FieldTypeDateTime, func(*registryConfig) LogicalType { return &DateTimeType{} }},
	{"String", storage.FieldTypeString, func(*registryConfig) LogicalType { return &StringType{} }},
	{"Decimal", storage.FieldTypeDecimal, func(cfg *registryConfig) LogicalType { return cfg.defaultDecimal }},
}

// primitiveNames resolves every storage kind that has a primitive logical type.
// Several storage kinds share one logical type.
var primitiveNames = func() map[storage.FieldType]string {
	m := make(map[storage.FieldType]string, len(primitiveEntries)+3)
	for _, e := range primitiveEntries {
		m[e.fieldType] = e.name
	}
	m[storage.FieldTypeBool] = "UInt8"
	m[storage.FieldTypeChar] = "String"
	m[storage.FieldTypeVarchar] = "String"
	return m
}()

type registryConfig struct {
	defaultDecimal *DecimalType
}

// RegistryOption configures a TypeRegistry built by NewTypeRegistry.
type RegistryOption func(*registryConfig) error

// WithDefaultDecimal sets the decimal registered under the canonical name
// "Decimal" and used for descriptors that carry no precision.
func WithDefaultDecimal(precision, scale int32) RegistryOption {
	return func(cfg *registryConfig) error {
		d, err := NewDecimalType(precision, scale)
		if err != nil {
			return err
		}
		cfg.defaultDecimal = d
		return nil
	}
}

// NewTypeRegistry builds an independent, fully populated registry. Consumers
// that receive a registry explicitly should prefer this over Instance, which
// mostly helps isolated tests.
func NewTypeRegistry(opts ...RegistryOption) (*TypeRegistry, error) {
	cfg := &registryConfig{
		defaultDecimal: &DecimalType{precision: DefaultDecimalPrecision, scale: DefaultDecimalScale},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("invalid registry option: %w", err)
		}
	}
	return populate(cfg)
}

// populate registers every primitive P under "P", "Array(P)" and
// "Array(Nullable(P))".
func populate(cfg *registryConfig) (*TypeRegistry, error) {
	r := &TypeRegistry{
		types:          make(map[string]LogicalType, 3*len(primitiveEntries)),
		defaultDecimal: cfg.defaultDecimal,
	}
	pairs := make([]utils.Pair[string, string], 0, 3*len(primitiveEntries))
	register := func(name string, t LogicalType) {
		r.types[name] = t
		pairs = append(pairs, utils.Pair[string, string]{Key: name, Value: t.Name()})
	}

	for _, e := range primitiveEntries {
		t := e.newType(cfg)
		register(e.name, t)
		register("Array("+e.name+")", NewArrayType(t))
		register("Array(Nullable("+e.name+"))", NewArrayType(NewNullableType(t)))
	}

	names, err := utils.NewBiMap(pairs...)
	if err != nil {
		return nil, fmt.Errorf("type registry: %w", err)
	}
	r.names = names
	log.Debug().Int("types", names.Len()).Msg("type registry populated")
	return r, nil
}

var (
	instance     *TypeRegistry
	instanceOnce sync.Once
	// populations counts executions of the guarded population in Instance.
	populations atomic.Int32
)

// Instance returns the process-wide registry with default options. The first
// call populates it; concurrent first callers block until population is done,
// and later calls read it without synchronization.
func Instance() *TypeRegistry {
	instanceOnce.Do(func() {
		populations.Add(1)
		r, err := populate(&registryConfig{
			defaultDecimal: &DecimalType{precision: DefaultDecimalPrecision, scale: DefaultDecimalScale},
		})
		if err != nil {
			// The default tables are fixed at compile time; a failure here is a bug.
			panic(err)
		}
		instance = r
	})
	return instance
}

// Get returns the type registered under a canonical name. It never adds entries.
func (r *TypeRegistry) Get(name string) (LogicalType, bool) {
	t, ok := r.types[name]
	return t, ok
}

// NameOf returns the canonical name of a type structurally equal to t, after
// removing a top-level Nullable wrapper.
func (r *TypeRegistry) NameOf(t LogicalType) (string, bool) {
	if t == nil {
		return "", false
	}
	return r.names.RLookup(RemoveNullable(t).Name())
}

// Names returns every canonical name in registration order.
func (r *TypeRegistry) Names() []string {
	return r.names.Keys()
}

// DefaultDecimal returns the decimal registered under "Decimal".
func (r *TypeRegistry) DefaultDecimal() *DecimalType {
	return r.defaultDecimal
}

// primitiveType resolves a storage kind to the registry's shared primitive
// instance. Every conversion entry point goes through here for scalars.
func (r *TypeRegistry) primitiveType(descriptor string, ft storage.FieldType) (LogicalType, error) {
	name, ok := primitiveNames[ft]
	if !ok {
		return nil, unsupported(descriptor, ft)
	}
	return r.types[name], nil
}
