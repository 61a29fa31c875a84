package storage

import (
	"fmt"
	"strconv"

	"github.com/git-hulk/doris/utils"
)

// FieldType is the storage engine's primitive field-kind enumeration. Every
// descriptor shape is reduced to a FieldType before a logical type is chosen.
type FieldType int8

const (
	FieldTypeUnknown FieldType = iota
	FieldTypeTinyInt
	FieldTypeSmallInt
	FieldTypeInt
	FieldTypeBigInt
	FieldTypeLargeInt
	FieldTypeUnsignedTinyInt
	FieldTypeUnsignedSmallInt
	FieldTypeUnsignedInt
	FieldTypeUnsignedBigInt
	FieldTypeBool
	FieldTypeFloat
	FieldTypeDouble
	FieldTypeDate
	FieldTypeDateTime
	FieldTypeChar
	FieldTypeVarchar
	FieldTypeString
	FieldTypeDecimal
	FieldTypeArray
	// Kinds below are stored by the engine but have no vectorized logical type here.
	FieldTypeHLL
	FieldTypeObject
	FieldTypeStruct
	FieldTypeMap
)

var fieldTypeMap = utils.MustBiMap(
	utils.Pair[FieldType, string]{Key: FieldTypeUnknown, Value: "UNKNOWN"},
	utils.Pair[FieldType, string]{Key: FieldTypeTinyInt, Value: "TINYINT"},
	utils.Pair[FieldType, string]{Key: FieldTypeSmallInt, Value: "SMALLINT"},
	utils.Pair[FieldType, string]{Key: FieldTypeInt, Value: "INT"},
	utils.Pair[FieldType, string]{Key: FieldTypeBigInt, Value: "BIGINT"},
	utils.Pair[FieldType, string]{Key: FieldTypeLargeInt, Value: "LARGEINT"},
	utils.Pair[FieldType, string]{Key: FieldTypeUnsignedTinyInt, Value: "UNSIGNED_TINYINT"},
	utils.Pair[FieldType, string]{Key: FieldTypeUnsignedSmallInt, Value: "UNSIGNED_SMALLINT"},
	utils.Pair[FieldType, string]{Key: FieldTypeUnsignedInt, Value: "UNSIGNED_INT"},
	utils.Pair[FieldType, string]{Key: FieldTypeUnsignedBigInt, Value: "UNSIGNED_BIGINT"},
	utils.Pair[FieldType, string]{Key: FieldTypeBool, Value: "BOOLEAN"},
	utils.Pair[FieldType, string]{Key: FieldTypeFloat, Value: "FLOAT"},
	utils.Pair[FieldType, string]{Key: FieldTypeDouble, Value: "DOUBLE"},
	utils.Pair[FieldType, string]{Key: FieldTypeDate, Value: "DATE"},
	utils.Pair[FieldType, string]{Key: FieldTypeDateTime, Value: "DATETIME"},
	utils.Pair[FieldType, string]{Key: FieldTypeChar, Value: "CHAR"},
	utils.Pair[FieldType, string]{Key: FieldTypeVarchar, Value: "VARCHAR"},
	utils.Pair[FieldType, string]{Key: FieldTypeString, Value: "STRING"},
	utils.Pair[FieldType, string]{Key: FieldTypeDecimal, Value: "DECIMAL"},
	utils.Pair[FieldType, string]{Key: FieldTypeArray, Value: "ARRAY"},
	utils.Pair[FieldType, string]{Key: FieldTypeHLL, Value: "HLL"},
	utils.Pair[FieldType, string]{Key: FieldTypeObject, Value: "OBJECT"},
	utils.Pair[FieldType, string]{Key: FieldTypeStruct, Value: "STRUCT"},
	utils.Pair[FieldType, string]{Key: FieldTypeMap, Value: "MAP"},
)

// String returns the string representation of the FieldType.
func (t FieldType) String() string {
	if value, ok := fieldTypeMap.Lookup(t); ok {
		return value
	}
	return strconv.Itoa(int(t))
}

// ParseFieldType parses a string into a FieldType.
// If the string is unknown, it returns FieldTypeUnknown and an error.
func ParseFieldType(str string) (FieldType, error) {
	if key, ok := fieldTypeMap.RLookup(str); ok {
		return key, nil
	}
	return FieldTypeUnknown, fmt.Errorf("unknown FieldType string %s", str)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t FieldType) MarshalText() ([]byte, error) {
	if value, ok := fieldTypeMap.Lookup(t); ok {
		return []byte(value), nil
	}
	return nil, fmt.Errorf("unknown FieldType %d", int(t))
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *FieldType) UnmarshalText(text []byte) error {
	var err error
	*t, err = ParseFieldType(string(text))
	return err
}
