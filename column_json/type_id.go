package column_json

import (
	"fmt"
	"strconv"

	"github.com/git-hulk/doris/utils"
)

// TypeID identifies the logical kind carried by a ColumnMeta record.
type TypeID int8

const (
	// TypeIDUnknown is the zero value and never written by a valid type.
	TypeIDUnknown TypeID = iota
	TypeIDUInt8
	TypeIDUInt16
	TypeIDUInt32
	TypeIDUInt64
	TypeIDInt8
	TypeIDInt16
	TypeIDInt32
	TypeIDInt64
	TypeIDInt128
	TypeIDFloat
	TypeIDDouble
	TypeIDBoolean
	TypeIDDate
	TypeIDDateTime
	TypeIDString
	TypeIDDecimal128
	TypeIDList
	TypeIDNothing
)

var typeIDMap = utils.MustBiMap(
	utils.Pair[TypeID, string]{Key: TypeIDUnknown, Value: "UNKNOWN"},
	utils.Pair[TypeID, string]{Key: TypeIDUInt8, Value: "UINT8"},
	utils.Pair[TypeID, string]{Key: TypeIDUInt16, Value: "UINT16"},
	utils.Pair[TypeID, string]{Key: TypeIDUInt32, Value: "UINT32"},
	utils.Pair[TypeID, string]{Key: TypeIDUInt64, Value: "UINT64"},
	utils.Pair[TypeID, string]{Key: TypeIDInt8, Value: "INT8"},
	utils.Pair[TypeID, string]{Key: TypeIDInt16, Value: "INT16"},
	utils.Pair[TypeID, string]{Key: TypeIDInt32, Value: "INT32"},
	utils.Pair[TypeID, string]{Key: TypeIDInt64, Value: "INT64"},
	utils.Pair[TypeID, string]{Key: TypeIDInt128, Value: "INT128"},
	utils.Pair[TypeID, string]{Key: TypeIDFloat, Value: "FLOAT"},
	utils.Pair[TypeID, string]{Key: TypeIDDouble, Value: "DOUBLE"},
	utils.Pair[TypeID, string]{Key: TypeIDBoolean, Value: "BOOLEAN"},
	utils.Pair[TypeID, string]{Key: TypeIDDate, Value: "DATE"},
	utils.Pair[TypeID, string]{Key: TypeIDDateTime, Value: "DATETIME"},
	utils.Pair[TypeID, string]{Key: TypeIDString, Value: "STRING"},
	utils.Pair[TypeID, string]{Key: TypeIDDecimal128, Value: "DECIMAL128"},
	utils.Pair[TypeID, string]{Key: TypeIDList, Value: "LIST"},
	utils.Pair[TypeID, string]{Key: TypeIDNothing, Value: "NOTHING"},
)

// String returns the wire name of the TypeID, or its number if unknown.
func (id TypeID) String() string {
	if value, ok := typeIDMap.Lookup(id); ok {
		return value
	}
	return strconv.Itoa(int(id))
}

// ParseTypeID parses a wire name into a TypeID.
// If the string is unknown, it returns TypeIDUnknown and an error.
func ParseTypeID(str string) (TypeID, error) {
	if key, ok := typeIDMap.RLookup(str); ok {
		return key, nil
	}
	return TypeIDUnknown, fmt.Errorf("unknown TypeID string %s", str)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (id TypeID) MarshalText() ([]byte, error) {
	if value, ok := typeIDMap.Lookup(id); ok {
		return []byte(value), nil
	}
	return nil, fmt.Errorf("unknown TypeID %d", int(id))
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (id *TypeID) UnmarshalText(text []byte) error {
	var err error
	*id, err = ParseTypeID(string(text))
	return err
}
