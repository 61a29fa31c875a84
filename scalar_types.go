package doris

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/git-hulk/doris/column_json"
)

// --- Numbers ---

// NumberType is an integer or floating point type backed by ColumnVector[T].
type NumberType[T Element] struct {
	typeID column_json.TypeID
}

func newNumberType[T Element](id column_json.TypeID) *NumberType[T] {
	return &NumberType[T]{typeID: id}
}

func (t *NumberType[T]) Name() string                  { return elementName[T]() }
func (t *NumberType[T]) Equals(other LogicalType) bool { return equalNames(t, other) }
func (t *NumberType[T]) IsNullable() bool              { return false }
func (t *NumberType[T]) CreateColumn() ColumnStore     { return NewColumnVector[T]() }

func (t *NumberType[T]) ToString(col ColumnStore, row int) (string, error) {
	c, err := columnAt[*ColumnVector[T]](t, col, row)
	if err != nil {
		return "", err
	}
	return formatNumber(c.Get(row)), nil
}

func (t *NumberType[T]) ToColumnMeta(meta *column_json.ColumnMeta) {
	meta.Type = t.typeID
}

func formatNumber[T Element](v T) string {
	switch x := any(v).(type) {
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case Int128:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// --- Date and DateTime ---

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
	secondsPerDay  = 24 * 60 * 60
)

// DateType is a calendar date stored as days since 1970-01-01.
type DateType struct{}

func (t *DateType) Name() string                  { return "Date" }
func (t *DateType) Equals(other LogicalType) bool { return equalNames(t, other) }
func (t *DateType) IsNullable() bool              { return false }
func (t *DateType) CreateColumn() ColumnStore     { return NewColumnVector[int32]() }

func (t *DateType) ToString(col ColumnStore, row int) (string, error) {
	c, err := columnAt[*ColumnVector[int32]](t, col, row)
	if err != nil {
		return "", err
	}
	return time.Unix(int64(c.Get(row))*secondsPerDay, 0).UTC().Format(dateLayout), nil
}

func (t *DateType) ToColumnMeta(meta *column_json.ColumnMeta) {
	meta.Type = column_json.TypeIDDate
}

// DateValue converts a date into the stored day number.
func DateValue(d time.Time) int32 {
	y, m, day := d.Date()
	return int32(time.Date(y, m, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

// DateTimeType is a UTC timestamp with second precision stored as Unix seconds.
type DateTimeType struct{}

func (t *DateTimeType) Name() string                  { return "DateTime" }
func (t *DateTimeType) Equals(other LogicalType) bool { return equalNames(t, other) }
func (t *DateTimeType) IsNullable() bool              { return false }
func (t *DateTimeType) CreateColumn() ColumnStore     { return NewColumnVector[int64]() }

func (t *DateTimeType) ToString(col ColumnStore, row int) (string, error) {
	c, err := columnAt[*ColumnVector[int64]](t, col, row)
	if err != nil {
		return "", err
	}
	return time.Unix(c.Get(row), 0).UTC().Format(dateTimeLayout), nil
}

func (t *DateTimeType) ToColumnMeta(meta *column_json.ColumnMeta) {
	meta.Type = column_json.TypeIDDateTime
}

// --- String ---

// StringType is a variable-length byte string.
type StringType struct{}

func (t *StringType) Name() string                  { return "String" }
func (t *StringType) Equals(other LogicalType) bool { return equalNames(t, other) }
func (t *StringType) IsNullable() bool              { return false }
func (t *StringType) CreateColumn() ColumnStore     { return NewColumnString() }

func (t *StringType) ToString(col ColumnStore, row int) (string, error) {
	c, err := columnAt[*ColumnString](t, col, row)
	if err != nil {
		return "", err
	}
	return c.Get(row), nil
}

func (t *StringType) ToColumnMeta(meta *column_json.ColumnMeta) {
	meta.Type = column_json.TypeIDString
}

// --- Decimal ---

const (
	// MaxDecimalPrecision is the widest precision a 128-bit decimal can hold.
	MaxDecimalPrecision = 38

	DefaultDecimalPrecision = 27
	DefaultDecimalScale     = 9
)

// DecimalType is a fixed-point number with the given precision and scale,
// stored as an unscaled Int128.
type DecimalType struct {
	precision int32
	scale     int32
}

// NewDecimalType validates precision and scale.
func NewDecimalType(precision, scale int32) (*DecimalType, error) {
	if precision < 1 || precision > MaxDecimalPrecision {
		return nil, fmt.Errorf("%w: decimal precision %d not in [1, %d]", ErrPrecondition, precision, MaxDecimalPrecision)
	}
	if scale < 0 || scale > precision {
		return nil, fmt.Errorf("%w: decimal scale %d not in [0, %d]", ErrPrecondition, scale, precision)
	}
	return &DecimalType{precision: precision, scale: scale}, nil
}

func (t *DecimalType) Name() string                  { return fmt.Sprintf("Decimal(%d, %d)", t.precision, t.scale) }
func (t *DecimalType) Equals(other LogicalType) bool { return equalNames(t, other) }
func (t *DecimalType) IsNullable() bool              { return false }
func (t *DecimalType) Precision() int32              { return t.precision }
func (t *DecimalType) Scale() int32                  { return t.scale }
func (t *DecimalType) CreateColumn() ColumnStore     { return NewColumnDecimal(t.scale) }

func (t *DecimalType) ToString(col ColumnStore, row int) (string, error) {
	c, err := columnAt[*ColumnDecimal](t, col, row)
	if err != nil {
		return "", err
	}
	return decimal.NewFromBigInt(c.Get(row).Big(), -t.scale).StringFixed(t.scale), nil
}

func (t *DecimalType) ToColumnMeta(meta *column_json.ColumnMeta) {
	meta.Type = column_json.TypeIDDecimal128
	meta.DecimalParam = &column_json.DecimalParam{Precision: t.precision, Scale: t.scale}
}

// ParseDecimal converts text into the unscaled value of t, rounding half away
// from zero to t's scale.
func (t *DecimalType) ParseDecimal(s string) (Int128, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Int128{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	unscaled := d.Round(t.scale).Shift(t.scale).BigInt()
	if digits := len(new(big.Int).Abs(unscaled).String()); digits > int(t.precision) {
		return Int128{}, fmt.Errorf("decimal %q exceeds precision %d", s, t.precision)
	}
	return Int128FromBig(unscaled)
}
