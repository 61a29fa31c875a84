package doris

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/git-hulk/doris/utils"
)

// PrimitiveType is the kind of a TypeDescriptor.
type PrimitiveType int8

const (
	PrimitiveInvalid PrimitiveType = iota
	PrimitiveNull
	PrimitiveBoolean
	PrimitiveTinyInt
	PrimitiveSmallInt
	PrimitiveInt
	PrimitiveBigInt
	PrimitiveLargeInt
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveDate
	PrimitiveDateTime
	PrimitiveChar
	PrimitiveVarchar
	PrimitiveString
	PrimitiveDecimal
	PrimitiveArray
	PrimitiveTime
	PrimitiveHLL
	PrimitiveBitmap
)

var primitiveTypeMap = utils.MustBiMap(
	utils.Pair[PrimitiveType, string]{Key: PrimitiveInvalid, Value: "INVALID"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveNull, Value: "NULL"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveBoolean, Value: "BOOLEAN"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveTinyInt, Value: "TINYINT"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveSmallInt, Value: "SMALLINT"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveInt, Value: "INT"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveBigInt, Value: "BIGINT"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveLargeInt, Value: "LARGEINT"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveFloat, Value: "FLOAT"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveDouble, Value: "DOUBLE"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveDate, Value: "DATE"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveDateTime, Value: "DATETIME"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveChar, Value: "CHAR"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveVarchar, Value: "VARCHAR"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveString, Value: "STRING"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveDecimal, Value: "DECIMAL"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveArray, Value: "ARRAY"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveTime, Value: "TIME"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveHLL, Value: "HLL"},
	utils.Pair[PrimitiveType, string]{Key: PrimitiveBitmap, Value: "BITMAP"},
)

// aliases accepted by ParseTypeDescriptor in addition to the canonical names.
var primitiveAliases = map[string]PrimitiveType{
	"BOOL":      PrimitiveBoolean,
	"INTEGER":   PrimitiveInt,
	"DECIMALV2": PrimitiveDecimal,
	"TEXT":      PrimitiveString,
}

// String returns the string representation of the PrimitiveType.
func (p PrimitiveType) String() string {
	if value, ok := primitiveTypeMap.Lookup(p); ok {
		return value
	}
	return strconv.Itoa(int(p))
}

// ParsePrimitiveType parses a type keyword, case-insensitively.
func ParsePrimitiveType(str string) (PrimitiveType, error) {
	upper := strings.ToUpper(strings.TrimSpace(str))
	if key, ok := primitiveTypeMap.RLookup(upper); ok {
		return key, nil
	}
	if key, ok := primitiveAliases[upper]; ok {
		return key, nil
	}
	return PrimitiveInvalid, fmt.Errorf("unknown PrimitiveType string %s", str)
}

// TypeDescriptor is the engine-level description of a slot type, as the
// planner hands it to the execution layer.
type TypeDescriptor struct {
	Type      PrimitiveType
	Len       int32 // CHAR/VARCHAR length
	Precision int32
	Scale     int32
	// Children holds the element descriptor of an ARRAY.
	Children []TypeDescriptor
	// ContainsNull reports whether ARRAY elements may be NULL.
	ContainsNull bool
}

// String renders the descriptor in the syntax ParseTypeDescriptor accepts.
func (d TypeDescriptor) String() string {
	switch d.Type {
	case PrimitiveChar, PrimitiveVarchar:
		if d.Len > 0 {
			return fmt.Sprintf("%s(%d)", d.Type, d.Len)
		}
	case PrimitiveDecimal:
		if d.Precision > 0 {
			return fmt.Sprintf("%s(%d,%d)", d.Type, d.Precision, d.Scale)
		}
	case PrimitiveArray:
		if len(d.Children) == 1 {
			elem := d.Children[0].String()
			if !d.ContainsNull {
				elem += " NOT NULL"
			}
			return "ARRAY<" + elem + ">"
		}
	}
	return d.Type.String()
}

// ParseTypeDescriptor parses a type string such as "INT", "VARCHAR(20)",
// "DECIMAL(10,2)" or "ARRAY<ARRAY<DOUBLE> NOT NULL>". Array elements may be
// NULL unless followed by NOT NULL. A bare DECIMAL leaves precision and scale
// at zero so that the registry resolves it to its default decimal.
func ParseTypeDescriptor(s string) (TypeDescriptor, error) {
	p := &typeParser{input: s}
	d, err := p.parseType()
	if err != nil {
		return TypeDescriptor{}, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return TypeDescriptor{}, p.errorf("unexpected %q", p.input[p.pos:])
	}
	return d, nil
}

type typeParser struct {
	input string
	pos   int
}

func (p *typeParser) errorf(format string, args ...any) error {
	return fmt.Errorf("invalid type %q at offset %d: %s", p.input, p.pos, fmt.Sprintf(format, args...))
}

func (p *typeParser) skipSpaces() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func (p *typeParser) word() string {
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if !(ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '_') {
			break
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *typeParser) consume(ch byte) bool {
	p.skipSpaces()
	if p.pos < len(p.input) && p.input[p.pos] == ch {
		p.pos++
		return true
	}
	return false
}

func (p *typeParser) parseType() (TypeDescriptor, error) {
	name := p.word()
	if name == "" {
		return TypeDescriptor{}, p.errorf("expected a type name")
	}
	prim, err := ParsePrimitiveType(name)
	if err != nil {
		return TypeDescriptor{}, p.errorf("%v", err)
	}
	d := TypeDescriptor{Type: prim}

	switch prim {
	case PrimitiveArray:
		if !p.consume('<') {
			return TypeDescriptor{}, p.errorf("ARRAY needs an element type")
		}
		elem, err := p.parseType()
		if err != nil {
			return TypeDescriptor{}, err
		}
		d.Children = []TypeDescriptor{elem}
		d.ContainsNull = !p.notNull()
		if !p.consume('>') {
			return TypeDescriptor{}, p.errorf("expected '>'")
		}
	case PrimitiveDecimal:
		if args, err := p.arguments(); err != nil {
			return TypeDescriptor{}, err
		} else if len(args) > 2 {
			return TypeDescriptor{}, p.errorf("DECIMAL takes at most 2 arguments")
		} else if len(args) > 0 {
			d.Precision, d.Scale = args[0], 0
			if len(args) == 2 {
				d.Scale = args[1]
			}
		}
	case PrimitiveChar, PrimitiveVarchar:
		args, err := p.arguments()
		if err != nil {
			return TypeDescriptor{}, err
		}
		if len(args) > 1 {
			return TypeDescriptor{}, p.errorf("%s takes at most 1 argument", prim)
		}
		if len(args) == 1 {
			d.Len = args[0]
		}
	}
	return d, nil
}

// notNull consumes an optional NOT NULL suffix.
func (p *typeParser) notNull() bool {
	save := p.pos
	if strings.EqualFold(p.word(), "NOT") && strings.EqualFold(p.word(), "NULL") {
		return true
	}
	p.pos = save
	return false
}

// arguments parses an optional "(n[, m...])" list.
func (p *typeParser) arguments() ([]int32, error) {
	if !p.consume('(') {
		return nil, nil
	}
	var args []int32
	for {
		w := p.word()
		n, err := strconv.ParseInt(w, 10, 32)
		if err != nil {
			return nil, p.errorf("expected a number, got %q", w)
		}
		args = append(args, int32(n))
		if p.consume(')') {
			return args, nil
		}
		if !p.consume(',') {
			return nil, p.errorf("expected ',' or ')'")
		}
	}
}
