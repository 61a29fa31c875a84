// Package column_json holds the wire metadata record that describes the schema
// of one batch column: its name and a recursive type descriptor.
package column_json

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecimalParam carries the precision and scale of a DECIMAL128 column.
type DecimalParam struct {
	Precision int32 `json:"precision"`
	Scale     int32 `json:"scale"`
}

// ColumnMeta describes a column on the wire. Composite types (LIST) keep their
// element descriptor in Children; nullability is recorded on every level.
type ColumnMeta struct {
	Name         string        `json:"name,omitempty"`
	Type         TypeID        `json:"type"`
	IsNullable   bool          `json:"isNullable"`
	DecimalParam *DecimalParam `json:"decimalParam,omitempty"`
	Children     []*ColumnMeta `json:"children,omitempty"`
}

// AddChild appends an empty child record and returns it for the caller to fill.
func (m *ColumnMeta) AddChild() *ColumnMeta {
	child := new(ColumnMeta)
	m.Children = append(m.Children, child)
	return child
}

// Validate checks the structural rules a reader relies on: a LIST has exactly
// one child, a DECIMAL128 has its parameters, and scalars have no children.
func (m *ColumnMeta) Validate() error {
	if m == nil {
		return fmt.Errorf("nil ColumnMeta")
	}
	switch m.Type {
	case TypeIDUnknown:
		return fmt.Errorf("column %q has no type", m.Name)
	case TypeIDList:
		if len(m.Children) != 1 {
			return fmt.Errorf("column %q: LIST expects 1 child, got %d", m.Name, len(m.Children))
		}
		return m.Children[0].Validate()
	case TypeIDDecimal128:
		if m.DecimalParam == nil {
			return fmt.Errorf("column %q: DECIMAL128 without decimalParam", m.Name)
		}
	}
	if m.Type != TypeIDList && len(m.Children) > 0 {
		return fmt.Errorf("column %q: %s cannot have children", m.Name, m.Type)
	}
	return nil
}

// String renders the descriptor compactly, e.g. "c1 LIST<INT32 NULL>".
func (m *ColumnMeta) String() string {
	if m == nil {
		return "nil ColumnMeta"
	}
	var sb strings.Builder
	if m.Name != "" {
		sb.WriteString(m.Name)
		sb.WriteByte(' ')
	}
	m.writeType(&sb)
	return sb.String()
}

func (m *ColumnMeta) writeType(sb *strings.Builder) {
	sb.WriteString(m.Type.String())
	if m.DecimalParam != nil {
		fmt.Fprintf(sb, "(%d,%d)", m.DecimalParam.Precision, m.DecimalParam.Scale)
	}
	if len(m.Children) > 0 {
		sb.WriteByte('<')
		for i, c := range m.Children {
			if i > 0 {
				sb.WriteString(", ")
			}
			c.writeType(sb)
		}
		sb.WriteByte('>')
	}
	if m.IsNullable {
		sb.WriteString(" NULL")
	}
}

// Marshal encodes the record as JSON.
func Marshal(m *ColumnMeta) ([]byte, error) {
	return json.Marshal(m)
}

// Unmarshal decodes a JSON record and validates it.
func Unmarshal(data []byte) (*ColumnMeta, error) {
	m := new(ColumnMeta)
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("cannot unmarshal column meta: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
