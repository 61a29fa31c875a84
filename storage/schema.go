// Package storage defines the column descriptors produced by the storage
// engine: the physical Field of a segment and the TabletColumn of a table schema.
package storage

import (
	"fmt"
	"strings"
)

// Field is the physical on-disk column descriptor of a segment. The physical
// format keeps null maps next to the data, so Field itself does not say whether
// the column is nullable.
type Field struct {
	Name      string    `json:"name"`
	Type      FieldType `json:"type"`
	Length    int32     `json:"length,omitempty"`
	Precision int32     `json:"precision,omitempty"`
	Scale     int32     `json:"scale,omitempty"`
	// Item describes the element of an ARRAY field.
	Item *Field `json:"item,omitempty"`
}

// TabletColumn is the logical table-schema column descriptor.
type TabletColumn struct {
	Name       string         `json:"name"`
	Type       FieldType      `json:"type"`
	IsNullable bool           `json:"isNullable"`
	IsKey      bool           `json:"isKey,omitempty"`
	Length     int32          `json:"length,omitempty"`
	Precision  int32          `json:"precision,omitempty"`
	Scale      int32          `json:"scale,omitempty"`
	Default    *string        `json:"default,omitempty"`
	Comment    string         `json:"comment,omitempty"`
	SubColumns []TabletColumn `json:"subColumns,omitempty"`
}

// TabletSchema is the ordered column list of one tablet.
type TabletSchema struct {
	Table   string         `json:"table"`
	Columns []TabletColumn `json:"columns"`
}

// Validate ensures the schema definition is sane.
func (ts TabletSchema) Validate() error {
	if strings.TrimSpace(ts.Table) == "" {
		return fmt.Errorf("table name is required")
	}
	if len(ts.Columns) == 0 {
		return fmt.Errorf("table %s must have at least one column", ts.Table)
	}
	seen := map[string]struct{}{}
	for _, col := range ts.Columns {
		if strings.TrimSpace(col.Name) == "" {
			return fmt.Errorf("table %s has a column without name", ts.Table)
		}
		lower := strings.ToLower(col.Name)
		if _, ok := seen[lower]; ok {
			return fmt.Errorf("duplicated column %s in table %s", col.Name, ts.Table)
		}
		seen[lower] = struct{}{}
		if col.Type == FieldTypeArray && len(col.SubColumns) != 1 {
			return fmt.Errorf("array column %s must have exactly one sub column", col.Name)
		}
	}
	return nil
}

// ColumnByName returns the schema entry for the requested column, ignoring case.
func (ts TabletSchema) ColumnByName(name string) (TabletColumn, bool) {
	for _, col := range ts.Columns {
		if strings.EqualFold(col.Name, name) {
			return col, true
		}
	}
	return TabletColumn{}, false
}

// ToField converts the logical column into its physical descriptor.
// Array sub columns become the field's Item.
func (c TabletColumn) ToField() Field {
	f := Field{
		Name:      c.Name,
		Type:      c.Type,
		Length:    c.Length,
		Precision: c.Precision,
		Scale:     c.Scale,
	}
	if len(c.SubColumns) > 0 {
		item := c.SubColumns[0].ToField()
		f.Item = &item
	}
	return f
}
