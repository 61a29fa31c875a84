package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xwb1989/sqlparser"
)

// ParseCreateTable derives a TabletSchema from a CREATE TABLE statement.
// Columns are nullable unless declared NOT NULL, and primary key columns are
// flagged as keys.
func ParseCreateTable(ddl string) (TabletSchema, error) {
	stmt, err := sqlparser.Parse(ddl)
	if err != nil {
		return TabletSchema{}, fmt.Errorf("failed to parse DDL: %w", err)
	}

	create, ok := stmt.(*sqlparser.DDL)
	if !ok || create.Action != sqlparser.CreateStr {
		return TabletSchema{}, fmt.Errorf("only CREATE TABLE statements are supported")
	}
	if create.TableSpec == nil {
		return TabletSchema{}, fmt.Errorf("CREATE TABLE %s has no column definitions", create.Table.Name.String())
	}

	keys := primaryKeyColumns(create.TableSpec)
	schema := TabletSchema{
		Table:   create.Table.Name.String(),
		Columns: make([]TabletColumn, 0, len(create.TableSpec.Columns)),
	}
	for _, def := range create.TableSpec.Columns {
		col, err := convertColumnDefinition(def)
		if err != nil {
			return TabletSchema{}, fmt.Errorf("table %s: %w", schema.Table, err)
		}
		_, col.IsKey = keys[strings.ToLower(col.Name)]
		schema.Columns = append(schema.Columns, col)
	}

	if err := schema.Validate(); err != nil {
		return TabletSchema{}, err
	}
	return schema, nil
}

func primaryKeyColumns(spec *sqlparser.TableSpec) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, idx := range spec.Indexes {
		if idx.Info == nil || !idx.Info.Primary {
			continue
		}
		for _, c := range idx.Columns {
			keys[strings.ToLower(c.Column.String())] = struct{}{}
		}
	}
	return keys
}

func convertColumnDefinition(def *sqlparser.ColumnDefinition) (TabletColumn, error) {
	ct := def.Type
	col := TabletColumn{
		Name:       def.Name.String(),
		IsNullable: !bool(ct.NotNull),
	}

	ft, err := fieldTypeForSQLType(strings.ToLower(ct.Type), bool(ct.Unsigned))
	if err != nil {
		return TabletColumn{}, fmt.Errorf("column %s: %w", col.Name, err)
	}
	col.Type = ft

	if ct.Length != nil {
		n, err := sqlValInt32(ct.Length)
		if err != nil {
			return TabletColumn{}, fmt.Errorf("column %s: invalid length: %w", col.Name, err)
		}
		if ft == FieldTypeDecimal {
			col.Precision = n
		} else {
			col.Length = n
		}
	}
	if ct.Scale != nil {
		n, err := sqlValInt32(ct.Scale)
		if err != nil {
			return TabletColumn{}, fmt.Errorf("column %s: invalid scale: %w", col.Name, err)
		}
		col.Scale = n
	}
	if ct.Default != nil {
		v := string(ct.Default.Val)
		col.Default = &v
	}
	if ct.Comment != nil {
		col.Comment = string(ct.Comment.Val)
	}
	return col, nil
}

// fieldTypeForSQLType maps a MySQL-dialect column type keyword to a FieldType.
func fieldTypeForSQLType(sqlType string, unsigned bool) (FieldType, error) {
	switch sqlType {
	case "tinyint":
		if unsigned {
			return FieldTypeUnsignedTinyInt, nil
		}
		return FieldTypeTinyInt, nil
	case "smallint":
		if unsigned {
			return FieldTypeUnsignedSmallInt, nil
		}
		return FieldTypeSmallInt, nil
	case "int", "integer", "mediumint":
		if unsigned {
			return FieldTypeUnsignedInt, nil
		}
		return FieldTypeInt, nil
	case "bigint":
		if unsigned {
			return FieldTypeUnsignedBigInt, nil
		}
		return FieldTypeBigInt, nil
	case "bool", "boolean":
		return FieldTypeBool, nil
	case "float", "real":
		return FieldTypeFloat, nil
	case "double":
		return FieldTypeDouble, nil
	case "decimal", "numeric":
		return FieldTypeDecimal, nil
	case "date":
		return FieldTypeDate, nil
	case "datetime", "timestamp":
		return FieldTypeDateTime, nil
	case "char":
		return FieldTypeChar, nil
	case "varchar":
		return FieldTypeVarchar, nil
	case "text", "tinytext", "mediumtext", "longtext":
		return FieldTypeString, nil
	default:
		return FieldTypeUnknown, fmt.Errorf("unsupported column type %q", sqlType)
	}
}

func sqlValInt32(v *sqlparser.SQLVal) (int32, error) {
	n, err := strconv.ParseInt(string(v.Val), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}
