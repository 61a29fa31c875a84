// Command doristypes inspects the type registry and resolves type strings and
// CREATE TABLE statements into logical types and wire metadata.
//
// Usage:
//
//	doristypes [-v] list
//	doristypes [-v] [-not-null] type 'ARRAY<DECIMAL(10,2)>'
//	doristypes [-v] [-json] ddl 'CREATE TABLE t (id INT NOT NULL, name VARCHAR(20))'
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/git-hulk/doris"
	"github.com/git-hulk/doris/column_json"
	"github.com/git-hulk/doris/storage"
)

type options struct {
	verbose bool
	notNull bool
	json    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("doristypes failed")
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("doristypes", flag.ContinueOnError)
	var opts options
	fs.BoolVar(&opts.verbose, "v", false, "Enable debug logging.")
	fs.BoolVar(&opts.notNull, "not-null", false, "Resolve a type string as NOT NULL at the top level.")
	fs.BoolVar(&opts.json, "json", false, "Print column metadata as JSON instead of a table.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	if fs.NArg() == 0 {
		return fmt.Errorf("missing command, expected one of: list, type, ddl")
	}
	r := doris.Instance()
	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "list":
		return listTypes(r, out)
	case "type":
		if len(rest) != 1 {
			return fmt.Errorf("type expects one type string")
		}
		return resolveType(r, rest[0], !opts.notNull, out)
	case "ddl":
		if len(rest) != 1 {
			return fmt.Errorf("ddl expects one CREATE TABLE statement")
		}
		return describeTable(r, rest[0], opts.json, out)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	return table
}

func listTypes(r *doris.TypeRegistry, out io.Writer) error {
	table := newTable(out, "Name", "Signature", "Column", "Arrow")
	for _, name := range r.Names() {
		t, _ := r.Get(name)
		arrowType := "-"
		if dt, err := doris.ArrowType(t); err == nil {
			arrowType = dt.String()
		}
		table.Append([]string{name, t.Name(), t.CreateColumn().Name(), arrowType})
	}
	table.Render()
	return nil
}

func canonicalName(r *doris.TypeRegistry, t doris.LogicalType) string {
	if name, ok := r.NameOf(t); ok {
		return name
	}
	return "-"
}

func resolveType(r *doris.TypeRegistry, input string, nullable bool, out io.Writer) error {
	d, err := doris.ParseTypeDescriptor(input)
	if err != nil {
		return err
	}
	t, err := r.CreateFromTypeDescriptor(d, nullable)
	if err != nil {
		return err
	}
	log.Debug().Str("descriptor", d.String()).Str("type", t.Name()).Msg("resolved type")

	meta := &column_json.ColumnMeta{}
	t.ToColumnMeta(meta)
	data, err := column_json.Marshal(meta)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "type:      %s\ncanonical: %s\nmeta:      %s\n", t.Name(), canonicalName(r, t), data)
	return err
}

func describeTable(r *doris.TypeRegistry, ddl string, asJSON bool, out io.Writer) error {
	schema, err := storage.ParseCreateTable(ddl)
	if err != nil {
		return err
	}

	metas := make([]*column_json.ColumnMeta, 0, len(schema.Columns))
	rows := make([][]string, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		t, err := r.CreateFromTabletColumn(col, col.IsNullable)
		if err != nil {
			return fmt.Errorf("column %s: %w", col.Name, err)
		}
		meta := &column_json.ColumnMeta{}
		if err := (doris.TypedColumn{Name: col.Name, Type: t}).ToColumnMeta(meta); err != nil {
			return err
		}
		metas = append(metas, meta)
		rows = append(rows, []string{col.Name, col.Type.String(), t.Name(), canonicalName(r, t), strconv.FormatBool(col.IsKey)})
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(metas)
	}
	if _, err := fmt.Fprintf(out, "Table %q\n", schema.Table); err != nil {
		return err
	}
	table := newTable(out, "Column", "Storage", "Type", "Canonical", "Key")
	table.AppendBulk(rows)
	table.Render()
	return nil
}
