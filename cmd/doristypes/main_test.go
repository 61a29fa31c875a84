package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-hulk/doris/column_json"
)

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"list"}, &out))

	assert.Contains(t, out.String(), "Array(Nullable(Decimal))")
	assert.Contains(t, out.String(), "Decimal(27, 9)")
	assert.Contains(t, out.String(), "Nullable(Decimal128)")
}

func TestRun_Type(t *testing.T) {
	t.Run("Nullable by default", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run([]string{"type", "ARRAY<INT>"}, &out))
		assert.Contains(t, out.String(), "type:      Nullable(Array(Nullable(Int32)))")
		assert.Contains(t, out.String(), "canonical: Array(Nullable(Int32))")
	})

	t.Run("Not null", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run([]string{"-not-null", "type", "DECIMAL(10,2)"}, &out))
		assert.Contains(t, out.String(), "type:      Decimal(10, 2)")
		assert.Contains(t, out.String(), "canonical: -")
		assert.Contains(t, out.String(), `"decimalParam":{"precision":10,"scale":2}`)
	})

	t.Run("Whitespace", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run([]string{"type", "ARRAY<\tINT\n>"}, &out))
		assert.Contains(t, out.String(), "type:      Nullable(Array(Nullable(Int32)))")
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := run([]string{"type", "BITMAP"}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestRun_DDL(t *testing.T) {
	const ddl = "CREATE TABLE users (id INT NOT NULL, name VARCHAR(20), PRIMARY KEY (id))"

	t.Run("Table", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run([]string{"ddl", ddl}, &out))
		assert.Contains(t, out.String(), `Table "users"`)
		assert.Contains(t, out.String(), "Nullable(String)")
	})

	t.Run("JSON", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, run([]string{"-json", "ddl", ddl}, &out))

		var metas []*column_json.ColumnMeta
		require.NoError(t, json.Unmarshal(out.Bytes(), &metas))
		require.Len(t, metas, 2)
		assert.Equal(t, "id INT32", metas[0].String())
		assert.Equal(t, "name STRING NULL", metas[1].String())
	})
}

var errClosed = errors.New("closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errClosed
}

func TestRun_WriteError(t *testing.T) {
	const ddl = "CREATE TABLE users (id INT NOT NULL)"
	assert.ErrorIs(t, run([]string{"ddl", ddl}, failingWriter{}), errClosed)
	assert.ErrorIs(t, run([]string{"-json", "ddl", ddl}, failingWriter{}), errClosed)
	assert.ErrorIs(t, run([]string{"type", "INT"}, failingWriter{}), errClosed)
}

func TestRun_Errors(t *testing.T) {
	assert.Error(t, run(nil, &bytes.Buffer{}))
	assert.Error(t, run([]string{"drop"}, &bytes.Buffer{}))
	assert.Error(t, run([]string{"type"}, &bytes.Buffer{}))
	assert.Error(t, run([]string{"ddl", "SELECT 1"}, &bytes.Buffer{}))
}
