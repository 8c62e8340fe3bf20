package source_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"

	"github.com/viant/tagmerge/merger"
	"github.com/viant/tagmerge/source"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	location := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(location, []byte(content), 0644))
	return location
}

func TestService_LoadAll(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "a.txt", "H a\n1 x\n2 y\n")
	second := writeFile(t, dir, "b.txt", "H b\n2 z\n3 w\n")

	srv := source.New(afs.New(), zerolog.Nop())
	table := merger.NewTable()
	err := srv.LoadAll(context.Background(), table, first, second)
	require.NoError(t, err)

	require.Len(t, table.Columns, 2)
	assert.Equal(t, first, table.Columns[0].Source)
	assert.Equal(t, []string{"ID\ta\tb", "1\tx\t0", "2\ty\tz", "3\t0\tw"}, table.Render())
}

func TestService_Load(t *testing.T) {
	dir := t.TempDir()
	srv := source.New(nil, zerolog.Nop())

	t.Run("missing source", func(t *testing.T) {
		table := merger.NewTable()
		_, err := srv.Load(context.Background(), table, filepath.Join(dir, "missing.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.txt")
		assert.Empty(t, table.Columns)
	})

	t.Run("malformed source", func(t *testing.T) {
		location := writeFile(t, dir, "bad.txt", "H a\n1 x\nfive y\n")
		table := merger.NewTable()
		_, err := srv.Load(context.Background(), table, location)
		require.Error(t, err)
		var parseErr *merger.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, location, parseErr.Source)
		assert.Equal(t, "five y", parseErr.Line)
		assert.Empty(t, table.IDs())
	})

	t.Run("stops at first failure", func(t *testing.T) {
		good := writeFile(t, dir, "good.txt", "H a\n1 x\n")
		table := merger.NewTable()
		err := srv.LoadAll(context.Background(), table, good, filepath.Join(dir, "missing.txt"), good)
		require.Error(t, err)
		assert.Len(t, table.Columns, 1)
	})
}

func TestService_Store(t *testing.T) {
	dir := t.TempDir()
	srv := source.New(afs.New(), zerolog.Nop())
	location := filepath.Join(dir, "merged.tsv")

	err := srv.Store(context.Background(), location, []byte("ID\ta\n1\tx\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "ID\ta\n1\tx\n", string(data))
}
