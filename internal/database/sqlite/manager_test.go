package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = []Column{
	{Name: "id", Definition: "integer primary key autoincrement"},
	{Name: "title", Definition: "text not null"},
	{Name: "notes", Definition: "text"},
}

func openTemp(t *testing.T) *Manager {
	t.Helper()
	m, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { m.Close() })
	require.NoError(t, m.CreateTable(context.Background(), "items", testColumns))
	return m
}

func TestManager_CreateTableIsIdempotent(t *testing.T) {
	m := openTemp(t)
	assert.NoError(t, m.CreateTable(context.Background(), "items", testColumns))
}

func TestManager_AddAndSelect(t *testing.T) {
	m := openTemp(t)
	ctx := context.Background()

	id1, err := m.Add(ctx, "items", map[string]any{"title": "b", "notes": "second"})
	require.NoError(t, err)
	id2, err := m.Add(ctx, "items", map[string]any{"title": "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id1)
	assert.Equal(t, int64(2), id2)

	all, err := m.Select(ctx, "items", nil, "title")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0]["title"])
	assert.Nil(t, all[0]["notes"])
	assert.Equal(t, int64(1), all[1]["id"])

	one, err := m.Select(ctx, "items", map[string]any{"id": id1}, "")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "second", one[0]["notes"])
}

func TestManager_Update(t *testing.T) {
	m := openTemp(t)
	ctx := context.Background()
	id, err := m.Add(ctx, "items", map[string]any{"title": "old"})
	require.NoError(t, err)

	n, err := m.Update(ctx, "items", map[string]any{"id": id}, map[string]any{"title": "new", "notes": "n"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = m.Update(ctx, "items", map[string]any{"id": 999}, map[string]any{"title": "ghost"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	rows, err := m.Select(ctx, "items", map[string]any{"id": id}, "")
	require.NoError(t, err)
	assert.Equal(t, "new", rows[0]["title"])
	assert.Equal(t, "n", rows[0]["notes"])
}

func TestManager_Delete(t *testing.T) {
	m := openTemp(t)
	ctx := context.Background()
	id, err := m.Add(ctx, "items", map[string]any{"title": "gone"})
	require.NoError(t, err)

	n, err := m.Delete(ctx, "items", map[string]any{"id": id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rows, err := m.Select(ctx, "items", nil, "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestManager_Guards(t *testing.T) {
	m := openTemp(t)
	ctx := context.Background()

	_, err := m.Add(ctx, "items; DROP TABLE items", map[string]any{"title": "x"})
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	_, err = m.Add(ctx, "items", map[string]any{"title) VALUES ('x'); --": "x"})
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	_, err = m.Select(ctx, "items", nil, "title DESC")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	_, err = m.Delete(ctx, "items", nil)
	assert.ErrorIs(t, err, ErrNoCriteria)

	_, err = m.Update(ctx, "items", map[string]any{"id": 1}, nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = m.Add(ctx, "items", nil)
	assert.ErrorIs(t, err, ErrNoData)
}
