package checker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MimeLyc/agui-go/internal/persistence"
)

const validPayload = `{
	"threadId": "thread-1",
	"runId": "run-1",
	"state": null,
	"messages": [{"id": "m1", "role": "user", "content": "hi"}],
	"tools": [],
	"context": [],
	"forwardedProps": null
}`

const invalidPayload = `{
	"threadId": "thread-2",
	"runId": "run-2",
	"state": null,
	"messages": [{"id": "m1", "role": "oracle", "content": "hi"}],
	"tools": [],
	"context": [],
	"forwardedProps": null
}`

func writePayload(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writePayload(t, dir, "good.json", validPayload)
	writePayload(t, dir, "bad.json", invalidPayload)
	writePayload(t, dir, "notes.txt", "ignored")

	chk := New(nil, 2)
	results, err := chk.CheckDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Results come back in sorted path order.
	bad, good := results[0], results[1]
	assert.False(t, bad.Valid)
	assert.Contains(t, bad.Violation, "invalid_discriminator")
	assert.Contains(t, bad.Violation, "messages[0].role")

	assert.True(t, good.Valid)
	assert.Equal(t, "thread-1", good.ThreadID)
	assert.Equal(t, "run-1", good.RunID)
}

func TestCheckDirRecordsAndSkips(t *testing.T) {
	dir := t.TempDir()
	goodPath := writePayload(t, dir, "good.json", validPayload)

	store, err := persistence.NewSQLiteStore(filepath.Join(t.TempDir(), "checker.db"))
	require.NoError(t, err)
	defer store.Close()

	chk := New(store, 1)
	ctx := context.Background()

	results, err := chk.CheckDir(ctx, dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Valid)
	assert.False(t, results[0].Skipped)

	records, err := store.RecentResults(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, goodPath, records[0].Path)
	assert.Equal(t, "thread-1", records[0].ThreadID)
	assert.True(t, records[0].Valid)

	// An unchanged file is skipped on the next scan.
	results, err = chk.CheckDir(ctx, dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Skipped)
}

func TestCheckDirMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writePayload(t, dir, "broken.json", `{"threadId": `)

	chk := New(nil, 1)
	results, err := chk.CheckDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Valid)
	assert.Contains(t, results[0].Violation, "type_mismatch")
}

func TestCheckDirMissingDir(t *testing.T) {
	chk := New(nil, 1)
	_, err := chk.CheckDir(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
