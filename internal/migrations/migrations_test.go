package migrations

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecords(t *testing.T, s string) []Record {
	t.Helper()

	var objects []map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &objects))
	return AsRecords(objects)
}

func encode(t *testing.T, v any) string {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestChainMatchesFiles(t *testing.T) {
	entries, err := os.ReadDir(".")
	require.NoError(t, err)

	modules := 0
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		modules++
	}

	assert.Equal(t, modules, Current+1, "every migration needs its own file next to registry.go")
	assert.Equal(t, len(chain), Current)

	for i, m := range chain {
		assert.NotNil(t, m, "migration %d is not registered", i)
	}
}

func TestMigrate(t *testing.T) {
	t.Run("v0 shellOverride becomes shell", func(t *testing.T) {
		records := decodeRecords(t, `[{"name":"PowerShell","shellOverride":"pwsh","executable":{"command":"pwsh"}}]`)

		migrated, err := Migrate(records, 0)
		require.NoError(t, err)
		require.Len(t, migrated, 1)

		assert.Equal(t, "pwsh", migrated[0]["shell"].Str())
		_, has := migrated[0]["shellOverride"]
		assert.False(t, has)
		assert.JSONEq(t, `{"name":"PowerShell","shell":"pwsh","executable":{"command":"pwsh"}}`, encode(t, migrated[0]))
	})

	t.Run("records without shellOverride pass through", func(t *testing.T) {
		in := `{"name":"Git","executable":{"command":"git"},"args":"--version"}`
		records := decodeRecords(t, "["+in+"]")
		before := encode(t, records[0])

		migrated, err := Migrate(records, 0)
		require.NoError(t, err)
		assert.Equal(t, before, encode(t, migrated[0]))
	})

	t.Run("input records are not modified", func(t *testing.T) {
		records := decodeRecords(t, `[{"name":"a","shellOverride":"bash"}]`)

		_, err := Migrate(records, 0)
		require.NoError(t, err)
		_, has := records[0]["shellOverride"]
		assert.True(t, has)
	})

	t.Run("current version is left alone", func(t *testing.T) {
		records := decodeRecords(t, `[{"name":"a","shellOverride":"kept"}]`)

		migrated, err := Migrate(records, Current)
		require.NoError(t, err)
		_, has := migrated[0]["shellOverride"]
		assert.True(t, has)
	})

	t.Run("empty", func(t *testing.T) {
		migrated, err := Migrate(nil, 0)
		require.NoError(t, err)
		assert.Empty(t, migrated)
	})

	t.Run("unsupported versions", func(t *testing.T) {
		_, err := Migrate(nil, Current+1)
		assert.Error(t, err)

		_, err = Migrate(nil, -1)
		assert.Error(t, err)
	})
}

func TestMigrateFromFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "v0.json")
	require.NoError(t, os.WriteFile(p, []byte(`[{"name":"a","shellOverride":"zsh"},{"name":"b"}]`), 0644))

	data, err := os.ReadFile(p)
	require.NoError(t, err)

	migrated, err := Migrate(decodeRecords(t, string(data)), 0)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"a","shell":"zsh"},{"name":"b"}]`, encode(t, migrated))
}
