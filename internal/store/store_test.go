package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MihkelHunter/mktodo/internal/todo"
)

var sample = []todo.Task{
	{ID: 1, Description: "Buy milk", CreatedAt: "2025-01-02 03:04:05"},
	{ID: 2, Description: "Walk dog ✓ \"quoted\"", Done: true, CreatedAt: "2025-01-02 03:04:06"},
	{ID: 3, Description: "naïve café", CreatedAt: "2025-01-03 10:00:00"},
}

var formats = []string{"tasks.json", "tasks.yaml", "tasks.yml", "tasks.toml", "tasks.db", "tasks.sqlite", "tasks.txt"}

func open(t *testing.T, path string) todo.Backend {
	t.Helper()
	b, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestOpen_PicksBackendByExtension(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]any{
		"a.json":   &textFile{},
		"a.YAML":   &textFile{},
		"a.toml":   &textFile{},
		"a.txt":    &textFile{},
		"a.db":     &SQLiteStore{},
		"a.sqlite": &SQLiteStore{},
	}
	for name, want := range tests {
		b := open(t, filepath.Join(dir, name))
		assert.IsType(t, want, b, name)
		assert.Equal(t, filepath.Join(dir, name), b.Path())
	}

	assert.Equal(t, "yaml", open(t, filepath.Join(dir, "a.yml")).(*textFile).codec.name)
	assert.Equal(t, "toml", open(t, filepath.Join(dir, "a.toml")).(*textFile).codec.name)
	assert.Equal(t, "json", open(t, filepath.Join(dir, "a.txt")).(*textFile).codec.name)
}

func TestRoundTrip(t *testing.T) {
	for _, name := range formats {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, open(t, path).Save(sample))

			got, err := open(t, path).Load()
			require.NoError(t, err)
			assert.Equal(t, sample, got)
		})
	}
}

func TestSave_EmptyThenLoad(t *testing.T) {
	for _, name := range formats {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			b := open(t, path)
			require.NoError(t, b.Save(sample))
			require.NoError(t, b.Save(nil))

			got, err := open(t, path).Load()
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	for _, name := range formats {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			_, err := open(t, path).Load()
			assert.ErrorIs(t, err, todo.ErrNoData)
			assert.NoFileExists(t, path)
		})
	}
}

func TestLoad_Corrupt(t *testing.T) {
	tests := map[string]string{
		"tasks.json":   `[{"id": 1, "description": "trunc`,
		"tasks.yaml":   "- id: [1\n  description: x\n",
		"tasks.toml":   "[[tasks]\nid = ",
		"tasks.db":     "this is not a database file at all, just some bytes padded out........................................",
		"tasks.sqlite": "",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := open(t, path).Load()
			assert.ErrorIs(t, err, todo.ErrCorrupt)

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, content, string(after))
		})
	}
}

func TestJSON_FieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, NewJSONFile(path).Save(sample[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"description":"Buy milk","done":false,"created_at":"2025-01-02 03:04:05"}]`, string(data))
	assert.Contains(t, string(data), "\n  {\n    \"id\": 1,")
}

func TestJSON_ReadsHandWrittenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	content := `[
  {"id": 1, "description": "A", "done": false, "created_at": "2024-06-01 12:00:00"}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := NewJSONFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []todo.Task{{ID: 1, Description: "A", CreatedAt: "2024-06-01 12:00:00"}}, got)
}

func TestSave_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "tasks.yaml")

	require.NoError(t, open(t, path).Save(sample))
	assert.FileExists(t, path)
}

func TestSave_FailureReported(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be makes WriteFile fail.
	path := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	assert.Error(t, open(t, path).Save(sample))
}

func TestStore_OverFiles(t *testing.T) {
	for _, name := range formats {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			clock := todo.WithClock(func() time.Time { return time.Date(2025, 5, 1, 8, 0, 0, 0, time.Local) })

			s := todo.NewStore(open(t, path), clock)
			assert.ErrorIs(t, s.Load(), todo.ErrNoData)
			_, err := s.Add("A")
			require.NoError(t, err)

			restarted := todo.NewStore(open(t, path))
			require.NoError(t, restarted.Load())
			assert.Equal(t, []todo.Task{{ID: 1, Description: "A", CreatedAt: "2025-05-01 08:00:00"}}, restarted.List())
		})
	}
}

func TestStore_CorruptFileUntouchedUntilSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	garbage := []byte("{{{ not json")
	require.NoError(t, os.WriteFile(path, garbage, 0o644))

	s := todo.NewStore(open(t, path))
	assert.ErrorIs(t, s.Load(), todo.ErrCorrupt)
	assert.Empty(t, s.List())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, garbage, data)

	_, err = s.Add("fresh")
	require.NoError(t, err)

	got, err := open(t, path).Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].Description)
}

func TestSQLite_SaveReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")
	garbage := []byte("this is not a database file at all, just some bytes padded out........................................")
	require.NoError(t, os.WriteFile(path, garbage, 0o644))

	s := todo.NewStore(open(t, path))
	assert.ErrorIs(t, s.Load(), todo.ErrCorrupt)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, garbage, data)

	_, err = s.Add("fresh")
	require.NoError(t, err)
	_, err = s.Add("second")
	require.NoError(t, err)

	got, err := open(t, path).Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "fresh", got[0].Description)
	assert.Equal(t, 2, got[1].ID)
}

func TestSQLite_SaveErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the database file cannot be opened for writing.
	path := filepath.Join(dir, "tasks.db")
	require.NoError(t, os.Mkdir(path, 0o755))

	err := open(t, path).Save(sample)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
