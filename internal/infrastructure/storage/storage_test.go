package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"dubhub/internal/shared/config"
)

func TestMemoryDriverRoundTrip(t *testing.T) {
	d := NewMemoryDriver()

	_, ok, err := d.Load(KeyTickets)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, d.Save(KeyTickets, []byte(`[{"id":"T-1"}]`)))

	data, ok, err := d.Load(KeyTickets)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"T-1"}]`, string(data))
}

func TestMemoryDriverCopiesOnLoad(t *testing.T) {
	d := NewMemoryDriver()
	assert.NoError(t, d.Save("k", []byte(`"abc"`)))

	data, _, _ := d.Load("k")
	data[1] = 'x'

	again, _, _ := d.Load("k")
	assert.Equal(t, `"abc"`, string(again))
}

func TestFileDriverRoundTrip(t *testing.T) {
	dir := t.TempDir()
	d, err := NewFileDriver(dir)
	assert.NoError(t, err)

	_, ok, err := d.Load(KeyResources)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, d.Save(KeyResources, []byte(`[]`)))

	data, ok, err := d.Load(KeyResources)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(data))

	// Overwrites replace, they do not append.
	assert.NoError(t, d.Save(KeyResources, []byte(`[{"id":"R-1"}]`)))
	data, _, _ = d.Load(KeyResources)
	assert.JSONEq(t, `[{"id":"R-1"}]`, string(data))

	_, err = os.Stat(filepath.Join(dir, KeyResources+".json"))
	assert.NoError(t, err)
}

func TestSQLiteDriverRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dubhub.db")
	d, err := NewSQLiteDriver(path)
	assert.NoError(t, err)
	defer d.Close()

	_, ok, err := d.Load(KeyTasks)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, d.Save(KeyTasks, []byte(`[{"id":"TASK-1"}]`)))
	assert.NoError(t, d.Save(KeyTasks, []byte(`[{"id":"TASK-2"}]`)))

	data, ok, err := d.Load(KeyTasks)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"TASK-2"}]`, string(data))
}

func TestNewSelectsDriver(t *testing.T) {
	d, err := New(&config.StorageConfig{Driver: config.StorageDriverMemory})
	assert.NoError(t, err)
	assert.IsType(t, &MemoryDriver{}, d)

	d, err = New(&config.StorageConfig{Driver: config.StorageDriverFile, Path: t.TempDir()})
	assert.NoError(t, err)
	assert.IsType(t, &FileDriver{}, d)

	_, err = New(&config.StorageConfig{Driver: "redis"})
	assert.Error(t, err)
}
