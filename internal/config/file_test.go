package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `min: 2023-01-01
max: 2023-12-31
initial: 2023-06-15
lang: en
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01", f.Min)
	assert.Equal(t, "2023-12-31", f.Max)
	assert.Equal(t, "2023-06-15", f.Initial)
	assert.Equal(t, "en", f.Lang)
	assert.Equal(t, "debug", f.Log.Level)
	assert.Equal(t, "json", f.Log.Format)
}

func TestLoad_MissingDefaultIsEmpty(t *testing.T) {
	t.Setenv("DATEFIELD_DATA_DIR", t.TempDir())
	t.Setenv("DATEFIELD_CONFIG", "")

	f, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &File{}, f)
}

func TestLoad_MissingExplicitFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &File{Min: "2023-01-01", Lang: "de"}

	require.NoError(t, in.Save(path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "max", "empty fields are omitted")
}
