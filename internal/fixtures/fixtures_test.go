package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func TestBundledFilesDecode(t *testing.T) {
	for _, name := range []string{PartsFile, SellersFile, CategoriesFile} {
		var out []record
		require.NoError(t, Bundled(name, &out), name)
		assert.NotEmpty(t, out, name)
		for _, r := range out {
			assert.NotEmpty(t, r.ID, name)
		}
	}
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "parts.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- id: p1\n  name: Starter\n"), 0o600))
	var fromYAML []record
	require.NoError(t, LoadFile(yamlPath, &fromYAML))
	assert.Equal(t, []record{{ID: "p1", Name: "Starter"}}, fromYAML)

	jsonPath := filepath.Join(dir, "parts.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"id":"p2","name":"Magneto"}]`), 0o600))
	var fromJSON []record
	require.NoError(t, LoadFile(jsonPath, &fromJSON))
	assert.Equal(t, []record{{ID: "p2", Name: "Magneto"}}, fromJSON)
}

func TestLoadFileErrors(t *testing.T) {
	var out []record
	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing.json"), &out))
	assert.Error(t, Decode("broken.json", []byte("{"), &out))
}
