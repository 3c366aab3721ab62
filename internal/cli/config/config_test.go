package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "traitkit.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.Format)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.Classes)
}

func TestLoad_FromFile(t *testing.T) {
	dir := writeConfig(t, `
format: json
no_color: true
classes:
  - name: Content
    statics:
      kind: base
  - name: Post
    parent: Content
    attributes:
      title: ""
      draft: true
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.NoColor)
	require.Len(t, cfg.Classes, 2)
	assert.Equal(t, "Content", cfg.Classes[0].Name)
	assert.Equal(t, "Post", cfg.Classes[1].Name)
	assert.Equal(t, "Content", cfg.Classes[1].Parent)
}

func TestLoad_InvalidFormat(t *testing.T) {
	dir := writeConfig(t, "format: xml\n")

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}

func TestBuildRegistry(t *testing.T) {
	dir := writeConfig(t, `
classes:
  - name: Content
  - name: Post
    parent: Content
    attributes:
      title: ""
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	registry, err := cfg.BuildRegistry()
	require.NoError(t, err)

	post, err := registry.Lookup("Post")
	require.NoError(t, err)
	assert.Equal(t, "Content", post.Parent().Name())
	assert.Contains(t, post.Template(), "title")
}

func TestBuildRegistry_UnknownParent(t *testing.T) {
	dir := writeConfig(t, `
classes:
  - name: Post
    parent: Missing
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	_, err = cfg.BuildRegistry()
	assert.Error(t, err)
}
