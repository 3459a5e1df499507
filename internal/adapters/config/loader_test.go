package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/config"
	"go.trai.ch/forge/internal/core/domain"
)

const fullConfig = `version: "1"
package:
  name: viewer
  version: "0.4.2"
source:
  root: .
  exclude:
    - target
    - result
lockfile: forge.lock
catalog: catalog.json
store: .forge/store
platforms:
  - x86_64-linux
  - aarch64-linux
  - x86_64-darwin
packaged: true
build:
  cmd: [cargo, build, --release]
  dependencies:
    - pkg-config
    - cmake
runtime:
  dependencies:
    - libxkbcommon
    - vulkan-loader
shells:
  default:
    inherit: true
    build:
      - rust-analyzer
  ci:
    inherit: true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "forge.yaml"), []byte(content), 0o600))
	return dir
}

func TestLoad_Full(t *testing.T) {
	dir := writeConfig(t, fullConfig)

	loader := &config.FileConfigLoader{}
	decl, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "viewer", decl.Name)
	assert.Equal(t, "0.4.2", decl.Version)
	assert.Equal(t, dir, decl.Source.Root)
	assert.Equal(t, []string{"target", "result"}, decl.Source.Exclude)
	assert.Equal(t, filepath.Join(dir, "forge.lock"), decl.LockPath)
	assert.Equal(t, filepath.Join(dir, "catalog.json"), decl.CatalogPath)
	assert.Equal(t, filepath.Join(dir, ".forge", "store"), decl.StoreDir)
	assert.True(t, decl.Packaged)

	require.Len(t, decl.Platforms, 3)
	assert.Equal(t, domain.Platform("x86_64-linux"), decl.Platforms[0])

	require.Len(t, decl.BuildDeps, 2)
	assert.Equal(t, "pkg-config", decl.BuildDeps[0].Name.String())
	assert.Equal(t, domain.KindBuildTime, decl.BuildDeps[0].Kind)

	require.Len(t, decl.RuntimeDeps, 2)
	assert.Equal(t, "libxkbcommon", decl.RuntimeDeps[0].Name.String())
	assert.Equal(t, domain.KindRuntime, decl.RuntimeDeps[0].Kind)

	assert.Equal(t, []string{"cargo", "build", "--release"}, decl.BuildCommand)
}

func TestLoad_ShellsSortedByName(t *testing.T) {
	dir := writeConfig(t, fullConfig)

	decl, err := (&config.FileConfigLoader{}).Load(dir)
	require.NoError(t, err)

	require.Len(t, decl.Shells, 2)
	assert.Equal(t, "ci", decl.Shells[0].Name)
	assert.Equal(t, "default", decl.Shells[1].Name)

	def := decl.Shell("default")
	require.NotNil(t, def)
	assert.True(t, def.InheritPlan)
	require.Len(t, def.ExtraBuild, 1)
	assert.Equal(t, "rust-analyzer", def.ExtraBuild[0].Name.String())

	assert.Nil(t, decl.Shell("absent"))
}

func TestLoad_Defaults(t *testing.T) {
	dir := writeConfig(t, `package:
  name: viewer
  version: "0.1.0"
`)

	decl, err := (&config.FileConfigLoader{}).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, decl.Source.Root)
	assert.Equal(t, filepath.Join(dir, "forge.lock"), decl.LockPath)
	assert.Equal(t, filepath.Join(dir, "catalog.json"), decl.CatalogPath)
	assert.Equal(t, filepath.Join(dir, ".forge", "store"), decl.StoreDir)
	assert.False(t, decl.Packaged)
}

func TestLoad_MissingName(t *testing.T) {
	dir := writeConfig(t, `package:
  version: "0.1.0"
`)

	_, err := (&config.FileConfigLoader{}).Load(dir)
	require.Error(t, err)
}

func TestLoad_MissingVersion(t *testing.T) {
	dir := writeConfig(t, `package:
  name: viewer
`)

	_, err := (&config.FileConfigLoader{}).Load(dir)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := (&config.FileConfigLoader{}).Load(t.TempDir())
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "package: [not: a, mapping")

	_, err := (&config.FileConfigLoader{}).Load(dir)
	require.Error(t, err)
}
