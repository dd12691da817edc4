package file

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automatalab/automata/pkg/domain"
)

const togglerYAML = `name: toggler
label: even number of x
states: [even, odd]
alphabet: ["x"]
start: even
accept: [even]
rules:
  - {from: even, on: "x", to: odd}
  - {from: odd, on: "x", to: even}
`

func writeDef(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoader_GetAndList(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "toggler.yaml", togglerYAML)
	writeDef(t, dir, "notes.txt", "not a machine")

	loader, err := NewLoader(dir)
	require.NoError(t, err)

	names, err := loader.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"toggler"}, names)

	def, err := loader.Get("toggler")
	require.NoError(t, err)
	assert.True(t, def.Compiled())
	assert.Equal(t, "toggler", def.Name)
	assert.Equal(t, "even", def.Start)

	// Cached instance is reused.
	again, err := loader.Get("toggler")
	require.NoError(t, err)
	assert.Same(t, def, again)
}

func TestLoader_ConcurrentGet(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "toggler.yaml", togglerYAML)

	loader, err := NewLoader(dir)
	require.NoError(t, err)

	// One loader is shared across HTTP requests; parallel Gets must be
	// safe and converge on a single cached definition.
	defs := make([]*domain.Definition, 16)
	var wg sync.WaitGroup
	for i := range defs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			def, err := loader.Get("toggler")
			assert.NoError(t, err)
			defs[i] = def
		}(i)
	}
	wg.Wait()

	for _, def := range defs {
		require.NotNil(t, def)
		assert.Same(t, defs[0], def)
	}
}

func TestLoader_NameDefaultsToFilename(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "anon.yml", `states: [s]
alphabet: ["a"]
start: s
accept: [s]
rules:
  - {from: s, on: "a", to: s}
`)

	loader, err := NewLoader(dir)
	require.NoError(t, err)

	def, err := loader.Get("anon")
	require.NoError(t, err)
	assert.Equal(t, "anon", def.Name)
}

func TestLoader_Unknown(t *testing.T) {
	loader, err := NewLoader(t.TempDir())
	require.NoError(t, err)

	_, err = loader.Get("ghost")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestLoader_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "broken.yaml", "states: [a\n  nope")

	loader, err := NewLoader(dir)
	require.NoError(t, err)

	_, err = loader.Get("broken")
	assert.ErrorContains(t, err, "parse definition")
}

func TestLoader_InvalidDefinition(t *testing.T) {
	dir := t.TempDir()
	writeDef(t, dir, "bad.yaml", `states: [s]
alphabet: ["a"]
start: missing
accept: [s]
`)

	loader, err := NewLoader(dir)
	require.NoError(t, err)

	_, err = loader.Get("bad")
	require.Error(t, err)
	assert.ErrorContains(t, err, "compile definition")
}

func TestNewLoader_MissingDir(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
