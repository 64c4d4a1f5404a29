package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte{}, 0666); err != nil {
		t.Fatal(err)
	}
}

func TestFindMidiPathsWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.mid"))
	touch(t, filepath.Join(dir, "b.MIDI"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "nested", "c.midi"))

	paths, err := FindMidiPaths(dir)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(3, len(paths))
	for _, path := range paths {
		assert.NotContains(path, ".txt")
	}
}

func TestFindMidiPathsAcceptsSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.mid")
	touch(t, path)

	paths, err := FindMidiPaths(path)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal([]string{path}, paths)
}

func TestFindMidiPathsMissingPath(t *testing.T) {
	_, err := FindMidiPaths(filepath.Join(t.TempDir(), "nope"))
	assert.NotNil(t, err)
}
