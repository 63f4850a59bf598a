package persist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesHeaderOnce(t *testing.T) {
	store := NewStore(t.TempDir())

	rec := Record{Address: "0xAbC1", PrivateKey: "deadbeef", Pattern: "*abc*"}
	path1, err := store.Save(rec)
	require.NoError(t, err)

	rec2 := Record{Address: "0xAbC2", PrivateKey: "cafecafe", Pattern: "*abc*"}
	path2, err := store.Save(rec2)
	require.NoError(t, err)
	assert.Equal(t, path1, path2, "same pattern in one session appends to one file")

	data, err := os.ReadFile(path1)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "address,private_key,pattern", lines[0])
	assert.Equal(t, "0xAbC1,deadbeef,*abc*", lines[1])
	assert.Equal(t, "0xAbC2,cafecafe,*abc*", lines[2])
}

func TestSaveFileNaming(t *testing.T) {
	store := NewStore(t.TempDir())

	path, err := store.Save(Record{Address: "a", PrivateKey: "k", Pattern: "*dead*"})
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "wallet_dead_"), "wildcards are stripped from the file name, got %q", name)
	assert.True(t, strings.HasSuffix(name, ".csv"))
	assert.Equal(t, SubDir, filepath.Base(filepath.Dir(path)))
}

func TestSaveRestrictsPermissions(t *testing.T) {
	store := NewStore(t.TempDir())

	path, err := store.Save(Record{Address: "a", PrivateKey: "k", Pattern: "p"})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSaveUnwritableBase(t *testing.T) {
	// A regular file in place of the base directory.
	base := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(base, []byte("x"), 0600))

	store := NewStore(base)
	_, err := store.Save(Record{Address: "a", PrivateKey: "k", Pattern: "p"})
	assert.Error(t, err)
}
