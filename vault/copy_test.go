package vault

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopy_CreatesIndependentNode(t *testing.T) {
	v := newTestVault(t)
	src := writeLocalFile(t, v.DataDir, "a.txt", "hello")
	_, err := v.PutFile(&PutOpts{LocalFile: src, VaultPath: "/a.txt"})
	require.NoError(t, err)

	_, err = v.Copy("/a.txt", "/b.txt")
	require.NoError(t, err)

	srcNode := v.State.GetNode("/a.txt")
	dstNode := v.State.GetNode("/b.txt")
	require.NotNil(t, srcNode)
	require.NotNil(t, dstNode)
	assert.NotSame(t, srcNode, dstNode)
	assert.Contains(t, v.State.GetNode("/").Children, "/a.txt")
	assert.Contains(t, v.State.GetNode("/").Children, "/b.txt")
}

func TestCopy_PreservesContent(t *testing.T) {
	v := newTestVault(t)
	src := writeLocalFile(t, v.DataDir, "a.txt", "copy me")
	_, err := v.PutFile(&PutOpts{LocalFile: src, VaultPath: "/a.txt"})
	require.NoError(t, err)

	_, err = v.Copy("/a.txt", "/b.txt")
	require.NoError(t, err)

	reader, _, err := v.Cat("/b.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "copy me", string(data))
}

func TestCopy_SourceNotFound(t *testing.T) {
	v := newTestVault(t)
	_, err := v.Copy("/nonexistent", "/b.txt")
	assert.ErrorContains(t, err, "not found")
}

func TestCopy_CannotCopyDirectory(t *testing.T) {
	v := newTestVault(t)
	_, err := v.Mkdir("/docs")
	require.NoError(t, err)

	_, err = v.Copy("/docs", "/docs2")
	assert.ErrorContains(t, err, "can only copy files")
}

func TestCopy_DuplicateDestination(t *testing.T) {
	v := newTestVault(t)
	src := writeLocalFile(t, v.DataDir, "a.txt", "a")
	_, err := v.PutFile(&PutOpts{LocalFile: src, VaultPath: "/a.txt"})
	require.NoError(t, err)
	_, err = v.PutFile(&PutOpts{LocalFile: src, VaultPath: "/b.txt"})
	require.NoError(t, err)

	_, err = v.Copy("/a.txt", "/b.txt")
	assert.ErrorContains(t, err, "already exists")
}

func TestCopy_PreservesMetadata(t *testing.T) {
	v := newTestVault(t)
	src := writeLocalFile(t, v.DataDir, "a.txt", "a")
	_, err := v.PutFile(&PutOpts{
		LocalFile:   src,
		VaultPath:   "/a.txt",
		Keywords:    "k1,k2",
		Description: "desc",
	})
	require.NoError(t, err)

	_, err = v.Copy("/a.txt", "/b.txt")
	require.NoError(t, err)

	dst := v.State.GetNode("/b.txt")
	require.NotNil(t, dst)
	assert.Equal(t, "k1,k2", dst.Keywords)
	assert.Equal(t, "desc", dst.Description)
}
