package keystore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shardkit/internal/domain"
	"shardkit/internal/keystore"
)

func keystorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "keystore.dat")
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := keystorePath(t)
	secret := []byte("sixty-four bytes of secret key material, padded out to length!!")

	require.NoError(t, keystore.Save(secret, "pw", path))

	got, err := keystore.Load("pw", path)
	require.NoError(t, err)
	assert.Equal(t, domain.HexBytes(secret), got)
}

func TestSave_RefusesOverwrite(t *testing.T) {
	path := keystorePath(t)
	require.NoError(t, keystore.Save([]byte{1, 2, 3}, "pw", path))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = keystore.Save([]byte{4, 5, 6}, "other", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileExists)

	// The existing file must not have been touched.
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// Wrong passwords are undetectable by design: the load succeeds and returns
// same-length garbage.
func TestLoad_WrongPassword(t *testing.T) {
	path := keystorePath(t)
	secret := []byte{0xaa, 0xbb, 0xcc, 0xdd}
	require.NoError(t, keystore.Save(secret, "right", path))

	got, err := keystore.Load("wrong", path)
	require.NoError(t, err)
	assert.Len(t, []byte(got), len(secret))
	assert.NotEqual(t, domain.HexBytes(secret), got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := keystore.Load("pw", keystorePath(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestLoad_MalformedContainer(t *testing.T) {
	path := keystorePath(t)
	require.NoError(t, os.WriteFile(path, []byte("not a container"), 0o600))

	_, err := keystore.Load("pw", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestLoad_VersionMismatch(t *testing.T) {
	path := keystorePath(t)
	content := `{"version":"2.0","secret_key":"0x00"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := keystore.Load("pw", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVersionMismatch)
}

func TestLoad_InvalidCiphertextHex(t *testing.T) {
	path := keystorePath(t)
	content := `{"version":"1.0","secret_key":"0xnothex"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := keystore.Load("pw", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidEncoding)
}

func TestSave_FileShape(t *testing.T) {
	path := keystorePath(t)
	require.NoError(t, keystore.Save([]byte{0x01}, "pw", path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"version":"1.0"`)
	assert.Contains(t, string(content), `"secret_key":"0x`)
}
