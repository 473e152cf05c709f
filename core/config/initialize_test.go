package config

import (
	"io/ioutil"
	"log"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func TestInitialize(t *testing.T) {
	fs := afero.NewMemMapFs()
	discard := log.New(ioutil.Discard, "", 0)

	require.NoError(t, InitializeFs(fs, "conf", discard))

	// Check that the written config loads and validates.
	cfg, err := LoadFs(fs, "conf")
	require.NoError(t, err)

	t.Run("PrivateKeyPem", func(t *testing.T) {
		keyPem, err := cfg.PrivateKeyPem()
		require.NoError(t, err)

		_, err = gossh.ParsePrivateKey(keyPem)
		assert.NoError(t, err, "host key must be a usable SSH key")
	})

	t.Run("OpenAppLog", func(t *testing.T) {
		fd, err := cfg.OpenAppLog()
		assert.Nil(t, err)
		fd.Close()
	})
}

func TestInitializeIsIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	discard := log.New(ioutil.Discard, "", 0)

	require.NoError(t, InitializeFs(fs, "conf", discard))

	firstKey, err := afero.ReadFile(fs, "conf/"+PrivateKeyName)
	require.NoError(t, err)

	require.NoError(t, InitializeFs(fs, "conf", discard))

	secondKey, err := afero.ReadFile(fs, "conf/"+PrivateKeyName)
	require.NoError(t, err)
	assert.Equal(t, firstKey, secondKey, "existing key must not be overwritten")
}

func TestLoadAcceptsConfigFilePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	discard := log.New(ioutil.Discard, "", 0)
	require.NoError(t, InitializeFs(fs, "conf", discard))

	_, err := LoadFs(fs, "conf/"+ConfigurationName)
	assert.NoError(t, err)
}
