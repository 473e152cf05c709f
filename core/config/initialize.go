package config

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes a default configuration and SSH host key into the
// directory. Files that already exist are left alone so it is safe to run
// repeatedly.
func Initialize(path string, logger *log.Logger) error {
	return InitializeFs(afero.NewOsFs(), path, logger)
}

// InitializeFs is Initialize on the given filesystem.
func InitializeFs(fs afero.Fs, path string, logger *log.Logger) error {
	if err := fs.MkdirAll(path, 0700); err != nil {
		return err
	}

	writeIfMissing := func(name string, contents []byte) error {
		fullPath := filepath.Join(path, name)
		if _, err := fs.Stat(fullPath); err == nil {
			logger.Printf("%s already exists, skipping", name)
			return nil
		} else if !os.IsNotExist(err) {
			return err
		}

		logger.Printf("writing %s", name)
		return afero.WriteFile(fs, fullPath, contents, 0600)
	}

	if err := writeIfMissing(ConfigurationName, defaultConfigData); err != nil {
		return err
	}

	keyPem, err := generateHostKey()
	if err != nil {
		return err
	}
	return writeIfMissing(PrivateKeyName, keyPem)
}

// generateHostKey creates a PEM encoded ed25519 private key in PKCS #8 form.
func generateHostKey() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, err
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}
