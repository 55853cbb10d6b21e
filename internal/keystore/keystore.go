package keystore

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"shardkit/internal/crypto"
	"shardkit/internal/domain"
)

// Version is the only container format this tool reads and writes.
const Version = "1.0"

// File is the on-disk container for one encrypted secret key.
type File struct {
	Version   string `json:"version"`
	SecretKey string `json:"secret_key"`
}

// Save encrypts secret under password and writes a fresh container to path.
// It fails with domain.ErrFileExists if path already exists; the existence
// check is not atomic with the write, a narrow race accepted by the
// container contract.
func Save(secret []byte, password, path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Wrap(domain.ErrFileExists, path)
	} else if !os.IsNotExist(err) {
		return errors.Wrap(domain.ErrIO, err.Error())
	}

	ciphertext, err := crypto.EncryptSecret(secret, password)
	if err != nil {
		return err
	}

	content, err := json.Marshal(File{
		Version:   Version,
		SecretKey: domain.HexBytes(ciphertext).String(),
	})
	if err != nil {
		return errors.Wrap(domain.ErrIO, err.Error())
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return errors.Wrap(domain.ErrIO, err.Error())
	}
	return nil
}

// Load reads the container at path and decrypts the secret key with
// password. A wrong password is not detectable here: the returned bytes are
// then garbage of the stored length, and callers must validate them before
// use.
func Load(password, path string) (domain.HexBytes, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(domain.ErrIO, err.Error())
	}

	var f File
	if err := json.Unmarshal(content, &f); err != nil {
		return nil, errors.Wrap(domain.ErrParse, err.Error())
	}

	switch f.Version {
	case Version:
	default:
		return nil, errors.Wrapf(domain.ErrVersionMismatch, "version %q", f.Version)
	}

	ciphertext, err := domain.ParseHex(f.SecretKey)
	if err != nil {
		return nil, err
	}
	return crypto.DecryptSecret(ciphertext, password)
}
