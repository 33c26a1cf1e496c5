package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const sessionFile = "session.json"

type fileStashPayload struct {
	Token string `json:"token"`
}

// FileStash keeps the token in a small JSON file under dataDir.
type FileStash struct {
	path string
}

func NewFileStash(dataDir string) (*FileStash, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, errors.Wrap(err, "failed to create session data dir")
	}
	return &FileStash{path: filepath.Join(dataDir, sessionFile)}, nil
}

func (f *FileStash) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrap(err, "failed to read session file")
	}

	payload := fileStashPayload{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", errors.Wrap(err, "failed to parse session file")
	}
	return payload.Token, nil
}

func (f *FileStash) Save(token string) error {
	data, err := json.Marshal(fileStashPayload{Token: token})
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(f.path, data, 0o600), "failed to write session file")
}

func (f *FileStash) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove session file")
	}
	return nil
}
