package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"bigcommerce-carecloud-sync/internal/model"
)

// TokenStore persists the single CareCloud bearer token between
// requests. Implementations must replace the record wholesale; partial
// updates are not part of the contract.
type TokenStore interface {
	Load() (*model.Token, error)
	Save(token *model.Token) error
}

type fileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) TokenStore {
	return &fileTokenStore{path: path}
}

// Load reads the persisted token. A missing file yields a zero token,
// which counts as expired and forces a login on first use.
func (s *fileTokenStore) Load() (*model.Token, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.Token{}, nil
		}
		return nil, fmt.Errorf("read token file: %w", err)
	}

	var token model.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, fmt.Errorf("decode token file: %w", err)
	}
	return &token, nil
}

// Save writes to a temp file and renames it over the old record, so a
// concurrent Load never sees a half-written token. Concurrent saves
// remain last-writer-wins.
func (s *fileTokenStore) Save(token *model.Token) error {
	raw, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace token file: %w", err)
	}
	return nil
}
