// Package credentials persists the authenticated identity (access token,
// profile, refresh token) as encrypted records in the local store.
//
// Storage corruption is never surfaced: a record that is missing or cannot be
// decrypted reads back as nil, so a tampered store degrades to a logged-out
// client instead of a crash.
package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mbs-dev/blogctl/internal/client/models"
	"github.com/mbs-dev/blogctl/internal/client/repositories/localstore"
	"github.com/mbs-dev/blogctl/internal/cryptox"
)

// Keys names the three managed entries in the local store.
type Keys struct {
	Token        string
	User         string
	RefreshToken string
}

// Store is a typed wrapper over the encrypted local store. All three keys
// share one secret; the secret is configuration and is never stored itself.
type Store struct {
	repo   localstore.Repository
	secret string
	keys   Keys
}

func New(repo localstore.Repository, secret string, keys Keys) *Store {
	return &Store{repo: repo, secret: secret, keys: keys}
}

// setItem writes the JSON-encoded, encrypted value under key. A nil value
// removes the entry rather than encrypting an empty record.
func (s *Store) setItem(ctx context.Context, key string, value any, absent bool) error {
	if absent {
		return s.repo.Delete(ctx, key)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	sealed, err := cryptox.Encrypt(string(raw), s.secret)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s: %w", key, err)
	}

	return s.repo.Set(ctx, key, []byte(sealed))
}

// getItem decrypts the entry under key into out. It reports false when the
// entry is absent or undecryptable; decryption failures are swallowed.
func (s *Store) getItem(ctx context.Context, key string, out any) (bool, error) {
	sealed, err := s.repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if sealed == nil {
		return false, nil
	}

	raw, err := cryptox.Decrypt(string(sealed), s.secret)
	if err != nil {
		if errors.Is(err, cryptox.ErrDecryption) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		// stored plaintext is not the expected shape; treat as absent
		return false, nil
	}
	return true, nil
}

// SetToken persists the access token; nil removes it.
func (s *Store) SetToken(ctx context.Context, token *string) error {
	return s.setItem(ctx, s.keys.Token, token, token == nil)
}

// GetToken returns the stored access token, or nil when absent or unreadable.
func (s *Store) GetToken(ctx context.Context) (*string, error) {
	var token string
	ok, err := s.getItem(ctx, s.keys.Token, &token)
	if err != nil || !ok {
		return nil, err
	}
	return &token, nil
}

// SetUser persists the profile; nil removes it.
func (s *Store) SetUser(ctx context.Context, user *models.User) error {
	return s.setItem(ctx, s.keys.User, user, user == nil)
}

// GetUser returns the stored profile, or nil when absent or unreadable.
func (s *Store) GetUser(ctx context.Context) (*models.User, error) {
	var user models.User
	ok, err := s.getItem(ctx, s.keys.User, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

// ClearAll removes all three managed keys regardless of their current value.
// The refresh-token key has no writer in this client, but clearing it purges
// records left behind by older builds.
func (s *Store) ClearAll(ctx context.Context) error {
	var errs []error
	for _, key := range []string{s.keys.Token, s.keys.User, s.keys.RefreshToken} {
		if err := s.repo.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
