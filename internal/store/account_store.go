package store

import (
	"encoding/json"
	"fmt"

	"clothiq/internal/domain"
)

// Keys used in the key/value store.
const (
	KeyUser         = "localUser"
	KeyAccessToken  = "access_token"
	KeyProfileImage = "profile_image"
)

// Accounts stores the local account record, session token and profile image
// reference in a KeyValueStore.
type Accounts struct {
	kv domain.KeyValueStore
}

// NewAccounts returns an Accounts backed by kv.
func NewAccounts(kv domain.KeyValueStore) *Accounts {
	return &Accounts{kv: kv}
}

// SaveUser replaces the stored account.
func (a *Accounts) SaveUser(user domain.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return a.kv.Set(KeyUser, string(b))
}

// LoadUser returns the stored account, if any.
func (a *Accounts) LoadUser() (domain.User, bool, error) {
	raw, ok, err := a.kv.Get(KeyUser)
	if err != nil || !ok {
		return domain.User{}, false, err
	}
	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return domain.User{}, false, fmt.Errorf("store: decode %s: %w", KeyUser, err)
	}
	return u, true, nil
}

// SaveToken records the active session token.
func (a *Accounts) SaveToken(token domain.SessionToken) error {
	return a.kv.Set(KeyAccessToken, token.String())
}

// LoadToken returns the active session token, if any.
func (a *Accounts) LoadToken() (domain.SessionToken, bool, error) {
	v, ok, err := a.kv.Get(KeyAccessToken)
	if err != nil || !ok || v == "" {
		return "", false, err
	}
	return domain.SessionToken(v), true, nil
}

// ClearToken ends the session.
func (a *Accounts) ClearToken() error { return a.kv.Delete(KeyAccessToken) }

// SaveProfileImage stores the profile picture reference.
func (a *Accounts) SaveProfileImage(ref string) error {
	return a.kv.Set(KeyProfileImage, ref)
}

// LoadProfileImage returns the profile picture reference, if any.
func (a *Accounts) LoadProfileImage() (string, bool, error) {
	return a.kv.Get(KeyProfileImage)
}

// Compile-time assertion that Accounts implements domain.AccountStore.
var _ domain.AccountStore = (*Accounts)(nil)
