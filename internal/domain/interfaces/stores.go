package interfaces

import domaintypes "clothiq/internal/domain/types"

// KeyValueStore is the local string-keyed persistence collaborator.
type KeyValueStore interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// AccountStore persists the local account, its session token and the profile
// image reference.
type AccountStore interface {
	SaveUser(user domaintypes.User) error
	LoadUser() (domaintypes.User, bool, error)

	SaveToken(token domaintypes.SessionToken) error
	LoadToken() (domaintypes.SessionToken, bool, error)
	ClearToken() error

	SaveProfileImage(ref string) error
	LoadProfileImage() (string, bool, error)
}
