package store

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"clothiq/internal/util/memzero"
)

// sealedFormatVersion is the newest sealed-file layout this package reads.
const sealedFormatVersion = 1

// ErrWrongPassphrase is returned when a sealed file cannot be opened with the
// configured passphrase, or its contents were modified.
var ErrWrongPassphrase = errors.New("store: wrong passphrase or corrupted storage")

// sealed is the on-disk JSON layout of an encrypted storage file.
type sealed struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

type scryptParams struct{ N, R, P int }

func defaultScryptParams() scryptParams { return scryptParams{N: 1 << 15, R: 8, P: 1} }

// seal encrypts raw under a key derived from passphrase with a fresh salt.
func seal(passphrase string, raw []byte, kp scryptParams) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	aead, err := newAEAD(passphrase, salt, kp)
	if err != nil {
		return nil, err
	}
	// The salt is fresh per write, so each key seals exactly one message and
	// a fixed nonce is safe.
	nonce := make([]byte, aead.NonceSize())
	return json.Marshal(sealed{
		V:      sealedFormatVersion,
		Salt:   salt,
		N:      kp.N,
		R:      kp.R,
		P:      kp.P,
		Cipher: aead.Seal(nil, nonce, raw, salt),
	})
}

// open reverses seal.
func open(passphrase string, b []byte) ([]byte, error) {
	var s sealed
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("store: decode sealed file: %w", err)
	}
	if s.V > sealedFormatVersion {
		return nil, fmt.Errorf("store: unsupported sealed format version %d", s.V)
	}
	aead, err := newAEAD(passphrase, s.Salt, scryptParams{N: s.N, R: s.R, P: s.P})
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	pt, err := aead.Open(nil, nonce, s.Cipher, s.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func newAEAD(passphrase string, salt []byte, kp scryptParams) (cipher.AEAD, error) {
	pass := []byte(passphrase)
	key, err := scrypt.Key(pass, salt, kp.N, kp.R, kp.P, chacha20poly1305.KeySize)
	memzero.Zero(pass)
	if err != nil {
		return nil, err
	}
	// New copies the key.
	defer memzero.Zero(key)
	return chacha20poly1305.New(key)
}
