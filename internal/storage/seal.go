// Package storage persists the student and lesson book.
package storage

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Seal errors.
var (
	ErrPassphraseTooWeak = errors.New("storage: passphrase too weak (minimum 8 characters)")
	ErrPassphraseNeeded  = errors.New("storage: data file is sealed, a passphrase is required")
	ErrUnsealFailed      = errors.New("storage: unseal failed - wrong passphrase or corrupted data")
)

// sealMagic starts every sealed document.
var sealMagic = []byte("TWSEAL01")

const (
	MinPassphraseLength = 8
	saltLength          = 16

	argon2Time    = 3
	argon2Memory  = 64 * 1024
	argon2Threads = 4
)

// isSealed reports whether data starts with the seal header.
func isSealed(data []byte) bool {
	return bytes.HasPrefix(data, sealMagic)
}

func deriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, argon2Time, argon2Memory, argon2Threads, chacha20poly1305.KeySize)
}

// seal encrypts plaintext. Layout: magic | salt | nonce | ciphertext.
// The magic header is authenticated as additional data.
func seal(plaintext, passphrase []byte) ([]byte, error) {
	if len(passphrase) < MinPassphraseLength {
		return nil, ErrPassphraseTooWeak
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("storage: generate salt: %w", err)
	}
	aead, err := chacha20poly1305.New(deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("storage: init cipher: %w", err)
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("storage: generate nonce: %w", err)
	}

	out := make([]byte, 0, len(sealMagic)+saltLength+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, sealMagic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, sealMagic), nil
}

// unseal reverses seal.
func unseal(data, passphrase []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrPassphraseNeeded
	}
	rest := data[len(sealMagic):]
	if len(rest) < saltLength+chacha20poly1305.NonceSize {
		return nil, ErrUnsealFailed
	}
	salt, rest := rest[:saltLength], rest[saltLength:]

	aead, err := chacha20poly1305.New(deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("storage: init cipher: %w", err)
	}
	nonce, ciphertext := rest[:aead.NonceSize()], rest[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, sealMagic)
	if err != nil {
		return nil, ErrUnsealFailed
	}
	return plain, nil
}
