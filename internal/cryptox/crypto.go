// Package cryptox implements the encrypted-at-rest token format used for
// locally persisted credentials.
//
// A sealed token is base64(salt || nonce || ciphertext): a fresh 16-byte salt
// feeds PBKDF2 (SHA-256, 100000 iterations) to derive a 256-bit AES-GCM key
// from the configured secret, and a fresh 12-byte nonce is generated per call.
// Because both salt and nonce are randomized, sealing the same plaintext twice
// never yields the same token.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/mbs-dev/blogctl/internal/common"
)

const (
	saltSize   = 16
	nonceSize  = 12
	keySize    = 32
	iterations = 100_000
)

// ErrDecryption reports that a token could not be opened: it was tampered
// with, produced with a different secret, or is malformed. Callers must treat
// it as "no stored value", never as a fatal condition.
var ErrDecryption = errors.New("decryption failed")

func deriveKey(secret string, salt []byte) []byte {
	return pbkdf2.Key([]byte(secret), salt, iterations, keySize, sha256.New)
}

// Encrypt seals plaintext with a key derived from secret and returns the
// opaque base64 token.
func Encrypt(plaintext, secret string) (string, error) {
	salt := common.GenerateRandByteArray(saltSize)
	nonce := common.GenerateRandByteArray(nonceSize)

	block, err := aes.NewCipher(deriveKey(secret, salt))
	if err != nil {
		return "", err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	ciphertext := aesgcm.Seal(nil, nonce, []byte(plaintext), nil)

	combined := make([]byte, 0, saltSize+nonceSize+len(ciphertext))
	combined = append(combined, salt...)
	combined = append(combined, nonce...)
	combined = append(combined, ciphertext...)

	return base64.StdEncoding.EncodeToString(combined), nil
}

// Decrypt opens a token produced by Encrypt using the same secret.
// Any malformed or tampered input fails with an error wrapping ErrDecryption.
func Decrypt(token, secret string) (string, error) {
	combined, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	if len(combined) < saltSize+nonceSize {
		return "", fmt.Errorf("%w: token too short", ErrDecryption)
	}

	salt := combined[:saltSize]
	nonce := combined[saltSize : saltSize+nonceSize]
	ciphertext := combined[saltSize+nonceSize:]

	block, err := aes.NewCipher(deriveKey(secret, salt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return string(plaintext), nil
}
