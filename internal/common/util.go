// Package common contains small helpers shared across client components.
package common

import "crypto/rand"

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics if the system entropy source fails, which is not recoverable.
func GenerateRandByteArray(size int) []byte {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return buf
}

// WipeByteArray zeroes the buffer in place. Safe to call with nil.
// Use it on password and key material as soon as it is no longer needed.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
