// Package cryptox holds the credential derivation shared by sign up and sign in.
// The password never leaves the client: the server only stores a salt and a
// verifier computed from the derived key.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the per-user salt generated at sign up.
const SaltSize = 32

// DeriveKey stretches password with salt using Argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier returns the value the server compares on login.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// VerifierFor is DeriveKey followed by MakeVerifier.
func VerifierFor(password []byte, salt []byte) []byte {
	return MakeVerifier(DeriveKey(password, salt))
}
