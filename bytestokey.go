package pkcs5

import (
	"fmt"

	"github.com/keywell/pkcs5-go/internal/kdf"
)

// SaltLen is the salt length BytesToKey requires when a salt is supplied,
// matching OpenSSL's PKCS5_SALT_LEN.
const SaltLen = 8

// BytesToKey derives a key and IV for cipher from secret using the OpenSSL
// EVP_BytesToKey algorithm with the given digest.
//
// Let D_0 be empty. Each block D_i is digest(D_{i-1} || secret || salt)
// re-hashed until the digest has been applied iterations times; blocks are
// concatenated until cipher.KeyLen()+cipher.IVLen() bytes exist, and the
// concatenation is split into the key and IV.
//
// If salt is non-nil it must be exactly SaltLen bytes
// (ErrInvalidSaltLength otherwise). A nil salt is permitted for
// compatibility with formats that omit it, but password-based derivation
// should always supply one. iterations must be at least 1
// (ErrInvalidIterationCount otherwise).
//
// secret and salt are not modified. New applications should use
// PBKDF2HMACSHA1 or another modern KDF instead.
func BytesToKey(cipher Cipher, digest Digest, secret, salt []byte, iterations int) (*KeyIvPair, error) {
	if !cipher.valid() {
		return nil, fmt.Errorf("%w: unknown cipher %d", ErrInvalidParameter, int(cipher))
	}
	if !digest.valid() {
		return nil, fmt.Errorf("%w: unknown digest %d", ErrInvalidParameter, int(digest))
	}
	if salt != nil && len(salt) != SaltLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSaltLength, len(salt), SaltLen)
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d, want at least 1", ErrInvalidIterationCount, iterations)
	}

	key, iv, err := kdf.BytesToKey(digest.New, digest.Size(), secret, salt, iterations, cipher.KeyLen(), cipher.IVLen())
	if err != nil {
		return nil, wrapKDFError(err)
	}
	return &KeyIvPair{Key: key, IV: iv}, nil
}
