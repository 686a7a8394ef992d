// Package kdf holds the derivation loops behind the public pkcs5 API. The
// functions here assume already-validated parameters; the public surface
// owns all precondition checks and maps errors to its sentinels.
package kdf

import (
	"crypto/hmac"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
)

// ErrDigestSize is returned when a digest produces output of a different
// length than it declares.
var ErrDigestSize = errors.New("digest produced wrong-size output")

// BytesToKey runs the OpenSSL EVP_BytesToKey chain. Each block is
// H^iterations(prev || secret || salt); blocks are concatenated until
// keyLen+ivLen bytes exist and the tail of the final block is discarded.
// The returned slices are freshly allocated; the scratch chain buffers are
// wiped before return.
func BytesToKey(newHash func() hash.Hash, size int, secret, salt []byte, iterations, keyLen, ivLen int) (key, iv []byte, err error) {
	total := keyLen + ivLen
	buf := make([]byte, 0, total+size)

	h := newHash()
	var block []byte
	for len(buf) < total {
		h.Reset()
		h.Write(block)
		h.Write(secret)
		h.Write(salt)
		block = h.Sum(block[:0])
		for i := 1; i < iterations; i++ {
			h.Reset()
			h.Write(block)
			block = h.Sum(block[:0])
		}
		if len(block) != size {
			wipe(buf)
			wipe(block)
			return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrDigestSize, len(block), size)
		}
		buf = append(buf, block...)
	}

	key = make([]byte, keyLen)
	copy(key, buf[:keyLen])
	iv = make([]byte, ivLen)
	copy(iv, buf[keyLen:total])

	wipe(buf[:cap(buf)])
	wipe(block)
	return key, iv, nil
}

// PBKDF2 computes PBKDF2 (RFC 8018, section 5.2) with HMAC over newHash as
// the pseudorandom function. size must be the digest's output length.
func PBKDF2(newHash func() hash.Hash, size int, password, salt []byte, iterations, keyLen int) ([]byte, error) {
	prf := hmac.New(newHash, password)
	blocks := (keyLen + size - 1) / size

	var ctr [4]byte
	buf := make([]byte, 0, blocks*size)
	u := make([]byte, 0, size)
	t := make([]byte, size)
	for block := 1; block <= blocks; block++ {
		binary.BigEndian.PutUint32(ctr[:], uint32(block))
		prf.Reset()
		prf.Write(salt)
		prf.Write(ctr[:])
		u = prf.Sum(u[:0])
		if len(u) != size {
			wipe(buf)
			wipe(u)
			return nil, fmt.Errorf("%w: got %d, want %d", ErrDigestSize, len(u), size)
		}
		copy(t, u)
		for i := 1; i < iterations; i++ {
			prf.Reset()
			prf.Write(u)
			u = prf.Sum(u[:0])
			for k, b := range u {
				t[k] ^= b
			}
		}
		buf = append(buf, t...)
	}

	dk := make([]byte, keyLen)
	copy(dk, buf)

	wipe(buf[:cap(buf)])
	wipe(u)
	wipe(t)
	return dk, nil
}

// wipe zeroes b so derived material does not linger in scratch buffers.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
