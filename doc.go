// Package pkcs5 implements password-based key derivation: the legacy
// OpenSSL EVP_BytesToKey hash-chaining derivation and PBKDF2 instantiated
// with HMAC-SHA1.
//
// # Algorithms
//
//   - [BytesToKey]: the historical single-pass derivation used by OpenSSL's
//     EVP_BytesToKey. It stretches a password into a key and IV sized for a
//     named cipher by chaining digest blocks. With MD5 and a key+IV total of
//     at most one digest block it matches the key derivation from PKCS #5
//     v1.5 (PBKDF1 in PKCS #5 v2.0). Provided for interoperability with
//     container and envelope formats that derived keys this way; new
//     applications should not use it.
//
//   - [PBKDF2HMACSHA1]: standard PBKDF2 (RFC 8018) with HMAC-SHA1 as the
//     pseudorandom function, producing an arbitrary-length derived key.
//
// Both derivations are pure functions of their inputs: no retained state,
// no I/O, safe for concurrent use from multiple goroutines.
//
// # Parameter validation
//
// All parameters are checked before any cryptographic work begins. Either
// the full, correctly sized output is returned, or a sentinel error
// ([ErrInvalidSaltLength], [ErrInvalidIterationCount], [ErrInvalidParameter],
// [ErrDerivationFailed]) is returned and no output is produced. The
// sentinels work with errors.Is.
//
// # Selecting primitives
//
// BytesToKey is parameterized by a [Digest] (the chained hash) and a
// [Cipher] (metadata supplying the required key and IV lengths). The cipher
// registry carries sizes only; this package does not implement or select
// cipher modes.
//
// Basic usage:
//
//	pair, err := pkcs5.BytesToKey(pkcs5.AES256CBC, pkcs5.SHA1, password, salt, 2048)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// pair.Key is 32 bytes, pair.IV is 16 bytes.
//
//	dk, err := pkcs5.PBKDF2HMACSHA1(password, salt, 4096, 32)
//	if err != nil {
//	    log.Fatal(err)
//	}
package pkcs5
