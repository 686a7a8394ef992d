package pkcs5

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"github.com/cloudflare/circl/xof"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Digest identifies a message digest usable as the chained hash in
// BytesToKey. The zero value is not a valid digest.
type Digest int

// Supported digests. SHAKE128 and SHAKE256 use the fixed output lengths
// OpenSSL assigns their EVP_MD forms (16 and 32 bytes).
const (
	MD4 Digest = iota + 1
	MD5
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
	RIPEMD160
	SHA3_256
	SHA3_512
	BLAKE2b_512
	BLAKE2s_256
	SHAKE128
	SHAKE256
)

type digestInfo struct {
	name string
	size int
	new  func() hash.Hash
}

var digests = map[Digest]digestInfo{
	MD4:         {"MD4", md4.Size, md4.New},
	MD5:         {"MD5", md5.Size, md5.New},
	SHA1:        {"SHA1", sha1.Size, sha1.New},
	SHA224:      {"SHA224", sha256.Size224, sha256.New224},
	SHA256:      {"SHA256", sha256.Size, sha256.New},
	SHA384:      {"SHA384", sha512.Size384, sha512.New384},
	SHA512:      {"SHA512", sha512.Size, sha512.New},
	RIPEMD160:   {"RIPEMD160", ripemd160.Size, ripemd160.New},
	SHA3_256:    {"SHA3-256", 32, func() hash.Hash { return sha3.New256() }},
	SHA3_512:    {"SHA3-512", 64, func() hash.Hash { return sha3.New512() }},
	BLAKE2b_512: {"BLAKE2b-512", blake2b.Size, newBLAKE2b512},
	BLAKE2s_256: {"BLAKE2s-256", blake2s.Size, newBLAKE2s256},
	SHAKE128:    {"SHAKE128", 16, func() hash.Hash { return newXOFDigest(xof.SHAKE128, 16, 168) }},
	SHAKE256:    {"SHAKE256", 32, func() hash.Hash { return newXOFDigest(xof.SHAKE256, 32, 136) }},
}

func newBLAKE2b512() hash.Hash {
	// New512 fails only for oversized keys; the keyless form cannot.
	h, _ := blake2b.New512(nil)
	return h
}

func newBLAKE2s256() hash.Hash {
	h, _ := blake2s.New256(nil)
	return h
}

func (d Digest) valid() bool {
	_, ok := digests[d]
	return ok
}

// New returns a fresh instance of the digest. It panics if d is not one of
// the defined constants, mirroring crypto.Hash semantics; BytesToKey
// validates d before calling New.
func (d Digest) New() hash.Hash {
	info, ok := digests[d]
	if !ok {
		panic(fmt.Sprintf("pkcs5: unknown digest %d", int(d)))
	}
	return info.new()
}

// Size returns the digest output length in bytes, or 0 for an unknown
// digest.
func (d Digest) Size() int {
	return digests[d].size
}

// String returns the digest name, e.g. "SHA1".
func (d Digest) String() string {
	if info, ok := digests[d]; ok {
		return info.name
	}
	return fmt.Sprintf("Digest(%d)", int(d))
}

// ParseDigest resolves a digest by name, case-insensitively. Dashes are
// optional, so "sha3-256" and "SHA3_256" both resolve to SHA3-256.
func ParseDigest(name string) (Digest, error) {
	canon := canonName(name)
	for d, info := range digests {
		if canonName(info.name) == canon {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown digest %q", ErrInvalidParameter, name)
}

func canonName(s string) string {
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}
