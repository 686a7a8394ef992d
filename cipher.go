package pkcs5

import "fmt"

// Cipher identifies a symmetric cipher by the key and IV sizes it
// requires. Only metadata is carried here; this package neither implements
// nor configures the cipher itself. The zero value is not a valid cipher.
type Cipher int

// Supported ciphers. Names follow the OpenSSL cipher naming convention.
const (
	AES128ECB Cipher = iota + 1
	AES192ECB
	AES256ECB
	AES128CBC
	AES192CBC
	AES256CBC
	AES128CTR
	AES256CTR
	DESCBC
	DESEDE3CBC
	RC4128
)

type cipherInfo struct {
	name     string
	keyLen   int
	ivLen    int
	blockLen int
}

var ciphers = map[Cipher]cipherInfo{
	AES128ECB:  {"AES-128-ECB", 16, 0, 16},
	AES192ECB:  {"AES-192-ECB", 24, 0, 16},
	AES256ECB:  {"AES-256-ECB", 32, 0, 16},
	AES128CBC:  {"AES-128-CBC", 16, 16, 16},
	AES192CBC:  {"AES-192-CBC", 24, 16, 16},
	AES256CBC:  {"AES-256-CBC", 32, 16, 16},
	AES128CTR:  {"AES-128-CTR", 16, 16, 16},
	AES256CTR:  {"AES-256-CTR", 32, 16, 16},
	DESCBC:     {"DES-CBC", 8, 8, 8},
	DESEDE3CBC: {"DES-EDE3-CBC", 24, 8, 8},
	RC4128:     {"RC4", 16, 0, 1},
}

func (c Cipher) valid() bool {
	_, ok := ciphers[c]
	return ok
}

// KeyLen returns the cipher's required key length in bytes, or 0 for an
// unknown cipher.
func (c Cipher) KeyLen() int {
	return ciphers[c].keyLen
}

// IVLen returns the cipher's required IV length in bytes. Stream ciphers
// and ECB mode take no IV and report 0.
func (c Cipher) IVLen() int {
	return ciphers[c].ivLen
}

// BlockSize returns the cipher's block size in bytes (1 for stream
// ciphers), or 0 for an unknown cipher.
func (c Cipher) BlockSize() int {
	return ciphers[c].blockLen
}

// String returns the OpenSSL-style cipher name, e.g. "AES-256-CBC".
func (c Cipher) String() string {
	if info, ok := ciphers[c]; ok {
		return info.name
	}
	return fmt.Sprintf("Cipher(%d)", int(c))
}

// ParseCipher resolves a cipher by its OpenSSL-style name,
// case-insensitively and with dashes optional.
func ParseCipher(name string) (Cipher, error) {
	canon := canonName(name)
	for c, info := range ciphers {
		if canonName(info.name) == canon {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown cipher %q", ErrInvalidParameter, name)
}
