package pkcs5

import (
	"crypto/sha1"
	"fmt"

	"github.com/keywell/pkcs5-go/internal/kdf"
)

// PBKDF2HMACSHA1 derives keyLen bytes of key material from password and
// salt using PBKDF2 with HMAC-SHA1 as the pseudorandom function (RFC 8018).
//
// iterations must be at least 1 (ErrInvalidIterationCount otherwise) and
// keyLen at least 1 (ErrInvalidParameter otherwise). Empty password and
// empty salt are both valid, if weak, inputs. The result is exactly keyLen
// bytes; there is no partial output on error.
func PBKDF2HMACSHA1(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if iterations < 1 {
		return nil, fmt.Errorf("%w: got %d, want at least 1", ErrInvalidIterationCount, iterations)
	}
	if keyLen < 1 {
		return nil, fmt.Errorf("%w: key length must be at least 1, got %d", ErrInvalidParameter, keyLen)
	}

	dk, err := kdf.PBKDF2(sha1.New, sha1.Size, password, salt, iterations, keyLen)
	if err != nil {
		return nil, wrapKDFError(err)
	}
	return dk, nil
}
