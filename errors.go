package pkcs5

import (
	"errors"
	"fmt"

	"github.com/keywell/pkcs5-go/internal/kdf"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidSaltLength is returned when BytesToKey receives a salt
	// whose length is not exactly SaltLen bytes.
	ErrInvalidSaltLength = errors.New("invalid salt length")

	// ErrInvalidIterationCount is returned when an iteration count below 1
	// is supplied to either derivation.
	ErrInvalidIterationCount = errors.New("invalid iteration count")

	// ErrInvalidParameter is returned for structurally invalid input: an
	// unknown cipher or digest, or a PBKDF2 output length below 1.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDerivationFailed is returned when an underlying primitive
	// misbehaves, such as a digest producing output of a different length
	// than it declares. The call is not retried; a deterministic
	// computation cannot succeed on a second attempt.
	ErrDerivationFailed = errors.New("derivation failed")
)

// wrapKDFError converts internal kdf errors to public sentinel errors
// so that errors.Is() checks work correctly.
func wrapKDFError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, kdf.ErrDigestSize) {
		return fmt.Errorf("%w: %s", ErrDerivationFailed, err)
	}
	return err
}
