package pkcs5

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"testing"

	"golang.org/x/crypto/pbkdf2"
)

// Vectors from RFC 6070 (PBKDF2-HMAC-SHA1 test vectors).
func TestPBKDF2HMACSHA1_KnownVectors(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		salt       string
		iterations int
		keyLen     int
		want       string
	}{
		{"1 iteration", "password", "salt", 1, 20, "0c60c80f961f0e71f3a9b524af6012062fe037a6"},
		{"2 iterations", "password", "salt", 2, 20, "ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957"},
		{"4096 iterations", "password", "salt", 4096, 20, "4b007901b765489abead49d926f721d065a429c1"},
		{"multi-block output", "passwordPASSWORDpassword", "saltSALTsaltSALTsaltSALTsaltSALTsalt", 4096, 25, "3d2eec4fe41c849b80c8d83662c0e44a8b291a964cf2f07038"},
		{"embedded NULs", "pass\x00word", "sa\x00lt", 4096, 16, "56fa6aa75548099dcc37d7f03425e0c3"},
		{"empty password and salt", "", "", 1, 20, "1e437a1c79d75be61e91141dae20affc4892cc99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := hex.DecodeString(tt.want)
			if err != nil {
				t.Fatal(err)
			}

			got, err := PBKDF2HMACSHA1([]byte(tt.password), []byte(tt.salt), tt.iterations, tt.keyLen)
			if err != nil {
				t.Fatalf("PBKDF2HMACSHA1() error = %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("PBKDF2HMACSHA1() = %x, want %x", got, want)
			}
		})
	}
}

func TestPBKDF2HMACSHA1_LargeIterationCount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 16777216-iteration vector in short mode")
	}

	want, _ := hex.DecodeString("eefe3d61cd4da4e4e9945b3d6ba2158c2634e984")
	got, err := PBKDF2HMACSHA1([]byte("password"), []byte("salt"), 16777216, 20)
	if err != nil {
		t.Fatalf("PBKDF2HMACSHA1() error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("PBKDF2HMACSHA1() = %x, want %x", got, want)
	}
}

// Output lengths around digest-size multiples must truncate the final
// block without leaking extra bytes.
func TestPBKDF2HMACSHA1_BoundaryLengths(t *testing.T) {
	password := []byte("password")
	salt := []byte("salt")

	for _, keyLen := range []int{1, 19, 20, 21, 40, 41} {
		got, err := PBKDF2HMACSHA1(password, salt, 3, keyLen)
		if err != nil {
			t.Fatalf("keyLen %d: error = %v", keyLen, err)
		}
		if len(got) != keyLen {
			t.Fatalf("keyLen %d: got %d bytes", keyLen, len(got))
		}

		want := pbkdf2.Key(password, salt, 3, keyLen, sha1.New)
		if !bytes.Equal(got, want) {
			t.Errorf("keyLen %d: got %x, want %x", keyLen, got, want)
		}
	}
}

// Agreement with golang.org/x/crypto/pbkdf2 across parameter combinations.
func TestPBKDF2HMACSHA1_MatchesReference(t *testing.T) {
	passwords := [][]byte{nil, []byte("p"), []byte("a longer passphrase with spaces")}
	salts := [][]byte{nil, []byte("s"), {0x00, 0xff, 0x10, 0x20, 0x30, 0x40, 0x50, 0x60}}

	for _, password := range passwords {
		for _, salt := range salts {
			for _, iterations := range []int{1, 2, 100} {
				got, err := PBKDF2HMACSHA1(password, salt, iterations, 24)
				if err != nil {
					t.Fatalf("error = %v", err)
				}
				want := pbkdf2.Key(password, salt, iterations, 24, sha1.New)
				if !bytes.Equal(got, want) {
					t.Errorf("password %q salt %x iterations %d: got %x, want %x",
						password, salt, iterations, got, want)
				}
			}
		}
	}
}

func TestPBKDF2HMACSHA1_IterationSensitivity(t *testing.T) {
	one, err := PBKDF2HMACSHA1([]byte("password"), []byte("salt"), 1, 20)
	if err != nil {
		t.Fatal(err)
	}
	two, err := PBKDF2HMACSHA1([]byte("password"), []byte("salt"), 2, 20)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(one, two) {
		t.Error("outputs for 1 and 2 iterations are identical")
	}
}

func TestPBKDF2HMACSHA1_Deterministic(t *testing.T) {
	first, err := PBKDF2HMACSHA1([]byte("password"), []byte("salt"), 64, 32)
	if err != nil {
		t.Fatal(err)
	}
	second, err := PBKDF2HMACSHA1([]byte("password"), []byte("salt"), 64, 32)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("repeated derivation differs: %x vs %x", first, second)
	}
}

func TestPBKDF2HMACSHA1_InvalidParameters(t *testing.T) {
	tests := []struct {
		name       string
		iterations int
		keyLen     int
		wantErr    error
	}{
		{"zero iterations", 0, 20, ErrInvalidIterationCount},
		{"negative iterations", -1, 20, ErrInvalidIterationCount},
		{"zero key length", 1, 0, ErrInvalidParameter},
		{"negative key length", 1, -5, ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PBKDF2HMACSHA1([]byte("password"), []byte("salt"), tt.iterations, tt.keyLen)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if got != nil {
				t.Errorf("got output %x alongside error", got)
			}
		})
	}
}
