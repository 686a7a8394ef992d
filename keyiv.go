package pkcs5

import "crypto/subtle"

// KeyIvPair holds a key and IV derived together by a single BytesToKey
// call. Both fields are sized exactly for the target cipher and are not
// modified by this package after construction.
type KeyIvPair struct {
	// Key is the derived cipher key.
	Key []byte
	// IV is the derived initialization vector. It is empty for ciphers
	// that take no IV.
	IV []byte
}

// Equal reports whether p and o hold byte-identical key and IV material.
// The comparison runs in constant time relative to the contents.
func (p *KeyIvPair) Equal(o *KeyIvPair) bool {
	if p == nil || o == nil {
		return p == o
	}
	keyEq := subtle.ConstantTimeCompare(p.Key, o.Key)
	ivEq := subtle.ConstantTimeCompare(p.IV, o.IV)
	return keyEq&ivEq == 1
}
