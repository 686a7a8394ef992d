package pkcs5

import (
	"fmt"
	"sync"
)

var initOnce sync.Once

// Init runs a one-time self-check that every registered digest produces
// output of its declared size. Calling it is optional and idempotent; the
// derivation functions do not require it. A mismatch means the registry
// itself is broken, so Init panics rather than returning an error.
func Init() {
	initOnce.Do(func() {
		for d, info := range digests {
			if got := len(info.new().Sum(nil)); got != info.size {
				panic(fmt.Sprintf("pkcs5: digest %s produced %d bytes, want %d", d, got, info.size))
			}
		}
	})
}
