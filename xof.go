package pkcs5

import (
	"hash"

	"github.com/cloudflare/circl/xof"
)

// xofDigest adapts an extendable-output function to the fixed-size
// hash.Hash interface so SHAKE variants can participate in the digest
// registry. Sum reads from a clone, leaving the running state intact, the
// same way fixed-size hashes behave.
type xofDigest struct {
	x         xof.XOF
	id        xof.ID
	size      int
	blockSize int
}

func newXOFDigest(id xof.ID, size, blockSize int) hash.Hash {
	return &xofDigest{x: id.New(), id: id, size: size, blockSize: blockSize}
}

func (d *xofDigest) Write(p []byte) (int, error) {
	return d.x.Write(p)
}

func (d *xofDigest) Sum(b []byte) []byte {
	out := make([]byte, d.size)
	c := d.x.Clone()
	c.Read(out) // sponge reads cannot fail
	return append(b, out...)
}

func (d *xofDigest) Reset() {
	d.x = d.id.New()
}

func (d *xofDigest) Size() int {
	return d.size
}

func (d *xofDigest) BlockSize() int {
	return d.blockSize
}
