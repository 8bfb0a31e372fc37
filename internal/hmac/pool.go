package hmac

import (
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 is mandated by the STUN MESSAGE-INTEGRITY attribute, not used for general hashing
	"sync"
)

// setZeroes clears b so that stale key material from a previous pool
// checkout never leaks into the next hash's padding.
//
// See https://github.com/golang/go/issues/5373
func setZeroes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func (h *hmac) resetTo(key []byte) {
	h.outer.Reset()
	h.inner.Reset()
	setZeroes(h.ipad)
	setZeroes(h.opad)
	if len(key) > h.blocksize {
		h.outer.Write(key) //nolint:errcheck,gosec
		key = h.outer.Sum(nil)
		h.outer.Reset()
	}
	copy(h.ipad, key)
	copy(h.opad, key)
	for i := range h.ipad {
		h.ipad[i] ^= 0x36
	}
	for i := range h.opad {
		h.opad[i] ^= 0x5c
	}
	h.inner.Write(h.ipad) //nolint:errcheck,gosec
}

var sha1Pool = &sync.Pool{ //nolint:gochecknoglobals
	New: func() interface{} {
		return New(sha1.New, make([]byte, sha1.BlockSize))
	},
}

// AcquireSHA1 returns a pooled, keyed HMAC-SHA1 hash.Hash. Callers must
// return it via PutSHA1 when done.
func AcquireSHA1(key []byte) *hmac {
	h := sha1Pool.Get().(*hmac) //nolint:forcetypeassert
	h.resetTo(key)
	return h
}

// PutSHA1 returns h to the pool.
func PutSHA1(h *hmac) {
	sha1Pool.Put(h)
}
