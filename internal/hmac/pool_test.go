package hmac

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcquireSHA1MatchesStandardLibrary(t *testing.T) {
	key := []byte("a sample key")
	msg := []byte("the quick brown fox jumps over the lazy dog")

	ref := hmac.New(sha1.New, key)
	ref.Write(msg) //nolint:errcheck,gosec
	want := ref.Sum(nil)

	h := AcquireSHA1(key)
	defer PutSHA1(h)
	h.Write(msg) //nolint:errcheck,gosec
	got := h.Sum(nil)

	assert.Equal(t, want, got)
}

func TestAcquireSHA1ResetAllowsReuse(t *testing.T) {
	key := []byte("key")
	h := AcquireSHA1(key)
	h.Write([]byte("first")) //nolint:errcheck,gosec
	first := h.Sum(nil)

	h.Reset()
	h.Write([]byte("first")) //nolint:errcheck,gosec
	second := h.Sum(nil)

	assert.Equal(t, first, second)
	PutSHA1(h)
}

func TestPoolRekeysOnAcquire(t *testing.T) {
	h1 := AcquireSHA1([]byte("key-one"))
	h1.Write([]byte("payload")) //nolint:errcheck,gosec
	sum1 := h1.Sum(nil)
	PutSHA1(h1)

	h2 := AcquireSHA1([]byte("key-two"))
	h2.Write([]byte("payload")) //nolint:errcheck,gosec
	sum2 := h2.Sum(nil)
	PutSHA1(h2)

	assert.NotEqual(t, sum1, sum2)
}

func TestAcquireSHA1SizeAndBlockSize(t *testing.T) {
	h := AcquireSHA1([]byte("key"))
	defer PutSHA1(h)
	assert.Equal(t, sha1.Size, h.Size())
	assert.Equal(t, sha1.BlockSize, h.BlockSize())
}
