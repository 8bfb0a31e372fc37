// Package byteutil provides the fixed-width big-endian encoding and
// attribute-padding helpers the STUN codec needs.
//
// Grounded on the teacher's bits/bits.go (present in the retrieved pack
// only as bit-reversal helpers for an unrelated bit-packing concern) and
// its padding.go, generalized here to the byte utilities the builder
// spec actually calls for: big-endian word writes and attribute padding
// to a 4-byte boundary.
package byteutil

// Padding is the STUN attribute alignment boundary in bytes.
const Padding = 4

// PadLen returns the number of padding bytes needed so that n+PadLen(n)
// is a multiple of Padding.
func PadLen(n int) int {
	return (Padding - (n % Padding)) % Padding
}

// PutUint16BE writes v to dst in big-endian order. dst must have length
// at least 2.
func PutUint16BE(dst []byte, v uint16) {
	_ = dst[1]
	dst[0] = byte(v >> 8)
	dst[1] = byte(v)
}

// PutUint32BE writes v to dst in big-endian order. dst must have length
// at least 4.
func PutUint32BE(dst []byte, v uint32) {
	_ = dst[3]
	dst[0] = byte(v >> 24)
	dst[1] = byte(v >> 16)
	dst[2] = byte(v >> 8)
	dst[3] = byte(v)
}

// Uint16BE reads a big-endian uint16 from the first 2 bytes of b.
func Uint16BE(b []byte) uint16 {
	_ = b[1]
	return uint16(b[0])<<8 | uint16(b[1])
}

// Uint32BE reads a big-endian uint32 from the first 4 bytes of b.
func Uint32BE(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
