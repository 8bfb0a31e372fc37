package stun

import (
	"hash/crc32"

	"github.com/kvasari/stun/internal/byteutil"
)

// fingerprintXOR is XORed into the computed CRC-32 per RFC 5389 Section
// 15.5, so that an application payload that also happens to carry a
// plain CRC-32 cannot be mistaken for a STUN FINGERPRINT.
const fingerprintXOR uint32 = 0x5354554E

const fingerprintValueSize = 4

// fingerprintValue is CRC-32 (IEEE 802.3 polynomial) of b, XORed with
// fingerprintXOR. Grounded on the teacher's FingerprintValue
// (fingerprint.go).
func fingerprintValue(b []byte) uint32 {
	return crc32.ChecksumIEEE(b) ^ fingerprintXOR
}

// reserveFingerprint reserves the FINGERPRINT TLV (header plus a
// zeroed 4-byte payload) and returns the payload's offset in m.Raw.
// Splitting reservation from the CRC write lets Finish reserve
// FINGERPRINT's room before computing MESSAGE-INTEGRITY's HMAC (whose
// input must already account for FINGERPRINT's bytes, per §4.4) while
// deferring the actual CRC — which must cover everything, including
// the now-final MESSAGE-INTEGRITY payload — until last.
func (m *Message) reserveFingerprint() (int, error) {
	return m.Append(AttrFingerprint, fingerprintValueSize)
}

// commitFingerprint computes the CRC-32 over the message up to (but
// excluding) FINGERPRINT's own payload — which, by construction, is
// everything in m.Raw before payloadOffset — and writes it there.
func (m *Message) commitFingerprint(payloadOffset int) {
	val := fingerprintValue(m.Raw[:payloadOffset])
	byteutil.PutUint32BE(m.Raw[payloadOffset:payloadOffset+fingerprintValueSize], val)
}

// AppendFingerprint reserves and immediately computes FINGERPRINT in one
// call; valid only when FINGERPRINT is the last attribute the message
// will ever carry (e.g. Finish with no credentials, or standalone
// tests), since nothing may follow it in the hash input.
func (m *Message) AppendFingerprint() error {
	off, err := m.reserveFingerprint()
	if err != nil {
		return err
	}
	m.commitFingerprint(off)
	return nil
}

// CheckFingerprint verifies a FINGERPRINT attribute against the message
// bytes that precede it. It exists for this package's own tests, which
// must round-trip what Finish wrote; general decoding belongs to the
// parser, out of scope for this package.
func (m *Message) CheckFingerprint() error {
	v, err := m.Get(AttrFingerprint)
	if err != nil {
		return err
	}
	if len(v) != fingerprintValueSize {
		return ErrInvalidArgument
	}
	payloadStart := len(m.Raw) - fingerprintValueSize
	expected := fingerprintValue(m.Raw[:payloadStart])
	if expected != byteutil.Uint32BE(v) {
		return ErrFingerprintMismatch
	}
	return nil
}
