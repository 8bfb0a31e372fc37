package stun

import (
	"crypto/hmac"
	"crypto/md5" //nolint:gosec // MD5 is the RFC 5389 Section 15.4 long-term key derivation, not used for integrity

	pooledhmac "github.com/kvasari/stun/internal/hmac"
)

const messageIntegrityValueSize = 20

// Credentials carries the key material a long-term or short-term
// MESSAGE-INTEGRITY computation is keyed with. Grounded on the teacher's
// NewLongTermIntegrity/NewShortTermIntegrity (integrity.go), which derive
// the same two key forms from username/realm/password.
type Credentials struct {
	Username string
	Realm    string
	Password string
}

// LongTermKey derives the long-term credential key, MD5(username ":"
// realm ":" password), per RFC 5389 Section 15.4.
func (c Credentials) LongTermKey() []byte {
	sum := md5.Sum([]byte(c.Username + ":" + c.Realm + ":" + c.Password)) //nolint:gosec
	return sum[:]
}

// ShortTermKey is the short-term credential key: the password bytes
// verbatim, per RFC 5389 Section 15.4.
func (c Credentials) ShortTermKey() []byte {
	return []byte(c.Password)
}

// reserveMessageIntegrity reserves the MESSAGE-INTEGRITY TLV (header plus
// a zeroed 20-byte payload) and returns the payload's offset in m.Raw.
// Reservation is split from the HMAC computation because Finish must
// reserve FINGERPRINT's room too before the HMAC input is fixed (§4.4).
func (m *Message) reserveMessageIntegrity() (int, error) {
	return m.Append(AttrMessageIntegrity, messageIntegrityValueSize)
}

// commitMessageIntegrity computes HMAC-SHA1(key, prefix) and writes it
// into the reserved payload at payloadOffset, where prefix is m.Raw with
// FINGERPRINT's reserved TLV (already appended, still zero) excluded.
// The header's length field has by this point been updated to include
// both MESSAGE-INTEGRITY and FINGERPRINT, but the HMAC must be computed
// as though FINGERPRINT were not yet present; MESSAGE-INTEGRITY's own
// TLV stays in the input with its payload still zero, exactly as
// reserved.
//
// Grounded on the teacher's MessageIntegrity.AddTo (integrity.go) for the
// pooled-HMAC usage pattern; the slicing contract comes from the
// original design's §4.4.
func (m *Message) commitMessageIntegrity(key []byte, payloadOffset int) {
	prefix := m.Raw[:len(m.Raw)-(attributeHeaderSize+fingerprintValueSize)]

	h := pooledhmac.AcquireSHA1(key)
	defer pooledhmac.PutSHA1(h)
	_, _ = h.Write(prefix)
	sum := h.Sum(nil)

	copy(m.Raw[payloadOffset:payloadOffset+messageIntegrityValueSize], sum)
}

// attributeOffset returns the payload offset of the first attribute of
// type t. Used by CheckMessageIntegrity, which needs to zero
// MESSAGE-INTEGRITY's own payload before rehashing.
func (m *Message) attributeOffset(t AttrType) (int, bool) {
	for _, a := range m.Attributes {
		if a.Type == t {
			return a.Offset, true
		}
	}
	return 0, false
}

// CheckMessageIntegrity recomputes the HMAC over the message as Finish
// would have and compares it against the stored MESSAGE-INTEGRITY value.
// It exists for this package's own round-trip tests; a wire parser would
// need its own copy, out of scope here.
func (m *Message) CheckMessageIntegrity(key []byte) error {
	v, err := m.Get(AttrMessageIntegrity)
	if err != nil {
		return err
	}
	if len(v) != messageIntegrityValueSize {
		return ErrInvalidArgument
	}
	miOffset, ok := m.attributeOffset(AttrMessageIntegrity)
	if !ok {
		return ErrAttributeNotFound
	}

	cutoff := len(m.Raw)
	if m.Has(AttrFingerprint) {
		cutoff -= attributeHeaderSize + fingerprintValueSize
	}
	prefix := append([]byte(nil), m.Raw[:cutoff]...)
	for i := 0; i < messageIntegrityValueSize; i++ {
		prefix[miOffset+i] = 0
	}

	h := pooledhmac.AcquireSHA1(key)
	defer pooledhmac.PutSHA1(h)
	_, _ = h.Write(prefix)
	sum := h.Sum(nil)

	if !hmac.Equal(sum, v) {
		return ErrIntegrityMismatch
	}
	return nil
}
