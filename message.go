package stun

import (
	"fmt"

	"github.com/kvasari/stun/internal/byteutil"
)

// paddingByte is written after every attribute value that does not
// already land on a 4-byte boundary. RFC 5389 only requires padding
// bytes be ignored by receivers; this port follows the original
// design's choice of 0x20 (ASCII space) over 0x00 for compatibility
// with older STUN implementations that special-cased NUL padding.
const paddingByte = 0x20

// integrityReserve is the size of a MESSAGE-INTEGRITY TLV (header +
// 20-byte HMAC), added to every Append's space check. The check compares
// the attribute-section length plus this margin against the total-length
// cap, so the margin does not by itself leave room for MESSAGE-INTEGRITY
// and FINGERPRINT: Finish can still return ErrNoBufferSpace.
const integrityReserve = attributeHeaderSize + 20

// RawAttribute identifies a decoded TLV by type, length, and its
// payload's offset into the owning Message's Raw. Use Message.Get to
// read the payload bytes: Offset stays valid across a later Append's
// reallocation (it is a logical position, not a pointer), but a slice
// captured at append time would not.
type RawAttribute struct {
	Type   AttrType
	Length uint16
	Offset int
}

// Message is a caller-owned STUN message buffer. It is built in place:
// Init resets it to a 20-byte header, and each Append call grows Raw by
// exactly one padded TLV, refusing to grow past MaxLen (or
// MaxMessageSize, whichever is smaller).
//
// Grounded on the teacher's Message type (message.go): the same
// grow/Add/WriteHeader/WriteLength mechanics, adapted to enforce a
// caller-declared maximum and to return ErrNoBufferSpace instead of
// growing without bound.
type Message struct {
	Raw           []byte
	Class         Class
	Method        Method
	TransactionID [TransactionIDSize]byte
	Length        uint32 // attribute section length, mirrors header bytes 2:4

	// MaxLen is the caller-declared maximum total message length. Zero
	// means MaxMessageSize.
	MaxLen int

	// Attributes records every TLV appended so far, for Get/ordering
	// checks (e.g. ErrFingerprintBeforeIntegrity) and for tests.
	Attributes []RawAttribute
}

func (m *Message) effectiveMax() int {
	if m.MaxLen <= 0 || m.MaxLen > MaxMessageSize {
		return MaxMessageSize
	}
	return m.MaxLen
}

// Init writes the 20-byte STUN header: type (class+method), a zeroed
// length, the fixed magic cookie, and the transaction ID. It resets any
// previously built attributes.
func (m *Message) Init(class Class, method Method, transactionID [TransactionIDSize]byte) {
	m.Class = class
	m.Method = method
	m.TransactionID = transactionID
	m.Length = 0
	m.Attributes = m.Attributes[:0]
	m.Raw = append(m.Raw[:0], make([]byte, messageHeaderSize)...)
	m.writeHeader()
}

func (m *Message) writeHeader() {
	_ = m.Raw[:messageHeaderSize]
	b0, b1 := encodeType(m.Class, m.Method)
	m.Raw[0] = b0
	m.Raw[1] = b1
	byteutil.PutUint16BE(m.Raw[2:4], uint16(m.Length))
	byteutil.PutUint32BE(m.Raw[4:8], magicCookie)
	copy(m.Raw[8:messageHeaderSize], m.TransactionID[:])
}

// writeLength rewrites only the length field, used after Length changes
// post-hoc (e.g. MESSAGE-INTEGRITY/FINGERPRINT finalization).
func (m *Message) writeLength() {
	byteutil.PutUint16BE(m.Raw[2:4], uint16(m.Length))
}

// Append reserves space for one attribute TLV, per the original
// design's append-attribute primitive (§4.5):
//
//  1. mlen is always a multiple of 4 going in (enforced by padding).
//  2. the effective cap is MaxLen, bounded by MaxMessageSize.
//  3. fails with ErrNoBufferSpace if mlen+24+length would overflow it
//     (mlen excludes the 20-byte header; see integrityReserve).
//  4. writes the TLV header.
//  5. zeroes the payload slot and pads with paddingByte to the next
//     4-byte boundary.
//  6. advances the header length.
//
// It returns the offset of the zeroed payload slot. The payload is
// always zeroed, not just freshly-grown capacity: Init reuses the
// existing backing array across a Message's lifetime, so a slot at an
// offset a previous Finish once wrote into can otherwise carry stale
// bytes forward into the next build (MESSAGE-INTEGRITY's reserved slot
// must read as all-zero until commitMessageIntegrity fills it).
func (m *Message) Append(attrType AttrType, length int) (int, error) {
	if len(m.Raw) < messageHeaderSize {
		panic("stun: Append called before Init")
	}
	mlen := int(m.Length)
	if mlen%4 != 0 {
		panic("stun: header length not a multiple of 4")
	}
	max := m.effectiveMax()
	if mlen+integrityReserve+length > max {
		return 0, ErrNoBufferSpace
	}

	pad := byteutil.PadLen(length)
	total := attributeHeaderSize + length + pad
	first := messageHeaderSize + mlen
	last := first + total
	m.grow(last)

	tlv := m.Raw[first:last]
	byteutil.PutUint16BE(tlv[0:2], uint16(attrType))
	byteutil.PutUint16BE(tlv[2:4], uint16(length))
	payload := tlv[attributeHeaderSize : attributeHeaderSize+length]
	for i := range payload {
		payload[i] = 0
	}
	for i := attributeHeaderSize + length; i < total; i++ {
		tlv[i] = paddingByte
	}

	m.Length = uint32(mlen + total)
	m.writeLength()
	m.Attributes = append(m.Attributes, RawAttribute{
		Type:   attrType,
		Length: uint16(length),
		Offset: first + attributeHeaderSize,
	})

	return first + attributeHeaderSize, nil
}

func (m *Message) grow(n int) {
	for cap(m.Raw) < n {
		m.Raw = append(m.Raw, 0)
	}
	m.Raw = m.Raw[:n]
}

// Get returns the first attribute of the given type, or
// ErrAttributeNotFound. The returned slice always views the current
// m.Raw: Attributes only records each payload's offset, not a cached
// slice, since Raw can be reallocated by a later Append (e.g. Finish
// reserving FINGERPRINT after MESSAGE-INTEGRITY) and a slice captured at
// append time would keep pointing at the old, no-longer-live array.
func (m *Message) Get(t AttrType) ([]byte, error) {
	for _, a := range m.Attributes {
		if a.Type == t {
			return m.Raw[a.Offset : a.Offset+int(a.Length)], nil
		}
	}
	return nil, ErrAttributeNotFound
}

// Has reports whether an attribute of the given type is present.
func (m *Message) Has(t AttrType) bool {
	_, err := m.Get(t)
	return err == nil
}

func (m Message) String() string {
	return fmt.Sprintf("%s %s len=%d attrs=%d", m.Class, m.Method, m.Length, len(m.Attributes))
}
