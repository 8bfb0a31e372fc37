package stun

import (
	"net"

	"github.com/kvasari/stun/address"
	"github.com/kvasari/stun/internal/byteutil"
)

// AppendBytes reserves space for an attribute and copies src into it
// verbatim. Grounded on the teacher's Message.Add (message.go).
func (m *Message) AppendBytes(t AttrType, src []byte) error {
	off, err := m.Append(t, len(src))
	if err != nil {
		return err
	}
	copy(m.Raw[off:off+len(src)], src)
	return nil
}

// AppendFlag appends a zero-length attribute.
func (m *Message) AppendFlag(t AttrType) error {
	_, err := m.Append(t, 0)
	return err
}

// AppendUint32 appends a 4-byte big-endian attribute.
func (m *Message) AppendUint32(t AttrType, v uint32) error {
	var b [4]byte
	byteutil.PutUint32BE(b[:], v)
	return m.AppendBytes(t, b[:])
}

// AppendUint64 appends an 8-byte big-endian attribute, written as two
// big-endian 32-bit halves per the original design.
func (m *Message) AppendUint64(t AttrType, v uint64) error {
	var b [8]byte
	byteutil.PutUint32BE(b[0:4], uint32(v>>32))
	byteutil.PutUint32BE(b[4:8], uint32(v))
	return m.AppendBytes(t, b[:])
}

// AppendString appends s's bytes verbatim: no trailing NUL, no UTF-8
// validation, matching the original design's append_string.
func (m *Message) AppendString(t AttrType, s string) error {
	return m.AppendBytes(t, []byte(s))
}

const (
	familyIPv4 byte = 0x01
	familyIPv6 byte = 0x02
)

// encodeAddr writes the MAPPED-ADDRESS-style attribute body: one zero
// byte, one family byte, the port in network order, then 4 or 16
// address bytes. Shared by AppendAddress and AppendXORAddress so the
// latter only needs to transform the UDPAddr before calling into the
// same validated encode path (resolving the original design's open
// question about reusing one buffer for both).
func encodeAddr(u *net.UDPAddr) ([]byte, error) {
	ip4 := u.IP.To4()
	var body []byte
	switch {
	case ip4 != nil:
		body = make([]byte, 4+net.IPv4len)
		body[1] = familyIPv4
		byteutil.PutUint16BE(body[2:4], uint16(u.Port)) //nolint:gosec
		copy(body[4:], ip4)
	case len(u.IP) == net.IPv6len:
		body = make([]byte, 4+net.IPv6len)
		body[1] = familyIPv6
		byteutil.PutUint16BE(body[2:4], uint16(u.Port)) //nolint:gosec
		copy(body[4:], u.IP)
	default:
		return nil, ErrUnsupportedFamily
	}
	return body, nil
}

// AppendAddress encodes u as a MAPPED-ADDRESS-style attribute of type t.
// Returns ErrUnsupportedFamily for anything other than a 4- or 16-byte
// IP, and ErrNoBufferSpace on overflow (the original design's EINVAL is
// folded into ErrUnsupportedFamily here since net.UDPAddr cannot
// represent a socklen mismatch the way a raw sockaddr* can).
func (m *Message) AppendAddress(t AttrType, u *net.UDPAddr) error {
	body, err := encodeAddr(u)
	if err != nil {
		return err
	}
	return m.AppendBytes(t, body)
}

// AppendXORAddress encodes u as an XOR-MAPPED-ADDRESS-style attribute:
// the port is XORed with the top 16 bits of the magic cookie and the
// address bytes are XORed with the cookie followed by the message's
// transaction ID, per RFC 5389 Section 15.2, then the transformed value
// is appended via the same path as AppendAddress.
func (m *Message) AppendXORAddress(t AttrType, u *net.UDPAddr) error {
	if u.IP.To4() == nil && len(u.IP) != net.IPv6len {
		return ErrUnsupportedFamily
	}
	xored := &net.UDPAddr{IP: append(net.IP(nil), u.IP...), Port: u.Port}
	m.xorTransform(xored)
	return m.AppendAddress(t, xored)
}

// xorTransform applies the RFC 5389 Section 15.2 XOR in place.
func (m *Message) xorTransform(u *net.UDPAddr) {
	var cookie [4]byte
	byteutil.PutUint32BE(cookie[:], magicCookie)

	portXOR := uint16(cookie[0])<<8 | uint16(cookie[1])
	u.Port = int(uint16(u.Port) ^ portXOR) //nolint:gosec

	if ip4 := u.IP.To4(); ip4 != nil {
		for i := range ip4 {
			ip4[i] ^= cookie[i]
		}
		u.IP = ip4
		return
	}
	key := append(append([]byte(nil), cookie[:]...), m.TransactionID[:]...)
	for i := range u.IP {
		u.IP[i] ^= key[i]
	}
}

// AppendErrorCode appends an ERROR-CODE attribute body: two zero bytes,
// one class byte (code/100, asserted in [3,7]), one number byte
// (code%100), then the reason phrase bytes with no trailing NUL. code
// must be in [300, 699] or ErrInvalidArgument is returned.
func (m *Message) AppendErrorCode(code int) error {
	if code < 300 || code > 699 {
		return ErrInvalidArgument
	}
	class := code / 100
	if class < 3 || class > 7 {
		panic("stun: error code class out of range")
	}
	reason := ReasonPhrase(code)
	body := make([]byte, 4+len(reason))
	body[2] = byte(class)
	body[3] = byte(code % 100)
	copy(body[4:], reason)
	return m.AppendBytes(AttrErrorCode, body)
}

// AppendUnknownAttributes appends an UNKNOWN-ATTRIBUTES attribute: each
// id as a big-endian uint16, back to back.
func (m *Message) AppendUnknownAttributes(ids []AttrType) error {
	body := make([]byte, 2*len(ids))
	for i, id := range ids {
		byteutil.PutUint16BE(body[2*i:2*i+2], uint16(id))
	}
	return m.AppendBytes(AttrUnknownAttributes, body)
}

// AppendAddressValue is AppendAddress taking the package's Address value
// type directly, so callers built entirely on address.Address never need
// to touch net.UDPAddr themselves.
func (m *Message) AppendAddressValue(t AttrType, a address.Address) error {
	u, err := a.ToUDPAddr()
	if err != nil {
		return err
	}
	return m.AppendAddress(t, u)
}

// AppendXORAddressValue is AppendXORAddress taking an address.Address.
func (m *Message) AppendXORAddressValue(t AttrType, a address.Address) error {
	u, err := a.ToUDPAddr()
	if err != nil {
		return err
	}
	return m.AppendXORAddress(t, u)
}
