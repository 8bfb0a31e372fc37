// Package address provides the tagged network-endpoint value type STUN
// attribute encoding consumes: an IPv4 or IPv6 host plus a port, with
// conversions to and from net.UDPAddr and text.
//
// Grounded on the teacher's MappedAddress/TransportAddr value types
// (addr.go, transport_addr.go), generalized into the closed tagged union
// the original design calls for instead of a struct with overlapping
// storage: a family discriminant, a fixed backing array, and accessors
// that only ever read the bytes the active family wrote.
package address

import (
	"bytes"
	"net"
	"strconv"

	"github.com/kvasari/stun/internal/byteutil"
)

// Family identifies which variant of Address is active.
type Family byte

// Possible Family values. The zero value, Unknown, is only legal on a
// freshly constructed Address that has not yet been set.
const (
	Unknown Family = iota
	IPv4
	IPv6
)

func (f Family) String() string {
	switch f {
	case IPv4:
		return "ipv4"
	case IPv6:
		return "ipv6"
	default:
		return "unknown"
	}
}

// Address is a tagged union of an IPv4 or IPv6 transport address. The zero
// value is an empty, family-less address; it is only legal to call a
// setter on it before any read.
type Address struct {
	family Family
	bytes  [16]byte // 4 bytes used for IPv4, all 16 for IPv6
	port   uint16
}

// New returns an empty Address with no family set.
func New() Address {
	return Address{}
}

// Family reports which variant is active.
func (a Address) Family() Family { return a.family }

// Port returns the host-order port. Valid only if Family() != Unknown.
func (a Address) Port() uint16 { return a.port }

// SetIPv4 sets the address to the given host-order 32-bit IPv4 address.
func (a *Address) SetIPv4(host uint32, port uint16) {
	var b [4]byte
	byteutil.PutUint32BE(b[:], host)
	a.family = IPv4
	copy(a.bytes[:4], b[:])
	for i := 4; i < 16; i++ {
		a.bytes[i] = 0
	}
	a.port = port
}

// SetIPv4FromString parses s as a dotted-quad IPv4 address and sets the
// address to it, returning true on success. On failure a is left
// untouched (the original design left this case unspecified; this port
// resolves it explicitly, per the spec's open question).
func (a *Address) SetIPv4FromString(s string, port uint16) bool {
	ip := net.ParseIP(s)
	if ip == nil {
		return false
	}
	v4 := ip.To4()
	if v4 == nil {
		return false
	}
	a.family = IPv4
	copy(a.bytes[:4], v4)
	for i := 4; i < 16; i++ {
		a.bytes[i] = 0
	}
	a.port = port
	return true
}

// SetIPv6 sets the address to the given 16-byte network-order IPv6
// payload.
func (a *Address) SetIPv6(b [16]byte, port uint16) {
	a.family = IPv6
	a.bytes = b
	a.port = port
}

// SetFromUDPAddr inspects u's IP length and sets the matching variant.
// It returns ErrUnsupportedFamily for anything other than a 4- or
// 16-byte IP, mirroring the original design's assertion but surfaced as
// an error, as is idiomatic for a Go library.
func (a *Address) SetFromUDPAddr(u *net.UDPAddr) error {
	if u == nil {
		return ErrUnsupportedFamily
	}
	ip4 := u.IP.To4()
	switch {
	case ip4 != nil:
		a.family = IPv4
		copy(a.bytes[:4], ip4)
		for i := 4; i < 16; i++ {
			a.bytes[i] = 0
		}
	case len(u.IP) == net.IPv6len:
		a.family = IPv6
		copy(a.bytes[:], u.IP)
	default:
		return ErrUnsupportedFamily
	}
	a.port = uint16(u.Port) //nolint:gosec // validated port range is caller's responsibility, same as the original design
	return nil
}

// ToUDPAddr is the inverse of SetFromUDPAddr.
func (a Address) ToUDPAddr() (*net.UDPAddr, error) {
	switch a.family {
	case IPv4:
		ip := make(net.IP, net.IPv4len)
		copy(ip, a.bytes[:4])
		return &net.UDPAddr{IP: ip, Port: int(a.port)}, nil
	case IPv6:
		ip := make(net.IP, net.IPv6len)
		copy(ip, a.bytes[:])
		return &net.UDPAddr{IP: ip, Port: int(a.port)}, nil
	default:
		return nil, ErrUnsupportedFamily
	}
}

// IP returns the raw address bytes for the active family (4 bytes for
// IPv4, 16 for IPv6), or nil if the family is Unknown.
func (a Address) IP() net.IP {
	switch a.family {
	case IPv4:
		ip := make(net.IP, net.IPv4len)
		copy(ip, a.bytes[:4])
		return ip
	case IPv6:
		ip := make(net.IP, net.IPv6len)
		copy(ip, a.bytes[:])
		return ip
	default:
		return nil
	}
}

// String returns the canonical textual form, e.g. "192.0.2.1:3478" or
// "[2001:db8::1]:3478".
func (a Address) String() string {
	ip := a.IP()
	if ip == nil {
		return "<unset>"
	}
	return net.JoinHostPort(ip.String(), strconv.Itoa(int(a.port)))
}

// Equal reports whether a and b have the same family, address bytes, and
// port.
func Equal(a, b Address) bool {
	if a.family != b.family || a.port != b.port {
		return false
	}
	switch a.family {
	case IPv4:
		return bytes.Equal(a.bytes[:4], b.bytes[:4])
	case IPv6:
		return a.bytes == b.bytes
	default:
		return true // both Unknown
	}
}

// private IPv4 blocks per RFC 3330, as named in the original design:
// 10/8, 172.16/12, 192.168/16, 127/8 (loopback).
var privateBlocks = []struct {
	base [4]byte
	bits int
}{
	{[4]byte{10, 0, 0, 0}, 8},
	{[4]byte{172, 16, 0, 0}, 12},
	{[4]byte{192, 168, 0, 0}, 16},
	{[4]byte{127, 0, 0, 0}, 8},
}

// IsPrivate reports whether a is a private-use IPv4 address. It is only
// defined for IPv4; IPv6 addresses return ErrUnsupportedFamily, matching
// the original design's assertion failure but as an error, as do all
// other fallible operations in this port.
func (a Address) IsPrivate() (bool, error) {
	if a.family != IPv4 {
		return false, ErrUnsupportedFamily
	}
	for _, blk := range privateBlocks {
		if matchesBlock([4]byte(a.bytes[:4]), blk.base, blk.bits) {
			return true, nil
		}
	}
	return false, nil
}

func matchesBlock(ip [4]byte, base [4]byte, bits int) bool {
	full := bits / 8
	for i := 0; i < full; i++ {
		if ip[i] != base[i] {
			return false
		}
	}
	rem := bits % 8
	if rem == 0 {
		return true
	}
	mask := byte(0xFF << (8 - rem))
	return ip[full]&mask == base[full]&mask
}
