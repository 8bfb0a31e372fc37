package stun

import "fmt"

// AttrType is the 16-bit STUN attribute type. The builder treats most
// types opaquely; it only interprets the handful it writes itself
// (MESSAGE-INTEGRITY, FINGERPRINT, ERROR-CODE, UNKNOWN-ATTRIBUTES, the
// two address attributes). The full registry lives with the parser;
// this port only was not retrieved with an iana.go in the example pack
// (only its test survived retrieval), so the RFC 5389 assigned values
// are restated here directly, matching every attribute the teacher's
// addr.go, xoraddr.go, integrity.go, fingerprint.go, username.go,
// realm.go, nonce.go and software.go encode against.
type AttrType uint16

// RFC 5389 Section 18.2 comprehension-required and comprehension-optional
// attribute types used by this package.
const (
	AttrMappedAddress     AttrType = 0x0001
	AttrUsername          AttrType = 0x0006
	AttrMessageIntegrity  AttrType = 0x0008
	AttrErrorCode         AttrType = 0x0009
	AttrUnknownAttributes AttrType = 0x000A
	AttrRealm             AttrType = 0x0014
	AttrNonce             AttrType = 0x0015
	AttrXORMappedAddress  AttrType = 0x0020
	AttrSoftware          AttrType = 0x8022
	AttrAlternateServer   AttrType = 0x8023
	AttrFingerprint       AttrType = 0x8028
)

func (t AttrType) String() string {
	switch t {
	case AttrMappedAddress:
		return "MAPPED-ADDRESS"
	case AttrUsername:
		return "USERNAME"
	case AttrMessageIntegrity:
		return "MESSAGE-INTEGRITY"
	case AttrErrorCode:
		return "ERROR-CODE"
	case AttrUnknownAttributes:
		return "UNKNOWN-ATTRIBUTES"
	case AttrRealm:
		return "REALM"
	case AttrNonce:
		return "NONCE"
	case AttrXORMappedAddress:
		return "XOR-MAPPED-ADDRESS"
	case AttrSoftware:
		return "SOFTWARE"
	case AttrAlternateServer:
		return "ALTERNATE-SERVER"
	case AttrFingerprint:
		return "FINGERPRINT"
	default:
		return fmt.Sprintf("0x%04x", uint16(t))
	}
}
