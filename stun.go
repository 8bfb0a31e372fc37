// Package stun builds Session Traversal Utilities for NAT (STUN, RFC 5389)
// messages.
//
// Definitions
//
// STUN Agent: an entity that implements the STUN protocol, either a STUN
// client or a STUN server.
//
// STUN Client: an entity that sends STUN requests and receives STUN
// responses. A STUN client can also send indications.
//
// STUN Server: an entity that receives STUN requests and sends STUN
// responses. A STUN server can also send indications.
//
// Transport Address: the combination of an IP address and port number.
//
// This package only builds messages; it does not parse or validate them,
// perform socket I/O, or make authentication-policy decisions. A
// conforming parser is assumed to exist on the receiving side and to be
// symmetric with the encoding performed here.
package stun

// DefaultPort is the IANA-assigned port for the "stun" protocol.
const DefaultPort = 3478

const (
	// magicCookie is the fixed value that marks a buffer as a STUN
	// message per RFC 5389 Section 6.
	magicCookie = 0x2112A442

	messageHeaderSize   = 20
	attributeHeaderSize = 4

	// TransactionIDSize is the length in bytes of a STUN transaction ID.
	TransactionIDSize = 12

	// MaxMessageSize is the largest message this package will build,
	// per spec STUN_MAXMSG: 65535 (the largest value the 16-bit UDP
	// length field can carry) minus the 20-byte STUN header, which is
	// the only overhead this package's own wire format imposes.
	MaxMessageSize = 65535 - messageHeaderSize
)
