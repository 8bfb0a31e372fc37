package stun

// Error is the type used for constant, comparable sentinel errors in this
// package. See http://dave.cheney.net/2016/04/07/constant-errors.
type Error string

func (e Error) Error() string { return string(e) }

// Error kinds returned by append and finish operations. Callers abort the
// message on first failure; there is no partial rollback.
const (
	// ErrNoBufferSpace means the message would exceed either the
	// caller's declared maximum length or MaxMessageSize.
	ErrNoBufferSpace Error = "stun: no buffer space"

	// ErrInvalidArgument means an error code fell outside [300, 699], or
	// a checked MESSAGE-INTEGRITY or FINGERPRINT value had the wrong
	// length.
	ErrInvalidArgument Error = "stun: invalid argument"

	// ErrUnsupportedFamily means an address family other than IPv4 or
	// IPv6 was supplied.
	ErrUnsupportedFamily Error = "stun: unsupported address family"

	// ErrAttributeNotFound means the requested attribute is absent from
	// the message (used by test helpers and Message.Get).
	ErrAttributeNotFound Error = "stun: attribute not found"

	// ErrFingerprintBeforeIntegrity means FINGERPRINT has already been
	// written, so MESSAGE-INTEGRITY can no longer be added: the fixed
	// ordering (REALM, USERNAME, NONCE, MESSAGE-INTEGRITY, FINGERPRINT)
	// would be violated.
	ErrFingerprintBeforeIntegrity Error = "stun: message-integrity after fingerprint"

	// ErrIntegrityMismatch means a computed HMAC did not match the
	// value carried in MESSAGE-INTEGRITY.
	ErrIntegrityMismatch Error = "stun: integrity check failed"

	// ErrFingerprintMismatch means a computed CRC-32 did not match the
	// value carried in FINGERPRINT.
	ErrFingerprintMismatch Error = "stun: fingerprint check failed"
)
