package stun

import "github.com/pion/logging"

// InitRequest initializes m as a new REQUEST-class message for method,
// drawing a fresh transaction ID from src (DefaultTransactionIDSource if
// src is nil). Grounded on the original design's init_request.
func InitRequest(m *Message, method Method, src TransactionIDSource) {
	if src == nil {
		src = DefaultTransactionIDSource
	}
	m.Init(ClassRequest, method, src.NewTransactionID())
}

// InitResponse initializes m as a success response to request, copying
// its method and transaction ID verbatim. request must be a REQUEST;
// violating this is a programmer error, matching the original design's
// init_response precondition.
func InitResponse(m *Message, request *Message) {
	if request.Class != ClassRequest {
		panic("stun: InitResponse called on a non-request message")
	}
	m.Init(ClassSuccessResponse, request.Method, request.TransactionID)
}

// InitError initializes m as an ERROR-class response to request carrying
// code, and immediately appends ERROR-CODE.
func InitError(m *Message, request *Message, code int) error {
	if request.Class != ClassRequest {
		panic("stun: InitError called on a non-request message")
	}
	m.Init(ClassErrorResponse, request.Method, request.TransactionID)
	return m.AppendErrorCode(code)
}

// InitErrorUnknown initializes m as a 420 (Unknown Attribute) response
// to request and appends an UNKNOWN-ATTRIBUTES list built from unknown.
// Discovering which of request's attributes were unrecognized is the
// parser's job; this package only encodes the list it is handed.
func InitErrorUnknown(m *Message, request *Message, unknown []AttrType) error {
	if err := InitError(m, request, int(CodeUnknownAttribute)); err != nil {
		return err
	}
	return m.AppendUnknownAttributes(unknown)
}

// nopLogger is the façade's default when the caller supplies none: all
// Finish* calls remain usable without forcing a logging dependency on
// callers who don't want one.
var nopLogger logging.LeveledLogger = logging.NewDefaultLoggerFactory().NewLogger("stun") //nolint:gochecknoglobals

// FinishLong finalizes m under long-term credentials, performing, in the
// fixed order required by the original design's §4.5:
//
//  1. REALM, if realm is non-empty.
//  2. USERNAME, if username is non-empty.
//  3. NONCE, if nonce is non-empty.
//  4. Reserve MESSAGE-INTEGRITY, if key is non-empty.
//  5. Reserve FINGERPRINT.
//  6. Compute and write MESSAGE-INTEGRITY, if key was present.
//  7. Compute and write FINGERPRINT.
//
// log may be nil, in which case a no-op logger is used. Returns
// ErrFingerprintBeforeIntegrity if m already carries a FINGERPRINT (i.e.
// Finish was already called on it).
func FinishLong(m *Message, realm, username string, key, nonce []byte, log logging.LeveledLogger) error {
	if log == nil {
		log = nopLogger
	}
	if m.Has(AttrFingerprint) {
		return ErrFingerprintBeforeIntegrity
	}

	if realm != "" {
		if err := m.AppendString(AttrRealm, realm); err != nil {
			return err
		}
		log.Tracef("stun: appended REALM (%d bytes)", len(realm))
	}
	if username != "" {
		if err := m.AppendString(AttrUsername, username); err != nil {
			return err
		}
		log.Tracef("stun: appended USERNAME (%d bytes)", len(username))
	}
	if len(nonce) > 0 {
		if err := m.AppendBytes(AttrNonce, nonce); err != nil {
			return err
		}
		log.Tracef("stun: appended NONCE (%d bytes)", len(nonce))
	}

	haveKey := len(key) > 0
	var miOffset int
	if haveKey {
		var err error
		miOffset, err = m.reserveMessageIntegrity()
		if err != nil {
			return err
		}
	}

	fpOffset, err := m.reserveFingerprint()
	if err != nil {
		return err
	}

	if haveKey {
		m.commitMessageIntegrity(key, miOffset)
		log.Debug("stun: computed MESSAGE-INTEGRITY")
	}
	m.commitFingerprint(fpOffset)
	log.Debug("stun: computed FINGERPRINT")

	return nil
}

// FinishShort finalizes m under short-term credentials: equivalent to
// FinishLong with an empty realm and the password used directly as the
// MESSAGE-INTEGRITY key.
func FinishShort(m *Message, username, password string, nonce []byte, log logging.LeveledLogger) error {
	var key []byte
	if password != "" {
		key = []byte(password)
	}
	return FinishLong(m, "", username, key, nonce, log)
}

// Finish finalizes m with no credentials: REALM, USERNAME and NONCE are
// all omitted and MESSAGE-INTEGRITY is skipped, leaving only FINGERPRINT.
func Finish(m *Message, log logging.LeveledLogger) error {
	return FinishShort(m, "", "", nil, log)
}
