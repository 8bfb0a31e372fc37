package address

// Error is a constant, comparable sentinel error, matching the parent
// package's Error string pattern.
type Error string

func (e Error) Error() string { return string(e) }

// ErrUnsupportedFamily means an address family other than IPv4 or IPv6
// was supplied, or an operation (IsPrivate) that is only defined for one
// family was called on the other.
const ErrUnsupportedFamily Error = "address: unsupported family"
