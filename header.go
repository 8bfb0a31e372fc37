package stun

import "fmt"

// Class is the 2-bit STUN message class.
type Class byte

// Possible message classes.
const (
	ClassRequest         Class = 0x00
	ClassIndication      Class = 0x01
	ClassSuccessResponse Class = 0x02
	ClassErrorResponse   Class = 0x03
)

func (c Class) String() string {
	switch c {
	case ClassRequest:
		return "request"
	case ClassIndication:
		return "indication"
	case ClassSuccessResponse:
		return "success response"
	case ClassErrorResponse:
		return "error response"
	default:
		return fmt.Sprintf("class(0x%x)", byte(c))
	}
}

// Method is the 12-bit STUN method.
type Method uint16

// Methods used by this port and its callers.
const (
	MethodBinding          Method = 0x001
	MethodAllocate         Method = 0x003
	MethodRefresh          Method = 0x004
	MethodSend             Method = 0x006
	MethodData             Method = 0x007
	MethodCreatePermission Method = 0x008
	MethodChannelBind      Method = 0x009
)

func (m Method) String() string {
	switch m {
	case MethodBinding:
		return "binding"
	case MethodAllocate:
		return "allocate"
	case MethodRefresh:
		return "refresh"
	case MethodSend:
		return "send"
	case MethodData:
		return "data"
	case MethodCreatePermission:
		return "create permission"
	case MethodChannelBind:
		return "channel bind"
	default:
		return fmt.Sprintf("method(0x%x)", uint16(m))
	}
}

// encodeType writes the first two header bytes for class and method per
// RFC 5389 Section 6's bit layout. This is the byte-level form of the
// original design's §4.5 formula:
//
//	buf[0] = (class >> 1) | ((method >> 6) & 0x3E)
//	buf[1] = ((class << 4) & 0x10) | ((method << 1) & 0xE0) | (method & 0x0F)
func encodeType(class Class, method Method) (b0, b1 byte) {
	c := uint16(class)
	m := uint16(method)
	b0 = byte((c >> 1) | ((m >> 6) & 0x3E))
	b1 = byte(((c << 4) & 0x10) | ((m << 1) & 0xE0) | (m & 0x0F))
	return b0, b1
}

// decodeType is the inverse of encodeType.
func decodeType(b0, b1 byte) (Class, Method) {
	c0 := (uint16(b1) >> 4) & 0x1
	c1 := uint16(b0) & 0x1
	class := Class((c1 << 1) | c0)

	m0to3 := uint16(b1) & 0x0F
	m4to6 := (uint16(b1) >> 5) & 0x07
	m7to11 := (uint16(b0) >> 1) & 0x1F
	method := Method(m0to3 | (m4to6 << 4) | (m7to11 << 7))

	return class, method
}
