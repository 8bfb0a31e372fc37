package address

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetIPv4FromStringAndString(t *testing.T) {
	var a Address
	ok := a.SetIPv4FromString("192.0.2.1", 3478)
	assert.True(t, ok)
	assert.Equal(t, IPv4, a.Family())
	assert.Equal(t, "192.0.2.1:3478", a.String())
}

func TestSetIPv4FromStringFailureLeavesAddressUntouched(t *testing.T) {
	var a Address
	a.SetIPv4FromString("192.0.2.1", 3478)
	before := a

	ok := a.SetIPv4FromString("not-an-ip", 9)
	assert.False(t, ok)
	assert.Equal(t, before, a)
}

func TestRoundTripUDPAddr(t *testing.T) {
	var a Address
	a.SetIPv4FromString("203.0.113.7", 4242)

	u, err := a.ToUDPAddr()
	assert.NoError(t, err)

	var b Address
	assert.NoError(t, b.SetFromUDPAddr(u))

	assert.True(t, Equal(a, b))
}

func TestRoundTripIPv6(t *testing.T) {
	ip := net.ParseIP("2001:db8::1")
	var a Address
	assert.NoError(t, a.SetFromUDPAddr(&net.UDPAddr{IP: ip, Port: 5000}))

	u, err := a.ToUDPAddr()
	assert.NoError(t, err)

	var b Address
	assert.NoError(t, b.SetFromUDPAddr(u))
	assert.True(t, Equal(a, b))
}

func TestSetFromUDPAddrUnsupportedFamily(t *testing.T) {
	var a Address
	err := a.SetFromUDPAddr(&net.UDPAddr{IP: net.IP{1, 2, 3}, Port: 1})
	assert.ErrorIs(t, err, ErrUnsupportedFamily)
}

func TestIsPrivate(t *testing.T) {
	privateCases := []string{"10.0.0.1", "172.16.0.1", "192.168.1.1", "127.0.0.1"}
	for _, s := range privateCases {
		var a Address
		a.SetIPv4FromString(s, 0)
		got, err := a.IsPrivate()
		assert.NoError(t, err)
		assert.Truef(t, got, "%s should be private", s)
	}

	publicCases := []string{"8.8.8.8", "172.32.0.1", "192.169.0.1"}
	for _, s := range publicCases {
		var a Address
		a.SetIPv4FromString(s, 0)
		got, err := a.IsPrivate()
		assert.NoError(t, err)
		assert.Falsef(t, got, "%s should not be private", s)
	}
}

func TestIsPrivateRejectsIPv6(t *testing.T) {
	var a Address
	assert.NoError(t, a.SetFromUDPAddr(&net.UDPAddr{IP: net.ParseIP("2001:db8::1"), Port: 1}))
	_, err := a.IsPrivate()
	assert.ErrorIs(t, err, ErrUnsupportedFamily)
}

func TestEqualDistinguishesFamily(t *testing.T) {
	var v4 Address
	v4.SetIPv4FromString("10.0.0.1", 1)

	var v6 Address
	assert.NoError(t, v6.SetFromUDPAddr(&net.UDPAddr{IP: net.ParseIP("::1"), Port: 1}))

	assert.False(t, Equal(v4, v6))
}

func TestFamilyString(t *testing.T) {
	assert.Equal(t, "ipv4", IPv4.String())
	assert.Equal(t, "ipv6", IPv6.String())
	assert.Equal(t, "unknown", Unknown.String())
}
