package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsLongTermKey(t *testing.T) {
	c := Credentials{Username: "user", Realm: "realm", Password: "pass"}
	key := c.LongTermKey()
	assert.Len(t, key, 16)
	assert.Equal(t, key, c.LongTermKey())
}

func TestCredentialsShortTermKey(t *testing.T) {
	c := Credentials{Password: "pass"}
	assert.Equal(t, []byte("pass"), c.ShortTermKey())
}

func TestMessageIntegrityAppendAndCheck(t *testing.T) {
	var m Message
	m.Init(ClassRequest, MethodBinding, [TransactionIDSize]byte{})
	assert.NoError(t, m.AppendString(AttrUsername, "user"))

	key := []byte("pass")
	miOff, err := m.reserveMessageIntegrity()
	assert.NoError(t, err)
	fpOff, err := m.reserveFingerprint()
	assert.NoError(t, err)

	m.commitMessageIntegrity(key, miOff)
	m.commitFingerprint(fpOff)

	assert.NoError(t, m.CheckMessageIntegrity(key))
	assert.NoError(t, m.CheckFingerprint())
}

func TestMessageIntegrityMismatch(t *testing.T) {
	var m Message
	m.Init(ClassRequest, MethodBinding, [TransactionIDSize]byte{})

	key := []byte("pass")
	miOff, err := m.reserveMessageIntegrity()
	assert.NoError(t, err)
	fpOff, err := m.reserveFingerprint()
	assert.NoError(t, err)
	m.commitMessageIntegrity(key, miOff)
	m.commitFingerprint(fpOff)

	assert.ErrorIs(t, m.CheckMessageIntegrity([]byte("wrong")), ErrIntegrityMismatch)
}

func TestFinishShortAttributeOrderAndIntegrity(t *testing.T) {
	var m Message
	m.Init(ClassRequest, MethodBinding, [TransactionIDSize]byte{})

	assert.NoError(t, FinishShort(&m, "user", "pass", nil, nil))

	assert.Len(t, m.Attributes, 3)
	assert.Equal(t, AttrUsername, m.Attributes[0].Type)
	assert.Equal(t, AttrMessageIntegrity, m.Attributes[1].Type)
	assert.Equal(t, AttrFingerprint, m.Attributes[2].Type)

	assert.NoError(t, m.CheckMessageIntegrity([]byte("pass")))
	assert.NoError(t, m.CheckFingerprint())
}

func TestFinishNoCredentialsSkipsIntegrity(t *testing.T) {
	var m Message
	m.Init(ClassRequest, MethodBinding, [TransactionIDSize]byte{})

	assert.NoError(t, Finish(&m, nil))

	assert.Len(t, m.Attributes, 1)
	assert.Equal(t, AttrFingerprint, m.Attributes[0].Type)
	assert.False(t, m.Has(AttrMessageIntegrity))
}

func TestFinishTwiceReturnsFingerprintBeforeIntegrity(t *testing.T) {
	var m Message
	m.Init(ClassRequest, MethodBinding, [TransactionIDSize]byte{})

	assert.NoError(t, Finish(&m, nil))
	assert.ErrorIs(t, Finish(&m, nil), ErrFingerprintBeforeIntegrity)
}

func TestFinishLongOrder(t *testing.T) {
	var m Message
	m.Init(ClassRequest, MethodBinding, [TransactionIDSize]byte{})

	creds := Credentials{Username: "user", Realm: "realm", Password: "pass"}
	assert.NoError(t, FinishLong(&m, creds.Realm, creds.Username, creds.LongTermKey(), []byte("n0nce"), nil))

	types := make([]AttrType, len(m.Attributes))
	for i, a := range m.Attributes {
		types[i] = a.Type
	}
	assert.Equal(t, []AttrType{AttrRealm, AttrUsername, AttrNonce, AttrMessageIntegrity, AttrFingerprint}, types)
	assert.NoError(t, m.CheckMessageIntegrity(creds.LongTermKey()))
	assert.NoError(t, m.CheckFingerprint())
}
