package stun

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReasonPhraseKnownCodes(t *testing.T) {
	cases := map[int]string{
		300: "Try alternate server",
		400: "Bad request",
		401: "Authorization required",
		420: "Unknown attribute",
		430: "Authentication expired",
		431: "Incorrect username/password",
		432: "Username required",
		433: "Secure connection required",
		434: "Authentication domain required",
		435: "Authentication token missing",
		436: "Unknown user name",
		438: "Authentication token expired",
		487: "Role conflict",
		500: "Temporary server error",
		600: "Unrecoverable failure",
	}
	for code, phrase := range cases {
		assert.Equal(t, phrase, ReasonPhrase(code))
		assert.LessOrEqual(t, len(phrase), 31)
	}
}

func TestReasonPhraseUnknownCode(t *testing.T) {
	assert.Equal(t, "Unknown error", ReasonPhrase(999))
}
