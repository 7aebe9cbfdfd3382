package service

import "math/rand/v2"

const (
	invitationCodeLength   = 6
	invitationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// randomInvitationCode returns invitationCodeLength characters drawn from [A-Z0-9]. Uniqueness is checked
// by the caller.
func randomInvitationCode() string {
	code := make([]byte, invitationCodeLength)
	for i := range code {
		code[i] = invitationCodeAlphabet[rand.IntN(len(invitationCodeAlphabet))] // nolint:gosec
	}
	return string(code)
}
