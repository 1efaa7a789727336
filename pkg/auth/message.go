package auth

import "strconv"

// signedMessagePrefix is the EIP-191 personal-sign prefix. The full signed
// byte sequence is prefix + decimal byte length of the message + the message
// itself. Any deviation from this exact layout invalidates every signature
// this package produces or checks.
const signedMessagePrefix = "\x19Ethereum Signed Message:\n"

// PrefixedMessage returns the byte sequence that is actually signed for a
// given challenge message.
func PrefixedMessage(message []byte) []byte {
	prefix := signedMessagePrefix + strconv.Itoa(len(message))
	out := make([]byte, 0, len(prefix)+len(message))
	out = append(out, prefix...)
	return append(out, message...)
}
