package auth

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixedMessage_ExactByteLayout(t *testing.T) {
	got := PrefixedMessage([]byte("hello"))
	assert.Equal(t, []byte("\x19Ethereum Signed Message:\n5hello"), got)
}

func TestPrefixedMessage_DecimalLength(t *testing.T) {
	message := []byte(strings.Repeat("a", 123))
	got := PrefixedMessage(message)

	require.True(t, bytes.HasPrefix(got, []byte("\x19Ethereum Signed Message:\n123")))
	assert.True(t, bytes.HasSuffix(got, message))
	assert.Len(t, got, len("\x19Ethereum Signed Message:\n123")+len(message))
}

func TestPrefixedMessage_EmptyMessage(t *testing.T) {
	got := PrefixedMessage(nil)
	assert.Equal(t, []byte("\x19Ethereum Signed Message:\n0"), got)
}

func TestPrefixedMessage_SingleByteChangeChangesOutput(t *testing.T) {
	message := []byte("authorize session 42")
	original := PrefixedMessage(message)

	for i := range message {
		mutated := append([]byte{}, message...)
		mutated[i] ^= 0x01
		assert.NotEqual(t, original, PrefixedMessage(mutated))
	}
}
