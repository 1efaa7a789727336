package auth

import (
	"testing"

	"github.com/peerlink-labs/walletauth-go/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() *types.AuthPayload {
	return &types.AuthPayload{
		Domain:  "app.example.com",
		Aud:     "https://app.example.com/login",
		Version: "1",
		Nonce:   "32891756",
		ChainId: "eip155:1",
		Iat:     "2026-08-29T10:00:00Z",
	}
}

const sampleAddress = "0x9d85ca56217d2bb651b00f15e694eb7e713637d4"

func TestSIWEFormatter_MinimalPayload(t *testing.T) {
	message, err := SIWEFormatter{}.Format(samplePayload(), sampleAddress)
	require.NoError(t, err)

	expected := "app.example.com wants you to sign in with your Ethereum account:\n" +
		sampleAddress + "\n" +
		"\n" +
		"URI: https://app.example.com/login\n" +
		"Version: 1\n" +
		"Chain ID: 1\n" +
		"Nonce: 32891756\n" +
		"Issued At: 2026-08-29T10:00:00Z"
	assert.Equal(t, expected, message)
}

func TestSIWEFormatter_AllOptionalFields(t *testing.T) {
	payload := samplePayload()
	payload.Statement = "Sign in to the example app."
	payload.Exp = "2026-08-29T11:00:00Z"
	payload.Nbf = "2026-08-29T09:00:00Z"
	payload.RequestId = "req-7"
	payload.Resources = []string{"ipfs://Qm123", "https://example.com/terms"}

	message, err := SIWEFormatter{}.Format(payload, sampleAddress)
	require.NoError(t, err)

	assert.Contains(t, message, "\nSign in to the example app.\n")
	assert.Contains(t, message, "Expiration Time: 2026-08-29T11:00:00Z")
	assert.Contains(t, message, "Not Before: 2026-08-29T09:00:00Z")
	assert.Contains(t, message, "Request ID: req-7")
	assert.Contains(t, message, "Resources:\n- ipfs://Qm123\n- https://example.com/terms")
}

func TestSIWEFormatter_Deterministic(t *testing.T) {
	first, err := SIWEFormatter{}.Format(samplePayload(), sampleAddress)
	require.NoError(t, err)
	second, err := SIWEFormatter{}.Format(samplePayload(), sampleAddress)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSIWEFormatter_MalformedPayload(t *testing.T) {
	_, err := SIWEFormatter{}.Format(nil, sampleAddress)
	require.Error(t, err)

	_, err = SIWEFormatter{}.Format(samplePayload(), "")
	require.Error(t, err)

	payload := samplePayload()
	payload.Nonce = ""
	_, err = SIWEFormatter{}.Format(payload, sampleAddress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonce")

	payload = samplePayload()
	payload.Domain = ""
	_, err = SIWEFormatter{}.Format(payload, sampleAddress)
	require.Error(t, err)
}
