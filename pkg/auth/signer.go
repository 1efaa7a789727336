package auth

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// EcdsaSigner signs messages with a raw secp256k1 private key, producing the
// 65-byte [R || S || V] signature format wallets emit for personal-sign
// requests.
type EcdsaSigner struct{}

var _ RawSigner = EcdsaSigner{}

// Sign hashes the message with keccak256 and signs the digest. privateKey is
// the raw 32-byte secp256k1 scalar.
func (EcdsaSigner) Sign(message []byte, privateKey []byte) ([]byte, error) {
	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	signature, err := crypto.Sign(crypto.Keccak256(message), key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}
	return signature, nil
}

// GenerateNonce returns a fresh hex nonce suitable for an AuthPayload.
func GenerateNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
