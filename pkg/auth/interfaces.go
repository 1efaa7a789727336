package auth

import (
	"context"

	"github.com/peerlink-labs/walletauth-go/pkg/types"
)

// Collaborators consumed by the Authenticator. All are supplied at
// construction time so the Authenticator stays testable with fakes.

// MessageFormatter renders an auth payload and address into the canonical
// challenge text presented to the signer. Must be deterministic; fails only
// when the payload is malformed.
type MessageFormatter interface {
	Format(payload *types.AuthPayload, address string) (string, error)
}

// RawSigner produces signature bytes over a message with raw key material.
// Hex encoding of the output is the Authenticator's job, not the signer's.
type RawSigner interface {
	Sign(message []byte, privateKey []byte) ([]byte, error)
}

// DirectVerifier validates a signature by recovering the signing address from
// the signature bytes and comparing it to the claimed address.
type DirectVerifier interface {
	Verify(ctx context.Context, signature, message []byte, address string) error
}

// ContractVerifier validates a signature by calling a contract at the claimed
// address on the given chain. May block on a network call; implementations
// must honor ctx cancellation.
type ContractVerifier interface {
	Verify(ctx context.Context, signature, message []byte, address string, chainId string) error
}
