package verifier

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// EIP191Verifier checks a personal-sign signature by recovering the signing
// address and comparing it to the claimed address. No network access.
type EIP191Verifier struct {
	logger *zap.Logger
}

func NewEIP191Verifier(logger *zap.Logger) *EIP191Verifier {
	return &EIP191Verifier{logger: logger}
}

// Verify recovers the public key from signature over message and confirms it
// maps to address. message must already carry the personal-sign prefix.
func (v *EIP191Verifier) Verify(_ context.Context, signature, message []byte, address string) error {
	if len(signature) != crypto.SignatureLength {
		return fmt.Errorf("invalid signature length: %d (want %d)", len(signature), crypto.SignatureLength)
	}
	if !common.IsHexAddress(address) {
		return fmt.Errorf("invalid address format: %s", address)
	}

	// Wallets emit V as 27/28; crypto.SigToPub expects 0/1.
	sig := make([]byte, crypto.SignatureLength)
	copy(sig, signature)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	publicKey, err := crypto.SigToPub(crypto.Keccak256(message), sig)
	if err != nil {
		return fmt.Errorf("failed to recover public key: %w", err)
	}

	recovered := crypto.PubkeyToAddress(*publicKey)
	claimed := common.HexToAddress(address)
	if recovered != claimed {
		v.logger.Debug("recovered address mismatch",
			zap.String("recovered", recovered.Hex()),
			zap.String("claimed", claimed.Hex()),
		)
		return fmt.Errorf("recovered address %s does not match %s", recovered.Hex(), claimed.Hex())
	}

	return nil
}
