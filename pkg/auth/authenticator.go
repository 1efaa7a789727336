package auth

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/peerlink-labs/walletauth-go/pkg/types"
	"go.uber.org/zap"
)

// Authenticator signs and verifies wallet authentication challenges. Signing
// is a pure function of its inputs; verification may reach out to a remote
// ledger on the contract path. The Authenticator itself holds no mutable
// state, so concurrent calls are independent.
type Authenticator struct {
	formatter MessageFormatter
	signer    RawSigner
	direct    DirectVerifier
	contract  ContractVerifier
	logger    *zap.Logger
}

// NewAuthenticator wires an Authenticator from its collaborators.
func NewAuthenticator(
	formatter MessageFormatter,
	signer RawSigner,
	direct DirectVerifier,
	contract ContractVerifier,
	logger *zap.Logger,
) *Authenticator {
	return &Authenticator{
		formatter: formatter,
		signer:    signer,
		direct:    direct,
		contract:  contract,
		logger:    logger,
	}
}

// Sign formats the payload into the canonical challenge text, applies the
// personal-sign prefix, signs the prefixed bytes and wraps the result as a
// hex string tagged with signatureType.
//
// The address is used only for message formatting; it is not bound to the
// signature at this layer. signatureType selects which verifier a later
// Verify call dispatches to, never which signing primitive runs here.
func (a *Authenticator) Sign(
	payload *types.AuthPayload,
	address string,
	privateKey []byte,
	signatureType types.CacaoSignatureType,
) (*types.CacaoSignature, error) {
	message, err := a.formatter.Format(payload, address)
	if err != nil {
		return nil, fmt.Errorf("failed to format auth payload: %w", err)
	}
	if !utf8.ValidString(message) {
		return nil, ErrEncoding
	}

	signature, err := a.signer.Sign(PrefixedMessage([]byte(message)), privateKey)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("signed auth challenge",
		zap.String("address", address),
		zap.String("signatureType", signatureType.String()),
	)

	return &types.CacaoSignature{
		T: signatureType,
		S: "0x" + hex.EncodeToString(signature),
	}, nil
}

// Verify checks signature against the canonical challenge text. The caller
// must pass the identical text that was signed; it is not re-derived here.
// chainId is mandatory for contract-type signatures and ignored otherwise.
//
// Verifier failures are returned as-is so callers can distinguish the
// underlying reason (bad signature, unsupported chain, RPC failure).
func (a *Authenticator) Verify(
	ctx context.Context,
	signature *types.CacaoSignature,
	message string,
	address string,
	chainId string,
) error {
	if !utf8.ValidString(message) {
		return ErrEncoding
	}

	raw, err := hex.DecodeString(strings.TrimPrefix(signature.S, "0x"))
	if err != nil {
		return fmt.Errorf("failed to decode signature hex: %w", err)
	}
	prefixed := PrefixedMessage([]byte(message))

	switch signature.T {
	case types.SignatureTypeDirect:
		return a.direct.Verify(ctx, raw, prefixed, address)
	case types.SignatureTypeContract:
		if chainId == "" {
			return ErrMissingChainId
		}
		return a.contract.Verify(ctx, raw, prefixed, address, chainId)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedSignatureType, signature.T)
	}
}
