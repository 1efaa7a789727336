package auth

import "errors"

var (
	// ErrEncoding indicates the challenge text was not valid UTF-8. Compliant
	// formatters never produce such text, so hitting this means a broken
	// collaborator upstream.
	ErrEncoding = errors.New("auth message is not valid UTF-8")

	// ErrMissingChainId indicates a contract-type signature was presented for
	// verification without the chain id the on-chain check requires.
	ErrMissingChainId = errors.New("chain id is required for contract signature verification")

	// ErrUnsupportedSignatureType indicates a signature carried a type tag
	// outside the closed direct/contract set.
	ErrUnsupportedSignatureType = errors.New("unsupported signature type")
)
