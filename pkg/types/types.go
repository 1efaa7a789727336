package types

// CacaoSignatureType tags a CacaoSignature with the scheme a verifier must use.
// The set is closed: no third scheme exists, so dispatch sites switch
// exhaustively on it.
type CacaoSignatureType string

const (
	// SignatureTypeDirect marks a signature checked by recovering the signing
	// address from the signature bytes and comparing it to the claimed address.
	SignatureTypeDirect CacaoSignatureType = "direct"

	// SignatureTypeContract marks a signature checked by an on-chain contract
	// call on behalf of the claimed address (multisig/custodial wallets).
	SignatureTypeContract CacaoSignatureType = "contract"
)

func (t CacaoSignatureType) String() string {
	return string(t)
}

// CacaoSignature is the signed-authentication artifact produced by signing an
// auth challenge. S is the hex-encoded signature bytes ("0x"-prefixed).
//
// T is a bare label: it is not cryptographically bound to how the signature
// was actually produced. A mismatched label surfaces only when verification
// dispatches to the wrong verifier and fails there.
type CacaoSignature struct {
	T CacaoSignatureType `json:"t"`
	S string             `json:"s"`
}

// AuthPayload carries the unsigned challenge fields from which the canonical
// sign-in message text is derived. Constructed by the caller and treated as
// immutable; consumed once per sign/verify call.
type AuthPayload struct {
	// Domain is the authority requesting the signature (e.g. "app.example.com").
	Domain string `json:"domain"`

	// Aud is the URI the signature is intended for.
	Aud string `json:"aud"`

	// Version of the sign-in message format.
	Version string `json:"version"`

	// Nonce is caller-supplied entropy binding the challenge to one session.
	Nonce string `json:"nonce"`

	// ChainId is the CAIP-2 identifier of the chain the address lives on
	// (e.g. "eip155:1").
	ChainId string `json:"chainId"`

	// Type identifies the challenge header format (e.g. "eip4361").
	Type string `json:"type,omitempty"`

	// Iat is the issued-at timestamp, RFC 3339.
	Iat string `json:"iat"`

	// Exp is the optional expiry timestamp, RFC 3339.
	Exp string `json:"exp,omitempty"`

	// Nbf is the optional not-before timestamp, RFC 3339.
	Nbf string `json:"nbf,omitempty"`

	// Statement is the optional human-readable statement shown to the signer.
	Statement string `json:"statement,omitempty"`

	// RequestId is an optional caller-defined correlation identifier.
	RequestId string `json:"requestId,omitempty"`

	// Resources are optional URIs the signer is granting access to.
	Resources []string `json:"resources,omitempty"`
}
