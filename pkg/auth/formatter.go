package auth

import (
	"fmt"
	"strings"

	"github.com/peerlink-labs/walletauth-go/pkg/types"
)

// SIWEFormatter renders the EIP-4361 ("Sign-In with Ethereum") message text.
// Output is a pure function of the payload and address, so both sides of a
// challenge derive identical bytes to sign and verify.
type SIWEFormatter struct{}

var _ MessageFormatter = SIWEFormatter{}

// Format builds the canonical challenge text. Fails if a mandatory payload
// field is empty.
func (SIWEFormatter) Format(payload *types.AuthPayload, address string) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("auth payload cannot be nil")
	}
	if address == "" {
		return "", fmt.Errorf("address cannot be empty")
	}
	for name, value := range map[string]string{
		"domain":  payload.Domain,
		"aud":     payload.Aud,
		"version": payload.Version,
		"nonce":   payload.Nonce,
		"chainId": payload.ChainId,
		"iat":     payload.Iat,
	} {
		if value == "" {
			return "", fmt.Errorf("auth payload field %q cannot be empty", name)
		}
	}

	// The chain reference is the part after the CAIP-2 namespace,
	// e.g. "eip155:1" -> "1".
	chainRef := payload.ChainId
	if i := strings.LastIndex(chainRef, ":"); i >= 0 {
		chainRef = chainRef[i+1:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s wants you to sign in with your Ethereum account:\n%s\n", payload.Domain, address)
	if payload.Statement != "" {
		fmt.Fprintf(&b, "\n%s\n", payload.Statement)
	}
	fmt.Fprintf(&b, "\nURI: %s\n", payload.Aud)
	fmt.Fprintf(&b, "Version: %s\n", payload.Version)
	fmt.Fprintf(&b, "Chain ID: %s\n", chainRef)
	fmt.Fprintf(&b, "Nonce: %s\n", payload.Nonce)
	fmt.Fprintf(&b, "Issued At: %s", payload.Iat)
	if payload.Exp != "" {
		fmt.Fprintf(&b, "\nExpiration Time: %s", payload.Exp)
	}
	if payload.Nbf != "" {
		fmt.Fprintf(&b, "\nNot Before: %s", payload.Nbf)
	}
	if payload.RequestId != "" {
		fmt.Fprintf(&b, "\nRequest ID: %s", payload.RequestId)
	}
	if len(payload.Resources) > 0 {
		b.WriteString("\nResources:")
		for _, resource := range payload.Resources {
			fmt.Fprintf(&b, "\n- %s", resource)
		}
	}

	return b.String(), nil
}
