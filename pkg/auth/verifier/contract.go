package verifier

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/peerlink-labs/walletauth-go/pkg/config"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// isValidSignatureMagic is the bytes4 value an ERC-1271 contract returns for
// a valid signature: the selector of isValidSignature(bytes32,bytes).
var isValidSignatureMagic = [4]byte{0x16, 0x26, 0xba, 0x7e}

// EIP1271Verifier checks a signature by calling isValidSignature on a
// contract deployed at the claimed address. Used for multisig and custodial
// wallets whose signatures cannot be verified by key recovery.
//
// Clients are dialed lazily per chain and reused. Outbound RPC calls share a
// single rate limiter.
type EIP1271Verifier struct {
	rpcUrls map[config.ChainId]string
	limiter *rate.Limiter
	logger  *zap.Logger

	mu      sync.Mutex
	clients map[config.ChainId]*ethclient.Client
}

// NewEIP1271Verifier creates a contract-based verifier for the chains present
// in rpcUrls. Verification against any other chain fails.
func NewEIP1271Verifier(rpcUrls map[config.ChainId]string, logger *zap.Logger) *EIP1271Verifier {
	return &EIP1271Verifier{
		rpcUrls: rpcUrls,
		limiter: rate.NewLimiter(rate.Limit(10), 10),
		logger:  logger,
		clients: make(map[config.ChainId]*ethclient.Client),
	}
}

// Verify calls isValidSignature(keccak256(message), signature) on the
// contract at address and accepts iff the call returns the ERC-1271 magic
// value. message must already carry the personal-sign prefix.
func (v *EIP1271Verifier) Verify(ctx context.Context, signature, message []byte, address string, chainId string) error {
	if !common.IsHexAddress(address) {
		return fmt.Errorf("invalid address format: %s", address)
	}

	chain, err := config.ParseEip155ChainId(chainId)
	if err != nil {
		return err
	}

	client, err := v.client(ctx, chain)
	if err != nil {
		return err
	}

	if err := v.limiter.Wait(ctx); err != nil {
		return err
	}

	calldata, err := packIsValidSignature(crypto.Keccak256Hash(message), signature)
	if err != nil {
		return fmt.Errorf("failed to encode isValidSignature call: %w", err)
	}

	contract := common.HexToAddress(address)
	result, err := client.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: calldata}, nil)
	if err != nil {
		return errors.Wrapf(err, "isValidSignature call to %s failed", contract.Hex())
	}

	if len(result) < 4 || !bytes.Equal(result[:4], isValidSignatureMagic[:]) {
		v.logger.Debug("contract rejected signature",
			zap.String("contract", contract.Hex()),
			zap.Uint64("chainId", uint64(chain)),
		)
		return fmt.Errorf("contract %s rejected signature", contract.Hex())
	}

	return nil
}

// client returns a cached ethclient for the chain, dialing on first use.
func (v *EIP1271Verifier) client(ctx context.Context, chain config.ChainId) (*ethclient.Client, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if client, ok := v.clients[chain]; ok {
		return client, nil
	}

	url, ok := v.rpcUrls[chain]
	if !ok {
		return nil, fmt.Errorf("no RPC endpoint configured for chain %d", chain)
	}

	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial RPC endpoint for chain %d", chain)
	}

	v.clients[chain] = client
	return client, nil
}

// Close releases all dialed RPC clients.
func (v *EIP1271Verifier) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	for chain, client := range v.clients {
		client.Close()
		delete(v.clients, chain)
	}
}

func packIsValidSignature(hash common.Hash, signature []byte) ([]byte, error) {
	bytes32Type, _ := abi.NewType("bytes32", "", nil)
	bytesType, _ := abi.NewType("bytes", "", nil)
	arguments := abi.Arguments{{Type: bytes32Type}, {Type: bytesType}}

	packed, err := arguments.Pack(hash, signature)
	if err != nil {
		return nil, err
	}

	selector := crypto.Keccak256([]byte("isValidSignature(bytes32,bytes)"))[:4]
	return append(selector, packed...), nil
}
