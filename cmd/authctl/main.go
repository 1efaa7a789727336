package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/peerlink-labs/walletauth-go/pkg/auth"
	"github.com/peerlink-labs/walletauth-go/pkg/auth/verifier"
	"github.com/peerlink-labs/walletauth-go/pkg/config"
	"github.com/peerlink-labs/walletauth-go/pkg/history"
	"github.com/peerlink-labs/walletauth-go/pkg/logger"
	"github.com/peerlink-labs/walletauth-go/pkg/persistence"
	"github.com/peerlink-labs/walletauth-go/pkg/types"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:  "authctl",
		Usage: "Sign and verify wallet authentication challenges",
		Description: `Produces and checks signed sign-in challenges for wallet connections.

Supports two verification schemes:
- direct: signature recovery against the claimed address
- contract: on-chain isValidSignature call (multisig/custodial wallets)`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvVerbose},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "sign",
				Usage: "Sign an auth challenge with a raw private key",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "private-key", Usage: "Hex-encoded secp256k1 private key", Required: true, EnvVars: []string{"WALLETAUTH_PRIVATE_KEY"}},
					&cli.StringFlag{Name: "address", Usage: "Signer address placed in the challenge", Required: true},
					&cli.StringFlag{Name: "domain", Usage: "Requesting domain", Required: true},
					&cli.StringFlag{Name: "aud", Usage: "Audience URI", Required: true},
					&cli.StringFlag{Name: "chain-id", Usage: "CAIP-2 chain id (e.g. eip155:1)", Value: "eip155:1"},
					&cli.StringFlag{Name: "nonce", Usage: "Challenge nonce (generated when omitted)"},
					&cli.StringFlag{Name: "statement", Usage: "Optional statement shown to the signer"},
					&cli.StringFlag{Name: "signature-type", Usage: "Signature type tag: direct or contract", Value: "direct"},
				},
				Action: runSign,
			},
			{
				Name:  "verify",
				Usage: "Verify a signed auth challenge",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "signature", Usage: "Hex-encoded signature", Required: true},
					&cli.StringFlag{Name: "signature-type", Usage: "Signature type tag: direct or contract", Value: "direct"},
					&cli.StringFlag{Name: "message", Usage: "Canonical challenge text that was signed", Required: true},
					&cli.StringFlag{Name: "address", Usage: "Claimed signer address", Required: true},
					&cli.StringFlag{Name: "chain-id", Usage: "CAIP-2 chain id, required for contract verification"},
					&cli.StringSliceFlag{Name: "rpc-url", Usage: "RPC endpoint as <chainId>=<url>, repeatable"},
				},
				Action: runVerify,
			},
			{
				Name:  "pending",
				Usage: "List ledger requests still awaiting a response",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "store-type", Usage: "Ledger store backend: badger, redis or memory", Value: "badger", EnvVars: []string{config.EnvStoreType}},
					&cli.StringFlag{Name: "data-path", Usage: "Badger data directory", EnvVars: []string{config.EnvDataPath}},
					&cli.StringFlag{Name: "redis-address", Usage: "Redis server address (host:port)", EnvVars: []string{config.EnvRedisAddress}},
					&cli.StringFlag{Name: "redis-password", Usage: "Redis password", EnvVars: []string{config.EnvRedisPassword}},
					&cli.IntFlag{Name: "redis-db", Usage: "Redis database number (0-15)", EnvVars: []string{config.EnvRedisDB}},
					&cli.StringFlag{Name: "instance", Usage: "Ledger namespace", Value: "walletconn"},
				},
				Action: runPending,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func newLogger(c *cli.Context) (*zap.Logger, error) {
	return logger.NewLogger(&logger.LoggerConfig{Debug: c.Bool("verbose")})
}

func runSign(c *cli.Context) error {
	log, err := newLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	nonce := c.String("nonce")
	if nonce == "" {
		nonce = auth.GenerateNonce()
	}

	payload := &types.AuthPayload{
		Domain:    c.String("domain"),
		Aud:       c.String("aud"),
		Version:   "1",
		Nonce:     nonce,
		ChainId:   c.String("chain-id"),
		Type:      "eip4361",
		Iat:       time.Now().UTC().Format(time.RFC3339),
		Statement: c.String("statement"),
	}

	privateKey, err := hex.DecodeString(strings.TrimPrefix(c.String("private-key"), "0x"))
	if err != nil {
		return fmt.Errorf("invalid private key hex: %w", err)
	}

	authenticator := auth.NewAuthenticator(
		auth.SIWEFormatter{},
		auth.EcdsaSigner{},
		verifier.NewEIP191Verifier(log),
		nil, // signing never dispatches to a verifier
		log,
	)

	signature, err := authenticator.Sign(payload, c.String("address"), privateKey, types.CacaoSignatureType(c.String("signature-type")))
	if err != nil {
		return err
	}

	message, err := auth.SIWEFormatter{}.Format(payload, c.String("address"))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(map[string]interface{}{
		"message":   message,
		"signature": signature,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runVerify(c *cli.Context) error {
	log, err := newLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg := &config.Config{
		StoreType: config.StoreTypeMemory,
		RpcUrls:   make(map[config.ChainId]string),
		Verbose:   c.Bool("verbose"),
	}
	for _, entry := range c.StringSlice("rpc-url") {
		chainPart, url, found := strings.Cut(entry, "=")
		if !found {
			return fmt.Errorf("invalid --rpc-url entry %q, want <chainId>=<url>", entry)
		}
		chain, err := config.ParseEip155ChainId(chainPart)
		if err != nil {
			return err
		}
		cfg.RpcUrls[chain] = url
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	contractVerifier := verifier.NewEIP1271Verifier(cfg.RpcUrls, log)
	defer contractVerifier.Close()

	authenticator := auth.NewAuthenticator(
		auth.SIWEFormatter{},
		auth.EcdsaSigner{},
		verifier.NewEIP191Verifier(log),
		contractVerifier,
		log,
	)

	signature := &types.CacaoSignature{
		T: types.CacaoSignatureType(c.String("signature-type")),
		S: c.String("signature"),
	}

	if err := authenticator.Verify(c.Context, signature, c.String("message"), c.String("address"), c.String("chain-id")); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	fmt.Println("signature valid")
	return nil
}

func runPending(c *cli.Context) error {
	log, err := newLogger(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	cfg := &config.Config{
		StoreType:     config.StoreType(c.String("store-type")),
		DataPath:      c.String("data-path"),
		RedisAddress:  c.String("redis-address"),
		RedisPassword: c.String("redis-password"),
		RedisDB:       c.Int("redis-db"),
		Verbose:       c.Bool("verbose"),
	}

	store, err := persistence.NewStore(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = store.Close() }()

	ledger := history.NewJsonRpcHistory(store, c.String("instance"), log)
	pending, err := ledger.GetPending()
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(pending, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
