package wallet

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/suitter-labs/suitter-indexer/internal/adapter"
	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
	"github.com/suitter-labs/suitter-indexer/internal/providers/sui"
)

// Wallet signs and submits transactions on behalf of the connected account
//
//go:generate mockgen -source=wallet.go -destination=../mocks/wallet.go -package=mocks -mock_names=Wallet=MockWallet
type Wallet interface {
	// Address returns the connected account, or "" when no account is connected
	Address() domain.ObjectID

	// SignAndExecute signs tx, submits it and waits for effects and object changes
	SignAndExecute(ctx context.Context, tx Transaction) (*sui.TransactionBlockResponse, error)

	// Build serializes tx into base64 transaction bytes without signing it
	Build(ctx context.Context, tx Transaction) (string, error)
}

// BridgeConfig configures the wallet bridge client
type BridgeConfig struct {
	URL     string
	APIKey  string
	Address string
}

type executeRequest struct {
	Transaction Transaction                 `json:"transaction"`
	Options     sui.TransactionBlockOptions `json:"options"`
}

type buildRequest struct {
	Transaction Transaction `json:"transaction"`
}

type buildResponse struct {
	TxBytes string `json:"tx_bytes"`
}

// bridge talks to a wallet bridge service that holds the signing key
type bridge struct {
	baseURL    string
	apiKey     string
	address    domain.ObjectID
	httpClient adapter.HTTPClient
}

// NewBridge creates a wallet backed by a wallet bridge HTTP service
func NewBridge(cfg BridgeConfig, httpClient adapter.HTTPClient) Wallet {
	return &bridge{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		address:    domain.ObjectID(strings.TrimSpace(cfg.Address)),
		httpClient: httpClient,
	}
}

func (b *bridge) Address() domain.ObjectID {
	return b.address
}

func (b *bridge) SignAndExecute(ctx context.Context, tx Transaction) (*sui.TransactionBlockResponse, error) {
	if b.address == "" {
		return nil, domain.ErrNotConnected
	}
	tx.Sender = b.address

	req := executeRequest{
		Transaction: tx,
		Options: sui.TransactionBlockOptions{
			ShowEffects:       true,
			ShowObjectChanges: true,
		},
	}

	// execution signs and submits; a replay after a lost response would submit twice
	var resp sui.TransactionBlockResponse
	if err := b.httpClient.PostJSONOnce(ctx, b.baseURL+"/v1/transactions/execute", b.headers(), req, &resp); err != nil {
		return nil, fmt.Errorf("failed to execute transaction: %w", err)
	}

	logger.InfoCtx(ctx, "Transaction executed",
		zap.String("digest", resp.Digest),
		zap.String("sender", b.address.String()),
		zap.Int("objectChanges", len(resp.ObjectChanges)))

	return &resp, nil
}

func (b *bridge) Build(ctx context.Context, tx Transaction) (string, error) {
	if b.address == "" {
		return "", domain.ErrNotConnected
	}
	tx.Sender = b.address

	var resp buildResponse
	if err := b.httpClient.PostJSON(ctx, b.baseURL+"/v1/transactions/build", b.headers(), buildRequest{Transaction: tx}, &resp); err != nil {
		return "", fmt.Errorf("failed to build transaction: %w", err)
	}
	if resp.TxBytes == "" {
		return "", fmt.Errorf("wallet bridge returned empty transaction bytes")
	}

	return resp.TxBytes, nil
}

func (b *bridge) headers() map[string]string {
	if b.apiKey == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + b.apiKey}
}
