package sui

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/block-vision/sui-go-sdk/models"

	"github.com/suitter-labs/suitter-indexer/internal/adapter"
)

// MAX_MULTI_GET_OBJECTS is the fullnode limit on ids per sui_multiGetObjects call
const MAX_MULTI_GET_OBJECTS = 50

// Network names understood by FullnodeURL
const (
	NETWORK_MAINNET  = "mainnet"
	NETWORK_TESTNET  = "testnet"
	NETWORK_DEVNET   = "devnet"
	NETWORK_LOCALNET = "localnet"
)

// FullnodeURL returns the public fullnode endpoint for a network
func FullnodeURL(network string) (string, error) {
	switch network {
	case NETWORK_MAINNET:
		return "https://fullnode.mainnet.sui.io:443", nil
	case NETWORK_TESTNET:
		return "https://fullnode.testnet.sui.io:443", nil
	case NETWORK_DEVNET:
		return "https://fullnode.devnet.sui.io:443", nil
	case NETWORK_LOCALNET:
		return "http://127.0.0.1:9000", nil
	default:
		return "", fmt.Errorf("unknown sui network: %s", network)
	}
}

// Client defines an interface for the Sui fullnode reads the indexer needs to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/sui_client.go -package=mocks -mock_names=Client=MockSuiClient
type Client interface {
	// GetObject fetches a single object
	GetObject(ctx context.Context, id string, options ObjectDataOptions) (*ObjectResponse, error)

	// MultiGetObjects fetches up to MAX_MULTI_GET_OBJECTS objects in one call
	MultiGetObjects(ctx context.Context, ids []string, options ObjectDataOptions) ([]ObjectResponse, error)

	// GetOwnedObjects returns one page of objects owned by an address
	GetOwnedObjects(ctx context.Context, owner string, query OwnedObjectsQuery, cursor *string, limit int) (*OwnedObjectsPage, error)

	// GetTransactionBlock fetches a transaction block by digest
	GetTransactionBlock(ctx context.Context, digest string, options TransactionBlockOptions) (*TransactionBlockResponse, error)

	// DryRunTransactionBlock simulates base64 encoded transaction bytes
	DryRunTransactionBlock(ctx context.Context, txBytes string) (*DryRunResponse, error)
}

// client is the concrete implementation of Client on top of the Sui SDK
type client struct {
	api adapter.SuiAPI
}

// NewClient creates a new Sui client backed by the SDK api
func NewClient(api adapter.SuiAPI) Client {
	return &client{api: api}
}

// GetObject fetches a single object
func (c *client) GetObject(ctx context.Context, id string, options ObjectDataOptions) (*ObjectResponse, error) {
	raw, err := c.api.SuiGetObject(ctx, models.SuiGetObjectRequest{
		ObjectId: id,
		Options:  options.model(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", id, err)
	}

	var resp ObjectResponse
	if err := fromModel(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode object %s: %w", id, err)
	}
	if resp.Data == nil && resp.Error == nil {
		return nil, fmt.Errorf("empty result for object %s", id)
	}
	return &resp, nil
}

// MultiGetObjects fetches several objects in one call; results follow the order of ids
func (c *client) MultiGetObjects(ctx context.Context, ids []string, options ObjectDataOptions) ([]ObjectResponse, error) {
	if len(ids) == 0 {
		return []ObjectResponse{}, nil
	}
	if len(ids) > MAX_MULTI_GET_OBJECTS {
		return nil, fmt.Errorf("too many object ids: %d (max %d)", len(ids), MAX_MULTI_GET_OBJECTS)
	}

	raw, err := c.api.SuiMultiGetObjects(ctx, models.SuiMultiGetObjectsRequest{
		ObjectIds: ids,
		Options:   options.model(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %d objects: %w", len(ids), err)
	}

	resp := make([]ObjectResponse, 0, len(raw))
	if err := fromModel(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode %d objects: %w", len(ids), err)
	}
	return resp, nil
}

// GetOwnedObjects returns one page of objects owned by an address
func (c *client) GetOwnedObjects(ctx context.Context, owner string, query OwnedObjectsQuery, cursor *string, limit int) (*OwnedObjectsPage, error) {
	req := models.SuiXGetOwnedObjectsRequest{
		Address: owner,
		Query:   query.model(),
	}
	if cursor != nil {
		req.Cursor = *cursor
	}
	if limit > 0 {
		req.Limit = uint64(limit)
	}

	raw, err := c.api.SuiXGetOwnedObjects(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get objects owned by %s: %w", owner, err)
	}

	var page OwnedObjectsPage
	if err := fromModel(raw, &page); err != nil {
		return nil, fmt.Errorf("failed to decode objects owned by %s: %w", owner, err)
	}
	return &page, nil
}

// GetTransactionBlock fetches a transaction block by digest
func (c *client) GetTransactionBlock(ctx context.Context, digest string, options TransactionBlockOptions) (*TransactionBlockResponse, error) {
	raw, err := c.api.SuiGetTransactionBlock(ctx, models.SuiGetTransactionBlockRequest{
		Digest:  digest,
		Options: options.model(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction block %s: %w", digest, err)
	}

	var resp TransactionBlockResponse
	if err := fromModel(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode transaction block %s: %w", digest, err)
	}
	if resp.Digest == "" {
		return nil, fmt.Errorf("empty result for transaction block %s", digest)
	}
	return &resp, nil
}

// DryRunTransactionBlock simulates base64 encoded transaction bytes
func (c *client) DryRunTransactionBlock(ctx context.Context, txBytes string) (*DryRunResponse, error) {
	raw, err := c.api.SuiDryRunTransactionBlock(ctx, models.SuiDryRunTransactionBlockRequest{
		TxBytes: txBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to dry run transaction: %w", err)
	}

	var resp DryRunResponse
	if err := fromModel(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode dry run result: %w", err)
	}
	if resp.Effects.Status.Status == "" {
		return nil, fmt.Errorf("empty dry run result")
	}
	return &resp, nil
}

// fromModel re-decodes an SDK model into the local type through its wire form.
// Both sides carry the fullnode's JSON tags.
func fromModel(src interface{}, dst interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
