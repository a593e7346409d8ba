package adapter

import (
	"context"
	"net/http"

	"github.com/block-vision/sui-go-sdk/models"
	"github.com/block-vision/sui-go-sdk/sui"
)

// SuiAPI is the part of the Sui SDK client used by the indexer, extracted to enable mocking
//
//go:generate mockgen -source=sui.go -destination=../mocks/sui_api.go -package=mocks -mock_names=SuiAPI=MockSuiAPI
type SuiAPI interface {
	SuiGetObject(ctx context.Context, req models.SuiGetObjectRequest) (models.SuiObjectResponse, error)
	SuiMultiGetObjects(ctx context.Context, req models.SuiMultiGetObjectsRequest) ([]*models.SuiObjectResponse, error)
	SuiXGetOwnedObjects(ctx context.Context, req models.SuiXGetOwnedObjectsRequest) (models.PaginatedObjectsResponse, error)
	SuiGetTransactionBlock(ctx context.Context, req models.SuiGetTransactionBlockRequest) (models.SuiTransactionBlockResponse, error)
	SuiDryRunTransactionBlock(ctx context.Context, req models.SuiDryRunTransactionBlockRequest) (models.SuiTransactionBlockResponse, error)
}

// NewSuiAPI creates an SDK client whose JSON-RPC calls go through httpClient
func NewSuiAPI(rpcURL string, httpClient *http.Client) SuiAPI {
	return sui.NewSuiClientWithCustomClient(rpcURL, httpClient)
}
