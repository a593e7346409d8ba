package dto

import (
	"github.com/suitter-labs/suitter-indexer/internal/domain"
)

// WriteResponse represents the response for a submitted transaction
type WriteResponse struct {
	Digest string `json:"digest"`
}

// ListResponse represents a page of items
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Limit int `json:"limit"`
	Page  int `json:"page"`
}

// AccountResponse represents the connected wallet account
type AccountResponse struct {
	Address   domain.ObjectID `json:"address,omitempty"`
	Connected bool            `json:"connected"`
}

// LikedResponse represents whether an address liked a suit
type LikedResponse struct {
	SuitID domain.ObjectID `json:"suit_id"`
	User   domain.ObjectID `json:"user"`
	Liked  bool            `json:"liked"`
}

// GasEstimateResponse represents an estimated gas cost in MIST
type GasEstimateResponse struct {
	Function string `json:"function"`
	Gas      uint64 `json:"gas"`
}
