package dto

import (
	"fmt"

	apierrors "github.com/suitter-labs/suitter-indexer/internal/api/shared/errors"
	"github.com/suitter-labs/suitter-indexer/internal/domain"
)

// CreateProfileRequest represents the request body for creating or updating a profile
type CreateProfileRequest struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

// Validate validates the request body
func (r *CreateProfileRequest) Validate() error {
	if r.Username == "" {
		return apierrors.NewValidationError("username is required")
	}
	return nil
}

// CreatePostRequest represents the request body for publishing a suit or a comment
type CreatePostRequest struct {
	Content string `json:"content"`
}

// Validate validates the request body
func (r *CreatePostRequest) Validate() error {
	if err := domain.ValidateContent(r.Content); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	return nil
}

// EstimateGasRequest represents the request body for a gas estimate
type EstimateGasRequest struct {
	Function  string        `json:"function"`
	Arguments []interface{} `json:"arguments"`
}

// Validate validates the request body
func (r *EstimateGasRequest) Validate() error {
	if r.Function == "" {
		return apierrors.NewValidationError("function is required")
	}
	return nil
}

// ValidateObjectID validates an object id or address taken from the request path or query
func ValidateObjectID(name string, id domain.ObjectID) error {
	if !id.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid %s: %s", name, id))
	}
	return nil
}
