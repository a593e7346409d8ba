package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/suitter-labs/suitter-indexer/internal/api/shared/dto"
	apierrors "github.com/suitter-labs/suitter-indexer/internal/api/shared/errors"
	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/suitter"
)

// PageQueryParams holds pagination and viewer parameters for feed endpoints
type PageQueryParams struct {
	Limit  int    `form:"limit,default=20"`
	Page   int    `form:"page,default=0"`
	Viewer string `form:"viewer"`
}

// ParsePageQuery parses pagination query parameters
func ParsePageQuery(c *gin.Context) (*PageQueryParams, error) {
	var params PageQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > suitter.MAX_PAGE_LIMIT {
		params.Limit = suitter.MAX_PAGE_LIMIT
	}

	return &params, nil
}

// Validate validates the pagination query parameters
func (p *PageQueryParams) Validate() error {
	if p.Limit <= 0 {
		return apierrors.NewValidationError("limit must be positive")
	}
	if p.Page < 0 {
		return apierrors.NewValidationError("page must not be negative")
	}
	if p.Viewer != "" {
		return dto.ValidateObjectID("viewer", domain.ObjectID(p.Viewer))
	}
	return nil
}

// ViewerID returns the viewer as an object id, empty when absent
func (p *PageQueryParams) ViewerID() domain.ObjectID {
	return domain.ObjectID(p.Viewer)
}
