package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suitter-labs/suitter-indexer/internal/api/shared/dto"
	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/suitter"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// GetAccount returns the connected wallet account
	// GET /api/v1/account
	GetAccount(c *gin.Context)

	// ListPosts retrieves one page of the global feed
	// GET /api/v1/posts?limit=<limit>&page=<page>&viewer=<address>
	ListPosts(c *gin.Context)

	// GetPost retrieves a single suit
	// GET /api/v1/posts/:id?viewer=<address>
	GetPost(c *gin.Context)

	// ListComments retrieves the comments on a suit, oldest first
	// GET /api/v1/posts/:id/comments
	ListComments(c *gin.Context)

	// HasLiked reports whether an address liked a suit
	// GET /api/v1/posts/:id/likes/:address
	HasLiked(c *gin.Context)

	// GetProfile retrieves the profile owned by an address
	// GET /api/v1/profiles/:address
	GetProfile(c *gin.Context)

	// ListPostsByAuthor retrieves the suits of one author
	// GET /api/v1/profiles/:address/posts?limit=<limit>&page=<page>&viewer=<address>
	ListPostsByAuthor(c *gin.Context)

	// CreateProfile creates the wallet account's profile (requires authentication)
	// POST /api/v1/profiles
	CreateProfile(c *gin.Context)

	// CreatePost publishes a suit (requires authentication)
	// POST /api/v1/posts
	CreatePost(c *gin.Context)

	// LikePost likes a suit (requires authentication)
	// POST /api/v1/posts/:id/likes
	LikePost(c *gin.Context)

	// CommentOnPost comments on a suit (requires authentication)
	// POST /api/v1/posts/:id/comments
	CommentOnPost(c *gin.Context)

	// EstimateGas dry-runs a contract call (requires authentication)
	// POST /api/v1/gas/estimate
	EstimateGas(c *gin.Context)

	// ClearIndex drops the local index (requires authentication)
	// DELETE /api/v1/index
	ClearIndex(c *gin.Context)

	// Unsupported answers the operations the contract cannot perform
	Unsupported(op func(c *gin.Context) error) gin.HandlerFunc

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

type handler struct {
	service suitter.Service
}

// NewHandler creates a new REST API handler over the suitter service
func NewHandler(service suitter.Service) Handler {
	return &handler{service: service}
}

func (h *handler) GetAccount(c *gin.Context) {
	address := h.service.Address()
	c.JSON(http.StatusOK, dto.AccountResponse{
		Address:   address,
		Connected: address != "",
	})
}

func (h *handler) ListPosts(c *gin.Context) {
	params, ok := parsePage(c)
	if !ok {
		return
	}

	posts := h.service.ListPosts(c.Request.Context(), params.ViewerID(), params.Limit, params.Page)
	c.JSON(http.StatusOK, dto.ListResponse[suitter.FeedPost]{Items: posts, Limit: params.Limit, Page: params.Page})
}

func (h *handler) GetPost(c *gin.Context) {
	suitID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	viewer := domain.ObjectID(c.Query("viewer"))
	if viewer != "" {
		if err := dto.ValidateObjectID("viewer", viewer); err != nil {
			respondValidationError(c, err)
			return
		}
	}

	post := h.service.GetPost(c.Request.Context(), suitID, viewer)
	if post == nil {
		respondNotFound(c, "Post not found")
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *handler) ListComments(c *gin.Context) {
	suitID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	comments := h.service.ListComments(c.Request.Context(), suitID)
	c.JSON(http.StatusOK, dto.ListResponse[suitter.CommentView]{Items: comments, Limit: len(comments)})
}

func (h *handler) HasLiked(c *gin.Context) {
	suitID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	user, ok := pathObjectID(c, "address")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.LikedResponse{
		SuitID: suitID,
		User:   user,
		Liked:  h.service.HasLiked(c.Request.Context(), suitID, user),
	})
}

func (h *handler) GetProfile(c *gin.Context) {
	address, ok := pathObjectID(c, "address")
	if !ok {
		return
	}

	profile := h.service.GetProfile(c.Request.Context(), address)
	if profile == nil {
		respondNotFound(c, "Profile not found")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *handler) ListPostsByAuthor(c *gin.Context) {
	address, ok := pathObjectID(c, "address")
	if !ok {
		return
	}
	params, ok := parsePage(c)
	if !ok {
		return
	}

	posts := h.service.ListPostsByAuthor(c.Request.Context(), address, params.ViewerID(), params.Limit, params.Page)
	c.JSON(http.StatusOK, dto.ListResponse[suitter.FeedPost]{Items: posts, Limit: params.Limit, Page: params.Page})
}

func (h *handler) CreateProfile(c *gin.Context) {
	var req dto.CreateProfileRequest
	if !bindRequest(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	digest, err := h.service.CreateProfile(c.Request.Context(), req.Username, req.Bio, req.ImageURL)
	if err != nil {
		respondServiceError(c, err, "Failed to create profile")
		return
	}

	c.JSON(http.StatusCreated, dto.WriteResponse{Digest: digest})
}

func (h *handler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if !bindRequest(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	digest, err := h.service.CreatePost(c.Request.Context(), req.Content)
	if err != nil {
		respondServiceError(c, err, "Failed to create post")
		return
	}

	c.JSON(http.StatusCreated, dto.WriteResponse{Digest: digest})
}

func (h *handler) LikePost(c *gin.Context) {
	suitID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	digest, err := h.service.LikePost(c.Request.Context(), suitID)
	if err != nil {
		respondServiceError(c, err, "Failed to like post")
		return
	}

	c.JSON(http.StatusCreated, dto.WriteResponse{Digest: digest})
}

func (h *handler) CommentOnPost(c *gin.Context) {
	suitID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if !bindRequest(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	digest, err := h.service.CommentOnPost(c.Request.Context(), suitID, req.Content)
	if err != nil {
		respondServiceError(c, err, "Failed to comment on post")
		return
	}

	c.JSON(http.StatusCreated, dto.WriteResponse{Digest: digest})
}

func (h *handler) EstimateGas(c *gin.Context) {
	var req dto.EstimateGasRequest
	if !bindRequest(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	gas, err := h.service.EstimateGas(c.Request.Context(), req.Function, req.Arguments)
	if err != nil {
		respondServiceError(c, err, "Failed to estimate gas")
		return
	}

	c.JSON(http.StatusOK, dto.GasEstimateResponse{Function: req.Function, Gas: gas})
}

func (h *handler) ClearIndex(c *gin.Context) {
	if err := h.service.ClearIndex(c.Request.Context()); err != nil {
		respondInternalError(c, err, "Failed to clear index")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) Unsupported(op func(c *gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := op(c); err != nil {
			respondServiceError(c, err, "Operation not supported")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "suitter-api",
		"connected": h.service.Address() != "",
	})
}

// parsePage parses and validates pagination, responding on failure
func parsePage(c *gin.Context) (*PageQueryParams, bool) {
	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err)
		return nil, false
	}
	if err := params.Validate(); err != nil {
		respondValidationError(c, err)
		return nil, false
	}
	return params, true
}

// pathObjectID reads and validates an object id path parameter, responding on failure
func pathObjectID(c *gin.Context, name string) (domain.ObjectID, bool) {
	id := domain.ObjectID(c.Param(name))
	if id == "" {
		respondBadRequest(c, fmt.Sprintf("%s is required", name))
		return "", false
	}
	if err := dto.ValidateObjectID(name, id); err != nil {
		respondValidationError(c, err)
		return "", false
	}
	return id, true
}

func bindRequest(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return false
	}
	return true
}
