package suitter

import (
	"context"
	"time"

	"github.com/suitter-labs/suitter-indexer/internal/adapter"
	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/index"
	"github.com/suitter-labs/suitter-indexer/internal/messaging"
	"github.com/suitter-labs/suitter-indexer/internal/providers/sui"
	"github.com/suitter-labs/suitter-indexer/internal/query"
	"github.com/suitter-labs/suitter-indexer/internal/wallet"
)

const (
	DEFAULT_PAGE_LIMIT = 20
	MAX_PAGE_LIMIT     = 100

	DEFAULT_READ_TIMEOUT  = 15 * time.Second
	DEFAULT_WRITE_TIMEOUT = 60 * time.Second
)

// Config holds the service configuration
type Config struct {
	// PackageID and Module address the contract every move call targets
	PackageID string
	Module    string

	// ReadTimeout bounds chain reads made by the service itself
	ReadTimeout time.Duration

	// WriteTimeout bounds wallet submission of a single write
	WriteTimeout time.Duration

	// Origin identifies this instance on published index events
	Origin string
}

// FeedPost is a suit prepared for display
type FeedPost struct {
	domain.Suit
	Profile      domain.Profile `json:"profile"`
	Liked        bool           `json:"liked"`
	LikeCount    int            `json:"like_count"`
	CommentCount int            `json:"comment_count"`
}

// CommentView is a comment with its author's profile
type CommentView struct {
	domain.Comment
	Profile domain.Profile `json:"profile"`
}

// Service submits writes through the wallet, indexes the created objects and
// serves reads composed from the index and the chain.
// Read accessors never fail; they degrade to empty results.
//
//go:generate mockgen -source=service.go -destination=../mocks/suitter_service.go -package=mocks -mock_names=Service=MockService
type Service interface {
	// Address returns the connected account, or "" when no account is connected
	Address() domain.ObjectID

	CreateProfile(ctx context.Context, username, bio, imageURL string) (string, error)
	CreatePost(ctx context.Context, content string) (string, error)
	LikePost(ctx context.Context, suitID domain.ObjectID) (string, error)
	CommentOnPost(ctx context.Context, suitID domain.ObjectID, content string) (string, error)

	// EstimateGas dry-runs a contract call and returns its net gas cost in MIST
	EstimateGas(ctx context.Context, function string, arguments []interface{}) (uint64, error)

	UpdateProfile(ctx context.Context, username, bio, imageURL string) (string, error)
	DeletePost(ctx context.Context, suitID domain.ObjectID) (string, error)
	UnlikePost(ctx context.Context, suitID domain.ObjectID) (string, error)
	ResharePost(ctx context.Context, suitID domain.ObjectID) (string, error)
	FollowUser(ctx context.Context, address domain.ObjectID) (string, error)
	UnfollowUser(ctx context.Context, address domain.ObjectID) (string, error)
	GetFollowers(ctx context.Context, address domain.ObjectID, limit, page int) ([]domain.Profile, error)
	GetFollowing(ctx context.Context, address domain.ObjectID, limit, page int) ([]domain.Profile, error)
	GetNotifications(ctx context.Context, limit, page int) ([]interface{}, error)
	MarkNotificationRead(ctx context.Context, notificationID string) (string, error)

	ListPosts(ctx context.Context, viewer domain.ObjectID, limit, page int) []FeedPost
	ListPostsByAuthor(ctx context.Context, author, viewer domain.ObjectID, limit, page int) []FeedPost
	ListComments(ctx context.Context, suitID domain.ObjectID) []CommentView
	GetPost(ctx context.Context, suitID, viewer domain.ObjectID) *FeedPost
	HasLiked(ctx context.Context, suitID, user domain.ObjectID) bool
	GetProfile(ctx context.Context, address domain.ObjectID) *domain.Profile
	ProfileExists(ctx context.Context, address domain.ObjectID) bool

	// ClearIndex drops every indexed id
	ClearIndex(ctx context.Context) error

	// Close releases the service's resources
	Close()
}

type service struct {
	config    Config
	chain     sui.Client
	wallet    wallet.Wallet
	index     index.Index
	query     query.Adapter
	publisher messaging.Publisher
	clock     adapter.Clock
}

// New creates the service. A nil publisher disables index event fan-out.
func New(
	cfg Config,
	chain sui.Client,
	w wallet.Wallet,
	idx index.Index,
	q query.Adapter,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Service {
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DEFAULT_READ_TIMEOUT
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DEFAULT_WRITE_TIMEOUT
	}
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}

	return &service{
		config:    cfg,
		chain:     chain,
		wallet:    w,
		index:     idx,
		query:     q,
		publisher: publisher,
		clock:     clock,
	}
}

func (s *service) Address() domain.ObjectID {
	return s.wallet.Address()
}

func (s *service) ClearIndex(ctx context.Context) error {
	return s.index.Clear(ctx)
}

func (s *service) Close() {
	s.query.Close()
	s.publisher.Close()
}

// contract addresses the package and module whose created objects are indexed
func (s *service) contract() query.Contract {
	return query.Contract{PackageID: s.config.PackageID, Module: s.config.Module}
}

// target returns the move call target for a contract entry function
func (s *service) target(function string) string {
	return wallet.Target(s.config.PackageID, s.config.Module, function)
}
