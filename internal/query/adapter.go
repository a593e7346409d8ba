package query

import (
	"context"
	"sort"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
	"github.com/suitter-labs/suitter-indexer/internal/providers/sui"
)

// Config holds the query adapter configuration
type Config struct {
	// PackageID and Module address the contract whose structs are queried
	PackageID string
	Module    string

	// RequestTimeout bounds every public adapter call
	RequestTimeout time.Duration

	// BatchSize is the number of ids per multi-get call
	BatchSize int

	// Concurrency is the number of multi-get calls in flight
	Concurrency int
}

const (
	DEFAULT_REQUEST_TIMEOUT = 15 * time.Second
	DEFAULT_CONCURRENCY     = 4
)

// Adapter translates candidate object ids into decoded records.
// Failures are logged and degrade to nil or empty results; no method returns an error.
//
//go:generate mockgen -source=adapter.go -destination=../mocks/query_adapter.go -package=mocks -mock_names=Adapter=MockQueryAdapter
type Adapter interface {
	// FetchProfileByOwner returns the profile owned by owner, or nil
	FetchProfileByOwner(ctx context.Context, owner domain.ObjectID) *domain.Profile

	// FetchProfileByID returns the profile with the given id, or nil
	FetchProfileByID(ctx context.Context, id domain.ObjectID) *domain.Profile

	// FetchSuitByID returns the suit with the given id, or nil
	FetchSuitByID(ctx context.Context, id domain.ObjectID) *domain.Suit

	// FetchSuitsByIDs returns the decodable suits among ids, newest first
	FetchSuitsByIDs(ctx context.Context, ids []domain.ObjectID) []domain.Suit

	// FetchLikesBySuitID returns the likes among candidates that target suitID
	FetchLikesBySuitID(ctx context.Context, suitID domain.ObjectID, candidates []domain.ObjectID) []domain.Like

	// FetchCommentsBySuitID returns the comments among candidates that target suitID, oldest first
	FetchCommentsBySuitID(ctx context.Context, suitID domain.ObjectID, candidates []domain.ObjectID) []domain.Comment

	// HasLiked reports whether a like among candidates targets suitID and was made by user
	HasLiked(ctx context.Context, suitID, user domain.ObjectID, candidates []domain.ObjectID) bool

	// Close stops the fetch pool
	Close()
}

type adapter struct {
	config   Config
	contract Contract
	client   sui.Client
	pool     pond.ResultPool[[]sui.ObjectResponse]
}

// NewAdapter creates a query adapter over a Sui client
func NewAdapter(cfg Config, client sui.Client) Adapter {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DEFAULT_REQUEST_TIMEOUT
	}
	if cfg.BatchSize <= 0 || cfg.BatchSize > sui.MAX_MULTI_GET_OBJECTS {
		cfg.BatchSize = sui.MAX_MULTI_GET_OBJECTS
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DEFAULT_CONCURRENCY
	}

	return &adapter{
		config:   cfg,
		contract: Contract{PackageID: cfg.PackageID, Module: cfg.Module},
		client:   client,
		pool:     pond.NewResultPool[[]sui.ObjectResponse](cfg.Concurrency),
	}
}

func (a *adapter) FetchProfileByOwner(ctx context.Context, owner domain.ObjectID) *domain.Profile {
	if owner == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	options := sui.ContentOptions
	page, err := a.client.GetOwnedObjects(ctx, owner.String(), sui.OwnedObjectsQuery{
		Filter:  &sui.ObjectFilter{StructType: a.contract.StructType(domain.STRUCT_PROFILE)},
		Options: &options,
	}, nil, 1)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to list owned profiles",
			zap.String("owner", owner.String()),
			zap.Error(err))
		return nil
	}

	for _, obj := range page.Data {
		if obj.Data == nil {
			continue
		}

		profile, err := DecodeProfile(a.contract, obj)
		if err == nil {
			return profile
		}

		// the owned listing may come back without content; fetch by id
		if profile := a.fetchProfile(ctx, domain.ObjectID(obj.Data.ObjectID)); profile != nil {
			return profile
		}
	}

	return nil
}

func (a *adapter) FetchProfileByID(ctx context.Context, id domain.ObjectID) *domain.Profile {
	if id == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	return a.fetchProfile(ctx, id)
}

func (a *adapter) fetchProfile(ctx context.Context, id domain.ObjectID) *domain.Profile {
	resp, err := a.client.GetObject(ctx, id.String(), sui.ContentOptions)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fetch profile", zap.String("objectID", id.String()), zap.Error(err))
		return nil
	}

	profile, err := DecodeProfile(a.contract, *resp)
	if err != nil {
		logger.DebugCtx(ctx, "Skipping undecodable profile", zap.Error(err))
		return nil
	}
	return profile
}

func (a *adapter) FetchSuitByID(ctx context.Context, id domain.ObjectID) *domain.Suit {
	if id == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	resp, err := a.client.GetObject(ctx, id.String(), sui.ContentOptions)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fetch suit", zap.String("objectID", id.String()), zap.Error(err))
		return nil
	}

	suit, err := DecodeSuit(a.contract, *resp)
	if err != nil {
		logger.DebugCtx(ctx, "Skipping undecodable suit", zap.Error(err))
		return nil
	}
	return suit
}

func (a *adapter) FetchSuitsByIDs(ctx context.Context, ids []domain.ObjectID) []domain.Suit {
	suits := []domain.Suit{}
	for _, obj := range a.fetchObjects(ctx, ids) {
		suit, err := DecodeSuit(a.contract, obj)
		if err != nil {
			logger.DebugCtx(ctx, "Skipping undecodable suit", zap.Error(err))
			continue
		}
		suits = append(suits, *suit)
	}

	sort.SliceStable(suits, func(i, j int) bool {
		return suits[i].TimestampMs > suits[j].TimestampMs
	})
	return suits
}

func (a *adapter) FetchLikesBySuitID(ctx context.Context, suitID domain.ObjectID, candidates []domain.ObjectID) []domain.Like {
	likes := []domain.Like{}
	for _, obj := range a.fetchObjects(ctx, candidates) {
		like, err := DecodeLike(a.contract, obj)
		if err != nil {
			logger.DebugCtx(ctx, "Skipping undecodable like", zap.Error(err))
			continue
		}
		if !like.SuitID.Equal(suitID) {
			continue
		}
		likes = append(likes, *like)
	}
	return likes
}

func (a *adapter) FetchCommentsBySuitID(ctx context.Context, suitID domain.ObjectID, candidates []domain.ObjectID) []domain.Comment {
	comments := []domain.Comment{}
	for _, obj := range a.fetchObjects(ctx, candidates) {
		comment, err := DecodeComment(a.contract, obj)
		if err != nil {
			logger.DebugCtx(ctx, "Skipping undecodable comment", zap.Error(err))
			continue
		}
		if !comment.SuitID.Equal(suitID) {
			continue
		}
		comments = append(comments, *comment)
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].TimestampMs < comments[j].TimestampMs
	})
	return comments
}

func (a *adapter) HasLiked(ctx context.Context, suitID, user domain.ObjectID, candidates []domain.ObjectID) bool {
	if len(candidates) == 0 || user == "" {
		return false
	}

	for _, like := range a.FetchLikesBySuitID(ctx, suitID, candidates) {
		if like.Liker.Equal(user) {
			return true
		}
	}
	return false
}

func (a *adapter) Close() {
	a.pool.StopAndWait()
}

// fetchObjects multi-gets ids in chunks of BatchSize on the pool.
// A failed chunk is logged and dropped; the other chunks are kept in order.
func (a *adapter) fetchObjects(ctx context.Context, ids []domain.ObjectID) []sui.ObjectResponse {
	if len(ids) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	var tasks []pond.Result[[]sui.ObjectResponse]
	for start := 0; start < len(ids); start += a.config.BatchSize {
		end := start + a.config.BatchSize
		if end > len(ids) {
			end = len(ids)
		}
		chunk := domain.ToStrings(ids[start:end])

		tasks = append(tasks, a.pool.SubmitErr(func() ([]sui.ObjectResponse, error) {
			return a.client.MultiGetObjects(ctx, chunk, sui.ContentOptions)
		}))
	}

	var objects []sui.ObjectResponse
	for i, task := range tasks {
		resp, err := task.Wait()
		if err != nil {
			logger.WarnCtx(ctx, "Failed to fetch object batch",
				zap.Int("batch", i),
				zap.Int("total", len(ids)),
				zap.Error(err))
			continue
		}
		objects = append(objects, resp...)
	}
	return objects
}
