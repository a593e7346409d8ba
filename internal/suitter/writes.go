package suitter

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
	"github.com/suitter-labs/suitter-indexer/internal/providers/sui"
	"github.com/suitter-labs/suitter-indexer/internal/wallet"
)

// CreateProfile creates the connected account's profile
func (s *service) CreateProfile(ctx context.Context, username, bio, imageURL string) (string, error) {
	sender := s.wallet.Address()
	if sender == "" {
		return "", domain.ErrNotConnected
	}

	tx := wallet.NewMoveCallTransaction(s.target(domain.FUNCTION_CREATE_PROFILE), username, bio, imageURL)
	resp, err := s.execute(ctx, "create profile", tx)
	if err != nil {
		return "", err
	}

	ctx = context.WithoutCancel(ctx)
	ids := s.createdIDs(ctx, resp, domain.STRUCT_PROFILE)
	if len(ids) == 0 {
		// fall back to the profile owned by the account
		if profile := s.query.FetchProfileByOwner(ctx, sender); profile != nil {
			ids = []domain.ObjectID{profile.ID}
		}
	}

	for _, id := range ids {
		s.record(ctx, domain.IndexEventProfile, id, sender, resp.Digest, func() error {
			return s.index.AddProfile(ctx, id, sender)
		})
	}

	return resp.Digest, nil
}

// CreatePost publishes a suit authored by the connected account
func (s *service) CreatePost(ctx context.Context, content string) (string, error) {
	sender := s.wallet.Address()
	if sender == "" {
		return "", domain.ErrNotConnected
	}
	if err := domain.ValidateContent(content); err != nil {
		return "", err
	}

	tx := wallet.NewMoveCallTransaction(s.target(domain.FUNCTION_CREATE_SUIT), content, domain.SUI_CLOCK_OBJECT_ID)
	resp, err := s.execute(ctx, "create post", tx)
	if err != nil {
		return "", err
	}

	ctx = context.WithoutCancel(ctx)
	for _, id := range s.createdIDs(ctx, resp, domain.STRUCT_SUIT) {
		s.record(ctx, domain.IndexEventSuit, id, sender, resp.Digest, func() error {
			return s.index.AddSuit(ctx, id, sender)
		})
	}

	return resp.Digest, nil
}

// LikePost likes a suit as the connected account
func (s *service) LikePost(ctx context.Context, suitID domain.ObjectID) (string, error) {
	if s.wallet.Address() == "" {
		return "", domain.ErrNotConnected
	}
	if suitID == "" {
		return "", fmt.Errorf("%w: empty suit id", domain.ErrInvalidObjectID)
	}

	tx := wallet.NewMoveCallTransaction(s.target(domain.FUNCTION_LIKE_SUIT), suitID.String())
	resp, err := s.execute(ctx, "like post", tx)
	if err != nil {
		return "", err
	}

	ctx = context.WithoutCancel(ctx)
	for _, id := range s.createdIDs(ctx, resp, domain.STRUCT_LIKE) {
		s.record(ctx, domain.IndexEventLike, id, suitID, resp.Digest, func() error {
			return s.index.AddLike(ctx, id, suitID)
		})
	}

	return resp.Digest, nil
}

// CommentOnPost replies to a suit as the connected account
func (s *service) CommentOnPost(ctx context.Context, suitID domain.ObjectID, content string) (string, error) {
	if s.wallet.Address() == "" {
		return "", domain.ErrNotConnected
	}
	if suitID == "" {
		return "", fmt.Errorf("%w: empty suit id", domain.ErrInvalidObjectID)
	}
	if err := domain.ValidateContent(content); err != nil {
		return "", err
	}

	tx := wallet.NewMoveCallTransaction(s.target(domain.FUNCTION_COMMENT_SUIT), suitID.String(), content, domain.SUI_CLOCK_OBJECT_ID)
	resp, err := s.execute(ctx, "comment on post", tx)
	if err != nil {
		return "", err
	}

	ctx = context.WithoutCancel(ctx)
	for _, id := range s.createdIDs(ctx, resp, domain.STRUCT_COMMENT) {
		s.record(ctx, domain.IndexEventComment, id, suitID, resp.Digest, func() error {
			return s.index.AddComment(ctx, id, suitID)
		})
	}

	return resp.Digest, nil
}

// EstimateGas builds a contract call without signing it and dry-runs it
func (s *service) EstimateGas(ctx context.Context, function string, arguments []interface{}) (uint64, error) {
	switch function {
	case domain.FUNCTION_CREATE_PROFILE, domain.FUNCTION_CREATE_SUIT, domain.FUNCTION_LIKE_SUIT, domain.FUNCTION_COMMENT_SUIT:
	default:
		return 0, unsupported("estimate gas for " + function)
	}
	if s.wallet.Address() == "" {
		return 0, domain.ErrNotConnected
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.WriteTimeout)
	defer cancel()

	txBytes, err := s.wallet.Build(ctx, wallet.NewMoveCallTransaction(s.target(function), arguments...))
	if err != nil {
		return 0, fmt.Errorf("failed to build transaction: %w", err)
	}

	dryRun, err := s.chain.DryRunTransactionBlock(ctx, txBytes)
	if err != nil {
		return 0, fmt.Errorf("failed to estimate gas: %w", err)
	}
	if dryRun.Effects.Status.Status == sui.EXECUTION_STATUS_FAILURE {
		return 0, fmt.Errorf("failed to estimate gas: dry run aborted: %s", dryRun.Effects.Status.Error)
	}

	total, err := dryRun.Effects.GasUsed.Total()
	if err != nil {
		return 0, fmt.Errorf("failed to estimate gas: %w", err)
	}
	return total, nil
}

// execute submits tx through the wallet and rejects on-chain aborts
func (s *service) execute(ctx context.Context, op string, tx wallet.Transaction) (*sui.TransactionBlockResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.WriteTimeout)
	defer cancel()

	resp, err := s.wallet.SignAndExecute(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	if failed, reason := resp.Failed(); failed {
		return nil, fmt.Errorf("failed to %s: transaction %s aborted: %s", op, resp.Digest, reason)
	}

	logger.InfoCtx(ctx, "Write submitted", zap.String("op", op), zap.String("digest", resp.Digest))
	return resp, nil
}

// createdIDs extracts created object ids, re-fetching the transaction block
// when the wallet response carries no matching object changes
func (s *service) createdIDs(ctx context.Context, resp *sui.TransactionBlockResponse, structName string) []domain.ObjectID {
	ids := ExtractCreatedIDs(resp, s.contract(), structName)
	if len(ids) > 0 || resp.Digest == "" {
		return ids
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.ReadTimeout)
	defer cancel()

	full, err := s.chain.GetTransactionBlock(ctx, resp.Digest, sui.TransactionBlockOptions{
		ShowEffects:       true,
		ShowObjectChanges: true,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to re-fetch transaction block",
			zap.String("digest", resp.Digest),
			zap.String("struct", structName),
			zap.Error(err))
		return nil
	}

	ids = ExtractCreatedIDs(full, s.contract(), structName)
	if len(ids) == 0 {
		logger.WarnCtx(ctx, "No created objects found in transaction",
			zap.String("digest", resp.Digest),
			zap.String("struct", structName))
	}
	return ids
}

// record runs an index write and announces it. Failures are logged only.
func (s *service) record(ctx context.Context, kind domain.IndexEventKind, id, scope domain.ObjectID, digest string, add func() error) {
	if err := add(); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to index created object"),
			zap.String("kind", string(kind)),
			zap.String("objectID", id.String()),
			zap.String("digest", digest))
		return
	}

	event := domain.NewIndexEvent(s.config.Origin, kind, id, scope, digest, s.clock.Now())
	if err := s.publisher.PublishIndexEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish index event",
			zap.String("eventID", event.ID),
			zap.Error(err))
	}
}
