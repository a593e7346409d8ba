package suitter

import (
	"context"
	"fmt"

	"github.com/suitter-labs/suitter-indexer/internal/domain"
)

// The contract has no capability for the operations below. They fail before
// any connection check or network access.

func unsupported(op string) error {
	return fmt.Errorf("%s: %w", op, domain.ErrUnsupported)
}

func (s *service) UpdateProfile(context.Context, string, string, string) (string, error) {
	return "", unsupported("update profile")
}

func (s *service) DeletePost(context.Context, domain.ObjectID) (string, error) {
	return "", unsupported("delete post")
}

func (s *service) UnlikePost(context.Context, domain.ObjectID) (string, error) {
	return "", unsupported("unlike post")
}

func (s *service) ResharePost(context.Context, domain.ObjectID) (string, error) {
	return "", unsupported("reshare post")
}

func (s *service) FollowUser(context.Context, domain.ObjectID) (string, error) {
	return "", unsupported("follow user")
}

func (s *service) UnfollowUser(context.Context, domain.ObjectID) (string, error) {
	return "", unsupported("unfollow user")
}

func (s *service) GetFollowers(context.Context, domain.ObjectID, int, int) ([]domain.Profile, error) {
	return nil, unsupported("get followers")
}

func (s *service) GetFollowing(context.Context, domain.ObjectID, int, int) ([]domain.Profile, error) {
	return nil, unsupported("get following")
}

func (s *service) GetNotifications(context.Context, int, int) ([]interface{}, error) {
	return nil, unsupported("get notifications")
}

func (s *service) MarkNotificationRead(context.Context, string) (string, error) {
	return "", unsupported("mark notification read")
}
