package suitter

import (
	"context"

	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/index"
)

// ListPosts returns a page of the global feed
func (s *service) ListPosts(ctx context.Context, viewer domain.ObjectID, limit, page int) []FeedPost {
	ids := paginate(s.index.Get(ctx, index.BUCKET_SUITS), limit, page)
	return s.feed(ctx, s.query.FetchSuitsByIDs(ctx, ids), viewer)
}

// ListPostsByAuthor returns a page of the suits authored by author
func (s *service) ListPostsByAuthor(ctx context.Context, author, viewer domain.ObjectID, limit, page int) []FeedPost {
	ids := paginate(s.index.Get(ctx, index.SuitsByAuthor(author)), limit, page)

	suits := s.query.FetchSuitsByIDs(ctx, ids)
	owned := suits[:0]
	for _, suit := range suits {
		if suit.Author.Equal(author) {
			owned = append(owned, suit)
		}
	}

	return s.feed(ctx, owned, viewer)
}

// ListComments returns the comments on a suit, oldest first
func (s *service) ListComments(ctx context.Context, suitID domain.ObjectID) []CommentView {
	ids := s.index.Get(ctx, index.CommentsBySuit(suitID))
	profiles := newProfileCache(s)

	views := []CommentView{}
	for _, comment := range s.query.FetchCommentsBySuitID(ctx, suitID, ids) {
		views = append(views, CommentView{
			Comment: comment,
			Profile: profiles.get(ctx, comment.Author),
		})
	}
	return views
}

// GetPost returns a single suit, or nil when it cannot be fetched
func (s *service) GetPost(ctx context.Context, suitID, viewer domain.ObjectID) *FeedPost {
	suit := s.query.FetchSuitByID(ctx, suitID)
	if suit == nil {
		return nil
	}

	posts := s.feed(ctx, []domain.Suit{*suit}, viewer)
	return &posts[0]
}

// HasLiked reports whether user liked the suit, judged from indexed likes
func (s *service) HasLiked(ctx context.Context, suitID, user domain.ObjectID) bool {
	return s.query.HasLiked(ctx, suitID, user, s.index.Get(ctx, index.LikesBySuit(suitID)))
}

// GetProfile returns the profile owned by address, or nil
func (s *service) GetProfile(ctx context.Context, address domain.ObjectID) *domain.Profile {
	if address == "" {
		return nil
	}

	// newest indexed profile first, then the owned-object lookup
	ids := s.index.Get(ctx, index.ProfilesByOwner(address))
	for i := len(ids) - 1; i >= 0; i-- {
		profile := s.query.FetchProfileByID(ctx, ids[i])
		if profile != nil && profile.Owner.Equal(address) {
			return profile
		}
	}

	return s.query.FetchProfileByOwner(ctx, address)
}

// ProfileExists reports whether address has a profile
func (s *service) ProfileExists(ctx context.Context, address domain.ObjectID) bool {
	return s.GetProfile(ctx, address) != nil
}

// feed decorates suits with author profiles, like state and counts
func (s *service) feed(ctx context.Context, suits []domain.Suit, viewer domain.ObjectID) []FeedPost {
	profiles := newProfileCache(s)

	posts := make([]FeedPost, 0, len(suits))
	for _, suit := range suits {
		post := FeedPost{
			Suit:         suit,
			Profile:      profiles.get(ctx, suit.Author),
			CommentCount: len(s.index.Get(ctx, index.CommentsBySuit(suit.ID))),
		}

		likeIDs := s.index.Get(ctx, index.LikesBySuit(suit.ID))
		if len(likeIDs) > 0 {
			likes := s.query.FetchLikesBySuitID(ctx, suit.ID, likeIDs)
			post.LikeCount = len(likes)
			post.Liked = likedBy(likes, viewer)
		}

		posts = append(posts, post)
	}
	return posts
}

func likedBy(likes []domain.Like, viewer domain.ObjectID) bool {
	if viewer == "" {
		return false
	}
	for _, like := range likes {
		if like.Liker.Equal(viewer) {
			return true
		}
	}
	return false
}

// paginate slices ids in index order: page*limit .. page*limit+limit
func paginate(ids []domain.ObjectID, limit, page int) []domain.ObjectID {
	if limit <= 0 {
		limit = DEFAULT_PAGE_LIMIT
	}
	if limit > MAX_PAGE_LIMIT {
		limit = MAX_PAGE_LIMIT
	}
	if page < 0 {
		page = 0
	}

	start := page * limit
	if start >= len(ids) {
		return []domain.ObjectID{}
	}
	end := min(start+limit, len(ids))

	out := make([]domain.ObjectID, end-start)
	copy(out, ids[start:end])
	return out
}

// profileCache resolves author profiles once per request
type profileCache struct {
	service  *service
	profiles map[domain.ObjectID]domain.Profile
}

func newProfileCache(s *service) *profileCache {
	return &profileCache{
		service:  s,
		profiles: make(map[domain.ObjectID]domain.Profile),
	}
}

func (c *profileCache) get(ctx context.Context, address domain.ObjectID) domain.Profile {
	key := address.Normalized()
	if profile, ok := c.profiles[key]; ok {
		return profile
	}

	profile := domain.PlaceholderProfile(address)
	if found := c.service.GetProfile(ctx, address); found != nil {
		profile = *found
	}
	c.profiles[key] = profile
	return profile
}
