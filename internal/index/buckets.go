package index

import (
	"strings"

	"github.com/suitter-labs/suitter-indexer/internal/domain"
)

// KEY_NAMESPACE prefixes every bucket this package writes
const KEY_NAMESPACE = "suitter_"

// Bucket categories
const (
	BUCKET_SUITS             = "suitter_suit_ids"
	BUCKET_SUITS_BY_AUTHOR   = "suitter_suit_ids_by_author"
	BUCKET_LIKES             = "suitter_like_ids"
	BUCKET_LIKES_BY_SUIT     = "suitter_like_ids_by_suit"
	BUCKET_COMMENTS          = "suitter_comment_ids"
	BUCKET_COMMENTS_BY_SUIT  = "suitter_comment_ids_by_suit"
	BUCKET_PROFILES_BY_OWNER = "suitter_profile_ids_by_owner"
)

// ScopedBucket composes a category with a scoping id.
// The scope is normalized when it is a valid object id so that 0x2 and its
// padded form share a bucket.
func ScopedBucket(category string, scope domain.ObjectID) string {
	return category + "_" + string(scope.Normalized())
}

// SuitsByAuthor is the bucket of suits created by author
func SuitsByAuthor(author domain.ObjectID) string {
	return ScopedBucket(BUCKET_SUITS_BY_AUTHOR, author)
}

// LikesBySuit is the bucket of likes targeting suitID
func LikesBySuit(suitID domain.ObjectID) string {
	return ScopedBucket(BUCKET_LIKES_BY_SUIT, suitID)
}

// CommentsBySuit is the bucket of comments targeting suitID
func CommentsBySuit(suitID domain.ObjectID) string {
	return ScopedBucket(BUCKET_COMMENTS_BY_SUIT, suitID)
}

// ProfilesByOwner is the bucket of profiles owned by owner
func ProfilesByOwner(owner domain.ObjectID) string {
	return ScopedBucket(BUCKET_PROFILES_BY_OWNER, owner)
}

// IsScoped reports whether bucket is a per-scope bucket
func IsScoped(bucket string) bool {
	for _, category := range []string{
		BUCKET_SUITS_BY_AUTHOR,
		BUCKET_LIKES_BY_SUIT,
		BUCKET_COMMENTS_BY_SUIT,
		BUCKET_PROFILES_BY_OWNER,
	} {
		if strings.HasPrefix(bucket, category+"_") {
			return true
		}
	}
	return false
}
