package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
)

// Profile is the on-chain profile of an account. One profile per owner is expected.
type Profile struct {
	ID       ObjectID `json:"id"`
	Owner    ObjectID `json:"owner"`
	Username string   `json:"username"`
	Bio      string   `json:"bio"`
	ImageURL string   `json:"image_url"`

	// Placeholder is set when no profile object exists and the record was
	// synthesized from the owner address
	Placeholder bool `json:"placeholder,omitempty"`
}

// PlaceholderProfile synthesizes a profile for an address that has no Profile object
func PlaceholderProfile(address ObjectID) Profile {
	return Profile{
		Owner:       address,
		Username:    ShortAddress(address),
		Placeholder: true,
	}
}

// ShortAddress abbreviates an address as 0x1234...abcd
func ShortAddress(address ObjectID) string {
	s := string(address)
	if len(s) <= 12 {
		return s
	}
	return s[:6] + "..." + s[len(s)-4:]
}

// Suit is a post. Suits are immutable once created.
type Suit struct {
	ID          ObjectID `json:"id"`
	Author      ObjectID `json:"author"`
	Content     string   `json:"content"`
	TimestampMs uint64   `json:"timestamp_ms"`
}

// Like links a liker to a suit. Likes are append-only.
type Like struct {
	ID     ObjectID `json:"id"`
	SuitID ObjectID `json:"suit_id"`
	Liker  ObjectID `json:"liker"`
}

// Comment is a reply to a suit. Comments are append-only.
type Comment struct {
	ID          ObjectID `json:"id"`
	SuitID      ObjectID `json:"suit_id"`
	Author      ObjectID `json:"author"`
	Content     string   `json:"content"`
	TimestampMs uint64   `json:"timestamp_ms"`
}

// ValidateContent checks suit or comment content before it is submitted
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content is empty", ErrInvalidContent)
	}
	if n := utf8.RuneCountInString(content); n > MAX_SUIT_CONTENT_LENGTH {
		return fmt.Errorf("%w: content exceeds %d characters (got %d)", ErrInvalidContent, MAX_SUIT_CONTENT_LENGTH, n)
	}
	return nil
}

// IndexEventKind identifies which bucket family an indexed object belongs to
type IndexEventKind string

const (
	IndexEventProfile IndexEventKind = "profile"
	IndexEventSuit    IndexEventKind = "suit"
	IndexEventLike    IndexEventKind = "like"
	IndexEventComment IndexEventKind = "comment"
)

// Valid reports whether the kind is known
func (k IndexEventKind) Valid() bool {
	switch k {
	case IndexEventProfile, IndexEventSuit, IndexEventLike, IndexEventComment:
		return true
	}
	return false
}

// IndexEvent announces that an object was added to an instance's local index.
// Scope is the author (suit), the owner (profile) or the target suit id (like, comment).
type IndexEvent struct {
	ID        string         `json:"id"`
	Origin    string         `json:"origin"`
	Kind      IndexEventKind `json:"kind"`
	ObjectID  ObjectID       `json:"object_id"`
	Scope     ObjectID       `json:"scope"`
	TxDigest  string         `json:"tx_digest"`
	Timestamp time.Time      `json:"timestamp"`
}

// NewIndexEvent creates an index event with a time-ordered id
func NewIndexEvent(origin string, kind IndexEventKind, objectID, scope ObjectID, digest string, now time.Time) *IndexEvent {
	return &IndexEvent{
		ID:        ulid.MustNewDefault(now).String(),
		Origin:    origin,
		Kind:      kind,
		ObjectID:  objectID,
		Scope:     scope,
		TxDigest:  digest,
		Timestamp: now.UTC(),
	}
}
