package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ObjectID is an opaque handle to a chain-resident object.
// Addresses share the same representation.
type ObjectID string

// String returns the id as stored
func (id ObjectID) String() string {
	return string(id)
}

// Normalized returns the canonical 0x-prefixed, 32-byte, lowercase form of the id.
// Invalid ids are returned unchanged so comparisons stay total.
func (id ObjectID) Normalized() ObjectID {
	n, err := NormalizeObjectID(string(id))
	if err != nil {
		return id
	}
	return ObjectID(n)
}

// Equal reports whether two ids refer to the same object, ignoring
// zero-padding and case differences (0x2 == 0x0...02)
func (id ObjectID) Equal(other ObjectID) bool {
	return id.Normalized() == other.Normalized()
}

// Valid reports whether the id is well-formed hex of at most 32 bytes
func (id ObjectID) Valid() bool {
	_, err := NormalizeObjectID(string(id))
	return err == nil
}

// NormalizeObjectID left-pads a hex object id or address to 32 bytes
func NormalizeObjectID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidObjectID)
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}

	b, err := hexutil.Decode("0x" + s)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidObjectID, raw, err)
	}
	if len(b) > OBJECT_ID_LENGTH {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrInvalidObjectID, raw, OBJECT_ID_LENGTH)
	}

	return hexutil.Encode(common.LeftPadBytes(b, OBJECT_ID_LENGTH)), nil
}

// ToObjectIDs converts raw strings to ObjectIDs
func ToObjectIDs(ids []string) []ObjectID {
	out := make([]ObjectID, 0, len(ids))
	for _, id := range ids {
		out = append(out, ObjectID(id))
	}
	return out
}

// ToStrings converts ObjectIDs to raw strings
func ToStrings(ids []ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}
