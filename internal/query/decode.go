package query

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/providers/sui"
)

// DecodeError reports that a fetched object does not have the expected shape
type DecodeError struct {
	ObjectID string
	Kind     string
	Reason   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s %s: %s", e.Kind, e.ObjectID, e.Reason)
}

// DecodeProfile decodes a Profile object declared by contract
func DecodeProfile(contract Contract, resp sui.ObjectResponse) (*domain.Profile, error) {
	d, err := newDecoder(contract, resp, domain.STRUCT_PROFILE)
	if err != nil {
		return nil, err
	}

	owner := d.id("owner")
	username := d.string("username")
	bio := d.string("bio")
	imageURL := d.string("image_url")
	if d.err != nil {
		return nil, d.err
	}

	return &domain.Profile{
		ID:       d.objectID,
		Owner:    owner,
		Username: username,
		Bio:      bio,
		ImageURL: imageURL,
	}, nil
}

// DecodeSuit decodes a Suit object declared by contract
func DecodeSuit(contract Contract, resp sui.ObjectResponse) (*domain.Suit, error) {
	d, err := newDecoder(contract, resp, domain.STRUCT_SUIT)
	if err != nil {
		return nil, err
	}

	author := d.id("author")
	content := d.string("content")
	timestamp := d.timestamp()
	if d.err != nil {
		return nil, d.err
	}

	return &domain.Suit{
		ID:          d.objectID,
		Author:      author,
		Content:     content,
		TimestampMs: timestamp,
	}, nil
}

// DecodeLike decodes a Like object declared by contract
func DecodeLike(contract Contract, resp sui.ObjectResponse) (*domain.Like, error) {
	d, err := newDecoder(contract, resp, domain.STRUCT_LIKE)
	if err != nil {
		return nil, err
	}

	suitID := d.id("suit_id")
	liker := d.id("liker")
	if d.err != nil {
		return nil, d.err
	}

	return &domain.Like{
		ID:     d.objectID,
		SuitID: suitID,
		Liker:  liker,
	}, nil
}

// DecodeComment decodes a Comment object declared by contract
func DecodeComment(contract Contract, resp sui.ObjectResponse) (*domain.Comment, error) {
	d, err := newDecoder(contract, resp, domain.STRUCT_COMMENT)
	if err != nil {
		return nil, err
	}

	suitID := d.id("suit_id")
	author := d.id("author")
	content := d.string("content")
	timestamp := d.timestamp()
	if d.err != nil {
		return nil, d.err
	}

	return &domain.Comment{
		ID:          d.objectID,
		SuitID:      suitID,
		Author:      author,
		Content:     content,
		TimestampMs: timestamp,
	}, nil
}

// decoder reads Move fields and keeps the first failure
type decoder struct {
	objectID domain.ObjectID
	kind     string
	fields   map[string]json.RawMessage
	err      error
}

func newDecoder(contract Contract, resp sui.ObjectResponse, kind string) (*decoder, error) {
	if resp.Error != nil {
		return nil, &DecodeError{ObjectID: resp.Error.ObjectID, Kind: kind, Reason: "object error: " + resp.Error.Code}
	}
	if resp.Data == nil {
		return nil, &DecodeError{Kind: kind, Reason: "missing object data"}
	}

	data := resp.Data
	if data.Content == nil || data.Content.Fields == nil {
		return nil, &DecodeError{ObjectID: data.ObjectID, Kind: kind, Reason: "missing move content"}
	}

	moveType := data.Content.Type
	if moveType == "" {
		moveType = data.Type
	}
	if moveType == "" {
		return nil, &DecodeError{ObjectID: data.ObjectID, Kind: kind, Reason: "missing type"}
	}
	if !contract.Owns(moveType, kind) {
		return nil, &DecodeError{ObjectID: data.ObjectID, Kind: kind, Reason: "unexpected type " + moveType}
	}

	return &decoder{
		objectID: domain.ObjectID(data.ObjectID),
		kind:     kind,
		fields:   data.Content.Fields,
	}, nil
}

func (d *decoder) fail(field, reason string) {
	if d.err == nil {
		d.err = &DecodeError{ObjectID: d.objectID.String(), Kind: d.kind, Reason: fmt.Sprintf("field %s: %s", field, reason)}
	}
}

func (d *decoder) string(field string) string {
	raw, ok := d.fields[field]
	if !ok {
		d.fail(field, "missing")
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		d.fail(field, "not a string")
		return ""
	}
	return s
}

// id reads an address or ID field, encoded either as a string or as {"id": "0x..."}
func (d *decoder) id(field string) domain.ObjectID {
	raw, ok := d.fields[field]
	if !ok {
		d.fail(field, "missing")
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			d.fail(field, "empty id")
		}
		return domain.ObjectID(s)
	}

	var wrapped struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil || wrapped.ID == "" {
		d.fail(field, "not an id")
		return ""
	}
	return domain.ObjectID(wrapped.ID)
}

// u64 reads a u64 field encoded as a decimal string or a JSON number
func (d *decoder) u64(field string) (uint64, bool) {
	raw, ok := d.fields[field]
	if !ok {
		return 0, false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		d.fail(field, "not a u64")
		return 0, true
	}
	return n, true
}

func (d *decoder) timestamp() uint64 {
	if n, ok := d.u64("timestamp_ms"); ok {
		return n
	}
	if n, ok := d.u64("timestamp"); ok {
		return n
	}
	d.fail("timestamp_ms", "missing")
	return 0
}
