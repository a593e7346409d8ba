package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeObjectID(t *testing.T) {
	full := "0x" + strings.Repeat("0", 63) + "6"

	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "short id",
			input:    "0x6",
			expected: full,
		},
		{
			name:     "already normalized",
			input:    full,
			expected: full,
		},
		{
			name:     "uppercase hex",
			input:    "0xAAA",
			expected: "0x" + strings.Repeat("0", 61) + "aaa",
		},
		{
			name:     "missing prefix",
			input:    "abc",
			expected: "0x" + strings.Repeat("0", 61) + "abc",
		},
		{
			name:    "empty",
			input:   "0x",
			wantErr: true,
		},
		{
			name:    "non hex",
			input:   "0xzz",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "0x" + strings.Repeat("1", 66),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeObjectID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidObjectID))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestObjectID_Equal(t *testing.T) {
	assert.True(t, ObjectID("0x2").Equal(ObjectID("0x0000000000000000000000000000000000000000000000000000000000000002")))
	assert.True(t, ObjectID("0xABC").Equal(ObjectID("0xabc")))
	assert.False(t, ObjectID("0x2").Equal(ObjectID("0x3")))
	assert.False(t, ObjectID("not-hex").Equal(ObjectID("0x3")))
	assert.True(t, ObjectID("not-hex").Equal(ObjectID("not-hex")))
}

func TestValidateContent(t *testing.T) {
	assert.NoError(t, ValidateContent("gm"))
	assert.NoError(t, ValidateContent(strings.Repeat("é", MAX_SUIT_CONTENT_LENGTH)))

	err := ValidateContent("   ")
	assert.ErrorIs(t, err, ErrInvalidContent)

	err = ValidateContent(strings.Repeat("a", MAX_SUIT_CONTENT_LENGTH+1))
	assert.ErrorIs(t, err, ErrInvalidContent)
	assert.Contains(t, err.Error(), "exceeds 280 characters")
}

func TestPlaceholderProfile(t *testing.T) {
	addr := ObjectID("0x1234567890abcdef1234567890abcdef")
	p := PlaceholderProfile(addr)

	assert.True(t, p.Placeholder)
	assert.Equal(t, addr, p.Owner)
	assert.Equal(t, "0x1234...cdef", p.Username)
	assert.Empty(t, p.ID)

	assert.Equal(t, "0x111", ShortAddress("0x111"))
}

func TestNewIndexEvent(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	event := NewIndexEvent("instance-a", IndexEventSuit, "0xaaa", "0x111", "digest", now)

	assert.Len(t, event.ID, 26)
	assert.Equal(t, "instance-a", event.Origin)
	assert.Equal(t, IndexEventSuit, event.Kind)
	assert.Equal(t, now, event.Timestamp)
	assert.True(t, event.Kind.Valid())
	assert.False(t, IndexEventKind("reshare").Valid())
}
