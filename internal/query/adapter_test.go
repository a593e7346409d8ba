package query_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
	"github.com/suitter-labs/suitter-indexer/internal/mocks"
	"github.com/suitter-labs/suitter-indexer/internal/providers/sui"
	"github.com/suitter-labs/suitter-indexer/internal/query"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestAdapter(t *testing.T, client sui.Client, batchSize int) query.Adapter {
	a := query.NewAdapter(query.Config{
		PackageID:      TEST_PACKAGE,
		Module:         "suitter",
		RequestTimeout: 5 * time.Second,
		BatchSize:      batchSize,
		Concurrency:    2,
	}, client)
	t.Cleanup(a.Close)
	return a
}

// chainOf serves MultiGetObjects from a fixed set of objects
func chainOf(objects ...sui.ObjectResponse) func(context.Context, []string, sui.ObjectDataOptions) ([]sui.ObjectResponse, error) {
	byID := make(map[string]sui.ObjectResponse, len(objects))
	for _, obj := range objects {
		byID[obj.Data.ObjectID] = obj
	}

	return func(_ context.Context, ids []string, _ sui.ObjectDataOptions) ([]sui.ObjectResponse, error) {
		out := make([]sui.ObjectResponse, 0, len(ids))
		for _, id := range ids {
			obj, ok := byID[id]
			if !ok {
				obj = sui.ObjectResponse{Error: &sui.ObjectResponseError{Code: sui.OBJECT_ERROR_NOT_EXISTS, ObjectID: id}}
			}
			out = append(out, obj)
		}
		return out, nil
	}
}

func TestAdapter_FetchSuitsByIDs_SkipsMalformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockSuiClient(ctrl)
	malformed := object("0xBAD", domain.STRUCT_SUIT, map[string]interface{}{"author": "0x111"})
	mockClient.EXPECT().
		MultiGetObjects(gomock.Any(), []string{"0xAAA", "0xBAD"}, sui.ContentOptions).
		DoAndReturn(chainOf(suitObject("0xAAA", "0x111", "gm", 10), malformed))

	a := newTestAdapter(t, mockClient, 0)
	suits := a.FetchSuitsByIDs(context.Background(), []domain.ObjectID{"0xAAA", "0xBAD"})

	require.Len(t, suits, 1)
	assert.Equal(t, domain.ObjectID("0xAAA"), suits[0].ID)
}

func TestAdapter_FetchSuitsByIDs_NewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockSuiClient(ctrl)
	mockClient.EXPECT().
		MultiGetObjects(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(chainOf(
			suitObject("0x1", "0x111", "first", 100),
			suitObject("0x2", "0x111", "third", 300),
			suitObject("0x3", "0x111", "second", 200),
		))

	a := newTestAdapter(t, mockClient, 0)
	suits := a.FetchSuitsByIDs(context.Background(), []domain.ObjectID{"0x1", "0x2", "0x3"})

	require.Len(t, suits, 3)
	assert.Equal(t, []uint64{300, 200, 100}, []uint64{suits[0].TimestampMs, suits[1].TimestampMs, suits[2].TimestampMs})
}

func TestAdapter_FetchSuitsByIDs_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestAdapter(t, mocks.NewMockSuiClient(ctrl), 0)
	suits := a.FetchSuitsByIDs(context.Background(), nil)
	assert.NotNil(t, suits)
	assert.Empty(t, suits)
}

func TestAdapter_FetchSuitsByIDs_ChunksAndDropsFailedChunk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockSuiClient(ctrl)
	serve := chainOf(
		suitObject("0x1", "0x111", "a", 1),
		suitObject("0x2", "0x111", "b", 2),
		suitObject("0x3", "0x111", "c", 3),
		suitObject("0x4", "0x111", "d", 4),
		suitObject("0x5", "0x111", "e", 5),
	)

	var mu sync.Mutex
	var batches [][]string
	mockClient.EXPECT().
		MultiGetObjects(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ids []string, opts sui.ObjectDataOptions) ([]sui.ObjectResponse, error) {
			mu.Lock()
			batches = append(batches, ids)
			mu.Unlock()

			if ids[0] == "0x3" {
				return nil, errors.New("rate limited")
			}
			return serve(ctx, ids, opts)
		}).
		Times(3)

	a := newTestAdapter(t, mockClient, 2)
	suits := a.FetchSuitsByIDs(context.Background(), []domain.ObjectID{"0x1", "0x2", "0x3", "0x4", "0x5"})

	assert.Len(t, batches, 3)
	for _, batch := range batches {
		assert.LessOrEqual(t, len(batch), 2)
	}

	ids := make([]domain.ObjectID, 0, len(suits))
	for _, s := range suits {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []domain.ObjectID{"0x5", "0x2", "0x1"}, ids)
}

func TestAdapter_FetchSuitByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockSuiClient(ctrl)
	obj := suitObject("0xAAA", "0x111", "gm", 10)
	mockClient.EXPECT().GetObject(gomock.Any(), "0xAAA", sui.ContentOptions).Return(&obj, nil)
	mockClient.EXPECT().GetObject(gomock.Any(), "0xBBB", sui.ContentOptions).Return(nil, errors.New("timeout"))

	a := newTestAdapter(t, mockClient, 0)

	suit := a.FetchSuitByID(context.Background(), "0xAAA")
	require.NotNil(t, suit)
	assert.Equal(t, "gm", suit.Content)

	assert.Nil(t, a.FetchSuitByID(context.Background(), "0xBBB"))
	assert.Nil(t, a.FetchSuitByID(context.Background(), ""))
}

func TestAdapter_FetchLikesBySuitID_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockSuiClient(ctrl)
	mockClient.EXPECT().
		MultiGetObjects(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(chainOf(
			likeObject("0xL1", "0xAAA", "0x111"),
			likeObject("0xL2", "0xBBB", "0x111"),
			likeObject("0xL3", "0x0000000000000000000000000000000000000000000000000000000000000aaa", "0x222"),
		))

	a := newTestAdapter(t, mockClient, 0)
	likes := a.FetchLikesBySuitID(context.Background(), "0xAAA", []domain.ObjectID{"0xL1", "0xL2", "0xL3"})

	require.Len(t, likes, 2)
	assert.Equal(t, domain.ObjectID("0xL1"), likes[0].ID)
	assert.Equal(t, domain.ObjectID("0xL3"), likes[1].ID)
}

func TestAdapter_FetchCommentsBySuitID_OldestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockSuiClient(ctrl)
	mockClient.EXPECT().
		MultiGetObjects(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(chainOf(
			commentObject("0xC1", "0xAAA", "0x222", "later", 200),
			commentObject("0xC2", "0xAAA", "0x333", "earlier", 100),
			commentObject("0xC3", "0xBBB", "0x333", "elsewhere", 50),
		))

	a := newTestAdapter(t, mockClient, 0)
	comments := a.FetchCommentsBySuitID(context.Background(), "0xAAA", []domain.ObjectID{"0xC1", "0xC2", "0xC3"})

	require.Len(t, comments, 2)
	assert.Equal(t, "earlier", comments[0].Content)
	assert.Equal(t, "later", comments[1].Content)
}

func TestAdapter_HasLiked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockSuiClient(ctrl)
	mockClient.EXPECT().
		MultiGetObjects(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(chainOf(
			likeObject("0xL1", "0xAAA", "0x111"),
			likeObject("0xL2", "0xBBB", "0x222"),
		)).
		Times(3)

	a := newTestAdapter(t, mockClient, 0)
	ctx := context.Background()
	candidates := []domain.ObjectID{"0xL1", "0xL2"}

	assert.True(t, a.HasLiked(ctx, "0xAAA", "0x111", candidates))
	assert.False(t, a.HasLiked(ctx, "0xAAA", "0x222", candidates))
	assert.False(t, a.HasLiked(ctx, "0xCCC", "0x111", candidates))

	// no network call for an empty candidate list
	assert.False(t, a.HasLiked(ctx, "0xAAA", "0x111", nil))
}

func TestAdapter_FetchProfileByOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockSuiClient(ctrl)
	mockClient.EXPECT().
		GetOwnedObjects(gomock.Any(), "0x111", gomock.Any(), nil, 1).
		DoAndReturn(func(_ context.Context, _ string, q sui.OwnedObjectsQuery, _ *string, _ int) (*sui.OwnedObjectsPage, error) {
			require.NotNil(t, q.Filter)
			assert.Equal(t, "0x2::suitter::Profile", q.Filter.StructType)
			return &sui.OwnedObjectsPage{Data: []sui.ObjectResponse{profileObject("0xP1", "0x111", "alice")}}, nil
		})

	a := newTestAdapter(t, mockClient, 0)
	profile := a.FetchProfileByOwner(context.Background(), "0x111")
	require.NotNil(t, profile)
	assert.Equal(t, "alice", profile.Username)
}

func TestAdapter_FetchProfileByOwner_FetchesByIDWhenContentMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockSuiClient(ctrl)
	full := profileObject("0xP1", "0x111", "alice")
	mockClient.EXPECT().
		GetOwnedObjects(gomock.Any(), "0x111", gomock.Any(), nil, 1).
		Return(&sui.OwnedObjectsPage{Data: []sui.ObjectResponse{{Data: &sui.ObjectData{ObjectID: "0xP1"}}}}, nil)
	mockClient.EXPECT().GetObject(gomock.Any(), "0xP1", sui.ContentOptions).Return(&full, nil)

	a := newTestAdapter(t, mockClient, 0)
	profile := a.FetchProfileByOwner(context.Background(), "0x111")
	require.NotNil(t, profile)
	assert.Equal(t, domain.ObjectID("0xP1"), profile.ID)
}

func TestAdapter_FetchProfileByOwner_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockSuiClient(ctrl)
	gomock.InOrder(
		mockClient.EXPECT().
			GetOwnedObjects(gomock.Any(), "0x111", gomock.Any(), nil, 1).
			Return(&sui.OwnedObjectsPage{Data: []sui.ObjectResponse{}}, nil),
		mockClient.EXPECT().
			GetOwnedObjects(gomock.Any(), "0x111", gomock.Any(), nil, 1).
			Return(nil, errors.New("503")),
	)

	a := newTestAdapter(t, mockClient, 0)
	assert.Nil(t, a.FetchProfileByOwner(context.Background(), "0x111"))
	assert.Nil(t, a.FetchProfileByOwner(context.Background(), "0x111"))
}

func TestAdapter_FetchProfileByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockSuiClient(ctrl)
	suit := suitObject("0xAAA", "0x111", "gm", 1)
	mockClient.EXPECT().GetObject(gomock.Any(), "0xAAA", sui.ContentOptions).Return(&suit, nil)

	a := newTestAdapter(t, mockClient, 0)
	assert.Nil(t, a.FetchProfileByID(context.Background(), "0xAAA"))
}
