package suitter_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/index"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
	"github.com/suitter-labs/suitter-indexer/internal/mocks"
	"github.com/suitter-labs/suitter-indexer/internal/providers/sui"
	"github.com/suitter-labs/suitter-indexer/internal/query"
	"github.com/suitter-labs/suitter-indexer/internal/store"
	"github.com/suitter-labs/suitter-indexer/internal/suitter"
	"github.com/suitter-labs/suitter-indexer/internal/wallet"
)

const (
	TEST_PACKAGE = "0xpkg"
	TEST_MODULE  = "suitter"
	TEST_AUTHOR  = domain.ObjectID("0x111")
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// testService wires the service with an in-memory index, a real query
// adapter and mocked chain, wallet, publisher and clock
type testService struct {
	ctrl      *gomock.Controller
	chain     *mocks.MockSuiClient
	wallet    *mocks.MockWallet
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	index     index.Index
	service   suitter.Service
}

func setupTestService(t *testing.T) *testService {
	ctrl := gomock.NewController(t)

	ts := &testService{
		ctrl:      ctrl,
		chain:     mocks.NewMockSuiClient(ctrl),
		wallet:    mocks.NewMockWallet(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		index:     index.NewIndex(store.NewMemoryStore()),
	}

	q := query.NewAdapter(query.Config{
		PackageID:      TEST_PACKAGE,
		Module:         TEST_MODULE,
		RequestTimeout: 5 * time.Second,
	}, ts.chain)

	ts.service = suitter.New(suitter.Config{
		PackageID:    TEST_PACKAGE,
		Module:       TEST_MODULE,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		Origin:       "instance-a",
	}, ts.chain, ts.wallet, ts.index, q, ts.publisher, ts.clock)

	ts.clock.EXPECT().Now().Return(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).AnyTimes()

	return ts
}

func (ts *testService) finish() {
	ts.publisher.EXPECT().Close().AnyTimes()
	ts.service.Close()
	ts.ctrl.Finish()
}

func moveObject(id, structName string, fields map[string]interface{}) sui.ObjectResponse {
	raw := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		data, _ := json.Marshal(v)
		raw[k] = data
	}
	moveType := query.StructType(TEST_PACKAGE, TEST_MODULE, structName)
	return sui.ObjectResponse{
		Data: &sui.ObjectData{
			ObjectID: id,
			Type:     moveType,
			Content:  &sui.MoveContent{DataType: "moveObject", Type: moveType, Fields: raw},
		},
	}
}

// serveObjects answers GetObject and MultiGetObjects from a fixed object set
func (ts *testService) serveObjects(objects ...sui.ObjectResponse) {
	byID := make(map[string]sui.ObjectResponse, len(objects))
	for _, obj := range objects {
		byID[obj.Data.ObjectID] = obj
	}
	lookup := func(id string) sui.ObjectResponse {
		if obj, ok := byID[id]; ok {
			return obj
		}
		return sui.ObjectResponse{Error: &sui.ObjectResponseError{Code: sui.OBJECT_ERROR_NOT_EXISTS, ObjectID: id}}
	}

	ts.chain.EXPECT().
		MultiGetObjects(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []string, _ sui.ObjectDataOptions) ([]sui.ObjectResponse, error) {
			out := make([]sui.ObjectResponse, 0, len(ids))
			for _, id := range ids {
				out = append(out, lookup(id))
			}
			return out, nil
		}).
		AnyTimes()
	ts.chain.EXPECT().
		GetObject(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, _ sui.ObjectDataOptions) (*sui.ObjectResponse, error) {
			obj := lookup(id)
			return &obj, nil
		}).
		AnyTimes()
}

// noProfiles makes every owned-profile lookup come back empty
func (ts *testService) noProfiles() {
	ts.chain.EXPECT().
		GetOwnedObjects(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&sui.OwnedObjectsPage{Data: []sui.ObjectResponse{}}, nil).
		AnyTimes()
}

func created(structName, id string) sui.ObjectChange {
	return sui.ObjectChange{
		Type:       sui.OBJECT_CHANGE_CREATED,
		ObjectType: query.StructType(TEST_PACKAGE, TEST_MODULE, structName),
		ObjectID:   id,
	}
}

func TestService_CreatePost_EndToEnd(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()
	ctx := context.Background()

	ts.wallet.EXPECT().Address().Return(TEST_AUTHOR).AnyTimes()
	ts.wallet.EXPECT().
		SignAndExecute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx wallet.Transaction) (*sui.TransactionBlockResponse, error) {
			require.Len(t, tx.Calls, 1)
			assert.Equal(t, "0xpkg::suitter::create_suit", tx.Calls[0].Target)
			assert.Equal(t, []interface{}{"hello sui", domain.SUI_CLOCK_OBJECT_ID}, tx.Calls[0].Arguments)
			return &sui.TransactionBlockResponse{
				Digest:        "D1",
				ObjectChanges: []sui.ObjectChange{created(domain.STRUCT_SUIT, "0xAAA")},
			}, nil
		})
	ts.publisher.EXPECT().
		PublishIndexEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.IndexEvent) error {
			assert.Equal(t, domain.IndexEventSuit, event.Kind)
			assert.Equal(t, domain.ObjectID("0xAAA"), event.ObjectID)
			assert.Equal(t, TEST_AUTHOR, event.Scope)
			assert.Equal(t, "instance-a", event.Origin)
			return nil
		})

	digest, err := ts.service.CreatePost(ctx, "hello sui")
	require.NoError(t, err)
	assert.Equal(t, "D1", digest)
	assert.Contains(t, ts.index.Get(ctx, index.BUCKET_SUITS), domain.ObjectID("0xAAA"))

	ts.serveObjects(moveObject("0xAAA", domain.STRUCT_SUIT, map[string]interface{}{
		"author":       "0x111",
		"content":      "hello sui",
		"timestamp_ms": "1700000000000",
	}))
	ts.noProfiles()

	posts := ts.service.ListPostsByAuthor(ctx, TEST_AUTHOR, "", 20, 0)
	require.Len(t, posts, 1)
	assert.Equal(t, domain.ObjectID("0xAAA"), posts[0].ID)
	assert.Equal(t, "hello sui", posts[0].Content)
	assert.True(t, posts[0].Profile.Placeholder)
	assert.Equal(t, TEST_AUTHOR, posts[0].Profile.Owner)
	assert.False(t, posts[0].Liked)
}

func TestService_CreatePost_RefetchFallback(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()
	ctx := context.Background()

	ts.wallet.EXPECT().Address().Return(TEST_AUTHOR).AnyTimes()
	ts.wallet.EXPECT().
		SignAndExecute(gomock.Any(), gomock.Any()).
		Return(&sui.TransactionBlockResponse{Digest: "D2"}, nil)
	ts.chain.EXPECT().
		GetTransactionBlock(gomock.Any(), "D2", sui.TransactionBlockOptions{ShowEffects: true, ShowObjectChanges: true}).
		Return(&sui.TransactionBlockResponse{
			Digest:        "D2",
			ObjectChanges: []sui.ObjectChange{created(domain.STRUCT_SUIT, "0xBBB")},
		}, nil)
	ts.publisher.EXPECT().PublishIndexEvent(gomock.Any(), gomock.Any()).Return(nil)

	digest, err := ts.service.CreatePost(ctx, "gm")
	require.NoError(t, err)
	assert.Equal(t, "D2", digest)
	assert.Equal(t, []domain.ObjectID{"0xBBB"}, ts.index.Get(ctx, index.SuitsByAuthor(TEST_AUTHOR)))
}

func TestService_CreatePost_IndexingFailureDoesNotFailWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	chain := mocks.NewMockSuiClient(ctrl)
	w := mocks.NewMockWallet(ctrl)
	idx := mocks.NewMockIndex(ctrl)
	q := mocks.NewMockQueryAdapter(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)

	svc := suitter.New(suitter.Config{PackageID: TEST_PACKAGE, Module: TEST_MODULE}, chain, w, idx, q, publisher, mocks.NewMockClock(ctrl))

	w.EXPECT().Address().Return(TEST_AUTHOR).AnyTimes()
	w.EXPECT().
		SignAndExecute(gomock.Any(), gomock.Any()).
		Return(&sui.TransactionBlockResponse{Digest: "D3", ObjectChanges: []sui.ObjectChange{created(domain.STRUCT_SUIT, "0xCCC")}}, nil)
	idx.EXPECT().AddSuit(gomock.Any(), domain.ObjectID("0xCCC"), TEST_AUTHOR).Return(errors.New("store down"))

	digest, err := svc.CreatePost(ctx, "still works")
	require.NoError(t, err)
	assert.Equal(t, "D3", digest)
}

func TestService_CreatePost_RefetchFailureStillResolves(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()
	ctx := context.Background()

	ts.wallet.EXPECT().Address().Return(TEST_AUTHOR).AnyTimes()
	ts.wallet.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).Return(&sui.TransactionBlockResponse{Digest: "D4"}, nil)
	ts.chain.EXPECT().GetTransactionBlock(gomock.Any(), "D4", gomock.Any()).Return(nil, errors.New("not found"))

	digest, err := ts.service.CreatePost(ctx, "gm")
	require.NoError(t, err)
	assert.Equal(t, "D4", digest)
	assert.Empty(t, ts.index.Get(ctx, index.BUCKET_SUITS))
}

func TestService_CreatePost_ValidatesBeforeNetwork(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()

	ts.wallet.EXPECT().Address().Return(TEST_AUTHOR).AnyTimes()

	_, err := ts.service.CreatePost(context.Background(), strings.Repeat("a", 281))
	assert.ErrorIs(t, err, domain.ErrInvalidContent)

	_, err = ts.service.CreatePost(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidContent)
}

func TestService_CreatePost_WalletRejection(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()

	ts.wallet.EXPECT().Address().Return(TEST_AUTHOR).AnyTimes()
	ts.wallet.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).Return(nil, errors.New("user rejected the request"))

	_, err := ts.service.CreatePost(context.Background(), "gm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user rejected the request")
}

func TestService_CreatePost_OnChainAbort(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()

	ts.wallet.EXPECT().Address().Return(TEST_AUTHOR).AnyTimes()
	ts.wallet.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).Return(&sui.TransactionBlockResponse{
		Digest:  "D5",
		Effects: &sui.TransactionEffects{Status: sui.ExecutionStatus{Status: sui.EXECUTION_STATUS_FAILURE, Error: "MoveAbort(1)"}},
	}, nil)

	_, err := ts.service.CreatePost(context.Background(), "gm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MoveAbort(1)")
	assert.Empty(t, ts.index.Get(context.Background(), index.BUCKET_SUITS))
}

func TestService_NotConnected(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()
	ctx := context.Background()

	ts.wallet.EXPECT().Address().Return(domain.ObjectID("")).AnyTimes()

	_, err := ts.service.CreatePost(ctx, "gm")
	assert.ErrorIs(t, err, domain.ErrNotConnected)

	_, err = ts.service.CreateProfile(ctx, "alice", "", "")
	assert.ErrorIs(t, err, domain.ErrNotConnected)

	_, err = ts.service.LikePost(ctx, "0xAAA")
	assert.ErrorIs(t, err, domain.ErrNotConnected)

	_, err = ts.service.CommentOnPost(ctx, "0xAAA", "nice")
	assert.ErrorIs(t, err, domain.ErrNotConnected)

	_, err = ts.service.EstimateGas(ctx, domain.FUNCTION_CREATE_SUIT, []interface{}{"gm"})
	assert.ErrorIs(t, err, domain.ErrNotConnected)
}

func TestService_LikePost_DoubleLikeIndexedOnce(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()
	ctx := context.Background()

	ts.wallet.EXPECT().Address().Return(TEST_AUTHOR).AnyTimes()
	ts.wallet.EXPECT().
		SignAndExecute(gomock.Any(), gomock.Any()).
		Return(&sui.TransactionBlockResponse{Digest: "D6", ObjectChanges: []sui.ObjectChange{created(domain.STRUCT_LIKE, "0xL1")}}, nil).
		Times(2)
	ts.publisher.EXPECT().PublishIndexEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		_, err := ts.service.LikePost(ctx, "0xAAA")
		require.NoError(t, err)
	}

	assert.Equal(t, []domain.ObjectID{"0xL1"}, ts.index.Get(ctx, index.BUCKET_LIKES))
	assert.Equal(t, []domain.ObjectID{"0xL1"}, ts.index.Get(ctx, index.LikesBySuit("0xAAA")))
}

func TestService_CommentOnPost(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()
	ctx := context.Background()

	ts.wallet.EXPECT().Address().Return(TEST_AUTHOR).AnyTimes()
	ts.wallet.EXPECT().
		SignAndExecute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx wallet.Transaction) (*sui.TransactionBlockResponse, error) {
			assert.Equal(t, "0xpkg::suitter::comment_on_suit", tx.Calls[0].Target)
			return &sui.TransactionBlockResponse{
				Digest: "D7",
				ObjectChanges: []sui.ObjectChange{
					{Type: "mutated", ObjectType: "0x2::coin::Coin<0x2::sui::SUI>", ObjectID: "0xgas"},
					created(domain.STRUCT_COMMENT, "0xC1"),
				},
			}, nil
		})
	ts.publisher.EXPECT().PublishIndexEvent(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	digest, err := ts.service.CommentOnPost(ctx, "0xAAA", "nice one")
	require.NoError(t, err)
	assert.Equal(t, "D7", digest)
	assert.Equal(t, []domain.ObjectID{"0xC1"}, ts.index.Get(ctx, index.CommentsBySuit("0xAAA")))
	assert.Equal(t, []domain.ObjectID{"0xC1"}, ts.index.Get(ctx, index.BUCKET_COMMENTS))
}

func TestService_CreateProfile_OwnedObjectFallback(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()
	ctx := context.Background()

	ts.wallet.EXPECT().Address().Return(TEST_AUTHOR).AnyTimes()
	ts.wallet.EXPECT().SignAndExecute(gomock.Any(), gomock.Any()).Return(&sui.TransactionBlockResponse{Digest: "D8"}, nil)
	ts.chain.EXPECT().GetTransactionBlock(gomock.Any(), "D8", gomock.Any()).Return(&sui.TransactionBlockResponse{Digest: "D8"}, nil)
	ts.chain.EXPECT().
		GetOwnedObjects(gomock.Any(), "0x111", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&sui.OwnedObjectsPage{Data: []sui.ObjectResponse{
			moveObject("0xP1", domain.STRUCT_PROFILE, map[string]interface{}{
				"owner": "0x111", "username": "alice", "bio": "", "image_url": "",
			}),
		}}, nil)
	ts.publisher.EXPECT().PublishIndexEvent(gomock.Any(), gomock.Any()).Return(nil)

	digest, err := ts.service.CreateProfile(ctx, "alice", "", "")
	require.NoError(t, err)
	assert.Equal(t, "D8", digest)
	assert.Equal(t, []domain.ObjectID{"0xP1"}, ts.index.Get(ctx, index.ProfilesByOwner(TEST_AUTHOR)))
}

func TestService_UnsupportedOperations(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()
	ctx := context.Background()

	// no wallet or chain expectations: any call fails the test
	checks := map[string]func() error{
		"update profile": func() error { _, err := ts.service.UpdateProfile(ctx, "a", "b", "c"); return err },
		"delete post":    func() error { _, err := ts.service.DeletePost(ctx, "0xAAA"); return err },
		"unlike post":    func() error { _, err := ts.service.UnlikePost(ctx, "0xAAA"); return err },
		"reshare post":   func() error { _, err := ts.service.ResharePost(ctx, "0xAAA"); return err },
		"follow user":    func() error { _, err := ts.service.FollowUser(ctx, "0x222"); return err },
		"unfollow user":  func() error { _, err := ts.service.UnfollowUser(ctx, "0x222"); return err },
		"get followers":  func() error { _, err := ts.service.GetFollowers(ctx, "0x222", 20, 0); return err },
		"get following":  func() error { _, err := ts.service.GetFollowing(ctx, "0x222", 20, 0); return err },
		"notifications":  func() error { _, err := ts.service.GetNotifications(ctx, 20, 0); return err },
		"mark read":      func() error { _, err := ts.service.MarkNotificationRead(ctx, "n1"); return err },
		"estimate unknown function": func() error {
			_, err := ts.service.EstimateGas(ctx, "delete_suit", nil)
			return err
		},
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, check(), domain.ErrUnsupported)
		})
	}
}

func TestService_EstimateGas(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()

	ts.wallet.EXPECT().Address().Return(TEST_AUTHOR).AnyTimes()
	ts.wallet.EXPECT().
		Build(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx wallet.Transaction) (string, error) {
			assert.Equal(t, "0xpkg::suitter::like_suit", tx.Calls[0].Target)
			return "AAEC", nil
		})
	ts.chain.EXPECT().
		DryRunTransactionBlock(gomock.Any(), "AAEC").
		Return(&sui.DryRunResponse{Effects: sui.TransactionEffects{
			Status:  sui.ExecutionStatus{Status: sui.EXECUTION_STATUS_SUCCESS},
			GasUsed: sui.GasCostSummary{ComputationCost: "1000", StorageCost: "2000", StorageRebate: "500"},
		}}, nil)

	gas, err := ts.service.EstimateGas(context.Background(), domain.FUNCTION_LIKE_SUIT, []interface{}{"0xAAA"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2500), gas)
}

func TestService_ListPosts_EmptyIndex(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()

	posts := ts.service.ListPosts(context.Background(), "", 20, 0)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestService_ListPosts_PaginatesInIndexOrder(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()
	ctx := context.Background()

	var objects []sui.ObjectResponse
	for i, id := range []string{"0x1", "0x2", "0x3"} {
		require.NoError(t, ts.index.AddSuit(ctx, domain.ObjectID(id), TEST_AUTHOR))
		objects = append(objects, moveObject(id, domain.STRUCT_SUIT, map[string]interface{}{
			"author":       "0x111",
			"content":      "post " + id,
			"timestamp_ms": strconv.Itoa(i + 1),
		}))
	}
	require.NoError(t, ts.index.AddLike(ctx, "0xL1", "0x3"))
	objects = append(objects, moveObject("0xL1", domain.STRUCT_LIKE, map[string]interface{}{"suit_id": "0x3", "liker": "0x222"}))
	require.NoError(t, ts.index.AddComment(ctx, "0xC1", "0x3"))

	ts.serveObjects(objects...)
	ts.noProfiles()

	// page 0 holds the first two indexed ids, ordered newest first within the page
	first := ts.service.ListPosts(ctx, "0x222", 2, 0)
	require.Len(t, first, 2)
	assert.Equal(t, domain.ObjectID("0x2"), first[0].ID)
	assert.Equal(t, domain.ObjectID("0x1"), first[1].ID)
	assert.False(t, first[0].Liked)
	assert.Equal(t, 0, first[0].LikeCount)

	second := ts.service.ListPosts(ctx, "0x222", 2, 1)
	require.Len(t, second, 1)
	assert.Equal(t, domain.ObjectID("0x3"), second[0].ID)
	assert.True(t, second[0].Liked)
	assert.Equal(t, 1, second[0].LikeCount)
	assert.Equal(t, 1, second[0].CommentCount)

	assert.Empty(t, ts.service.ListPosts(ctx, "0x222", 2, 5))
	assert.True(t, ts.service.HasLiked(ctx, "0x3", "0x222"))
	assert.False(t, ts.service.HasLiked(ctx, "0x3", "0x111"))
}

func TestService_ListComments(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()
	ctx := context.Background()

	require.NoError(t, ts.index.AddComment(ctx, "0xC1", "0xAAA"))
	require.NoError(t, ts.index.AddComment(ctx, "0xC2", "0xAAA"))

	ts.serveObjects(
		moveObject("0xC1", domain.STRUCT_COMMENT, map[string]interface{}{"suit_id": "0xAAA", "author": "0x222", "content": "second", "timestamp_ms": "20"}),
		moveObject("0xC2", domain.STRUCT_COMMENT, map[string]interface{}{"suit_id": "0xAAA", "author": "0x222", "content": "first", "timestamp_ms": "10"}),
	)
	ts.chain.EXPECT().
		GetOwnedObjects(gomock.Any(), "0x222", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&sui.OwnedObjectsPage{Data: []sui.ObjectResponse{
			moveObject("0xP2", domain.STRUCT_PROFILE, map[string]interface{}{"owner": "0x222", "username": "bob", "bio": "", "image_url": ""}),
		}}, nil).
		Times(1)

	comments := ts.service.ListComments(ctx, "0xAAA")
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "second", comments[1].Content)
	assert.Equal(t, "bob", comments[0].Profile.Username)
	assert.Equal(t, "bob", comments[1].Profile.Username)
}

func TestService_GetPostAndProfile(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()
	ctx := context.Background()

	require.NoError(t, ts.index.AddProfile(ctx, "0xP1", TEST_AUTHOR))
	ts.serveObjects(
		moveObject("0xAAA", domain.STRUCT_SUIT, map[string]interface{}{"author": "0x111", "content": "gm", "timestamp_ms": "1"}),
		moveObject("0xP1", domain.STRUCT_PROFILE, map[string]interface{}{"owner": "0x111", "username": "alice", "bio": "hi", "image_url": ""}),
	)
	ts.noProfiles()

	post := ts.service.GetPost(ctx, "0xAAA", "")
	require.NotNil(t, post)
	assert.Equal(t, "alice", post.Profile.Username)
	assert.False(t, post.Profile.Placeholder)

	assert.Nil(t, ts.service.GetPost(ctx, "0xdead", ""))
	assert.True(t, ts.service.ProfileExists(ctx, TEST_AUTHOR))
	assert.False(t, ts.service.ProfileExists(ctx, "0x999"))
}

func TestExtractCreatedIDs(t *testing.T) {
	contract := query.Contract{PackageID: TEST_PACKAGE, Module: TEST_MODULE}
	resp := &sui.TransactionBlockResponse{
		ObjectChanges: []sui.ObjectChange{
			created(domain.STRUCT_SUIT, "0x1"),
			created(domain.STRUCT_SUIT, "0x1"),
			{Type: sui.OBJECT_CHANGE_CREATED, ObjectType: "0xpkg::suitter::SuitCounter", ObjectID: "0x2"},
			{Type: "mutated", ObjectType: "0xpkg::suitter::Suit", ObjectID: "0x3"},
			{Type: sui.OBJECT_CHANGE_CREATED, ObjectType: "...Suit", ObjectID: "0x4"},
			{Type: sui.OBJECT_CHANGE_CREATED, ObjectType: "0xother::suitter::Suit", ObjectID: "0x6"},
			{Type: sui.OBJECT_CHANGE_CREATED, ObjectType: "0xpkg::forum::Suit", ObjectID: "0x7"},
			{Type: sui.OBJECT_CHANGE_CREATED, ObjectID: "0x8"},
			created(domain.STRUCT_LIKE, "0x5"),
		},
	}

	assert.Equal(t, []domain.ObjectID{"0x1"}, suitter.ExtractCreatedIDs(resp, contract, domain.STRUCT_SUIT))
	assert.Equal(t, []domain.ObjectID{"0x5"}, suitter.ExtractCreatedIDs(resp, contract, domain.STRUCT_LIKE))
	assert.Empty(t, suitter.ExtractCreatedIDs(resp, contract, domain.STRUCT_COMMENT))
	assert.Empty(t, suitter.ExtractCreatedIDs(nil, contract, domain.STRUCT_SUIT))
}

func TestService_CreatePost_IgnoresForeignPackageSuit(t *testing.T) {
	ts := setupTestService(t)
	defer ts.finish()
	ctx := context.Background()

	ts.wallet.EXPECT().Address().Return(TEST_AUTHOR).AnyTimes()
	ts.wallet.EXPECT().
		SignAndExecute(gomock.Any(), gomock.Any()).
		Return(&sui.TransactionBlockResponse{
			Digest: "D9",
			ObjectChanges: []sui.ObjectChange{
				{Type: sui.OBJECT_CHANGE_CREATED, ObjectType: "0xother::suitter::Suit", ObjectID: "0xBAD"},
			},
		}, nil)
	ts.chain.EXPECT().
		GetTransactionBlock(gomock.Any(), "D9", gomock.Any()).
		Return(&sui.TransactionBlockResponse{
			Digest: "D9",
			ObjectChanges: []sui.ObjectChange{
				{Type: sui.OBJECT_CHANGE_CREATED, ObjectType: "0xother::suitter::Suit", ObjectID: "0xBAD"},
			},
		}, nil)

	digest, err := ts.service.CreatePost(ctx, "hello sui")
	require.NoError(t, err)
	assert.Equal(t, "D9", digest)
	assert.Empty(t, ts.index.Get(ctx, index.BUCKET_SUITS))
}
