package wallet_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suitter-labs/suitter-indexer/internal/adapter"
	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
	"github.com/suitter-labs/suitter-indexer/internal/mocks"
	"github.com/suitter-labs/suitter-indexer/internal/providers/sui"
	"github.com/suitter-labs/suitter-indexer/internal/wallet"
)

const BRIDGE_URL = "http://wallet-bridge:8090"

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestTarget(t *testing.T) {
	assert.Equal(t, "0xpkg::suitter::create_suit", wallet.Target("0xpkg", "suitter", domain.FUNCTION_CREATE_SUIT))
}

func TestBridge_SignAndExecute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	w := wallet.NewBridge(wallet.BridgeConfig{URL: BRIDGE_URL + "/", APIKey: "secret", Address: "0x111"}, mockHTTPClient)

	mockHTTPClient.EXPECT().
		PostJSONOnce(gomock.Any(), BRIDGE_URL+"/v1/transactions/execute", map[string]string{"Authorization": "Bearer secret"}, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, body interface{}, result interface{}) error {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			assert.Contains(t, string(data), `"sender":"0x111"`)
			assert.Contains(t, string(data), `"showObjectChanges":true`)

			resp := result.(*sui.TransactionBlockResponse)
			resp.Digest = "D1"
			resp.ObjectChanges = []sui.ObjectChange{{Type: sui.OBJECT_CHANGE_CREATED, ObjectType: "0xpkg::suitter::Suit", ObjectID: "0xAAA"}}
			return nil
		})

	resp, err := w.SignAndExecute(context.Background(), wallet.NewMoveCallTransaction("0xpkg::suitter::create_suit", "gm", domain.SUI_CLOCK_OBJECT_ID))
	require.NoError(t, err)
	assert.Equal(t, "D1", resp.Digest)
	assert.Len(t, resp.ObjectChanges, 1)
	assert.Equal(t, domain.ObjectID("0x111"), w.Address())
}

func TestBridge_SignAndExecute_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	w := wallet.NewBridge(wallet.BridgeConfig{URL: BRIDGE_URL, Address: "0x111"}, mockHTTPClient)

	mockHTTPClient.EXPECT().
		PostJSONOnce(gomock.Any(), BRIDGE_URL+"/v1/transactions/execute", nil, gomock.Any(), gomock.Any()).
		Return(errors.New("user rejected"))

	_, err := w.SignAndExecute(context.Background(), wallet.NewMoveCallTransaction("0xpkg::suitter::like_suit"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user rejected")
}

func TestBridge_NotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	w := wallet.NewBridge(wallet.BridgeConfig{URL: BRIDGE_URL}, mockHTTPClient)

	assert.Equal(t, domain.ObjectID(""), w.Address())

	_, err := w.SignAndExecute(context.Background(), wallet.Transaction{})
	assert.ErrorIs(t, err, domain.ErrNotConnected)

	_, err = w.Build(context.Background(), wallet.Transaction{})
	assert.ErrorIs(t, err, domain.ErrNotConnected)
}

func TestBridge_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	w := wallet.NewBridge(wallet.BridgeConfig{URL: BRIDGE_URL, Address: "0x111"}, mockHTTPClient)

	gomock.InOrder(
		mockHTTPClient.EXPECT().
			PostJSON(gomock.Any(), BRIDGE_URL+"/v1/transactions/build", nil, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ map[string]string, _ interface{}, result interface{}) error {
				return nil
			}),
		mockHTTPClient.EXPECT().
			PostJSON(gomock.Any(), BRIDGE_URL+"/v1/transactions/build", nil, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ map[string]string, _ interface{}, result interface{}) error {
				return json.Unmarshal([]byte(`{"tx_bytes":"AAEC"}`), result)
			}),
	)

	_, err := w.Build(context.Background(), wallet.Transaction{})
	require.Error(t, err)

	txBytes, err := w.Build(context.Background(), wallet.Transaction{})
	require.NoError(t, err)
	assert.Equal(t, "AAEC", txBytes)
}

func TestBridge_SignAndExecute_NotReplayedAfterServerError(t *testing.T) {
	var executeCalls, buildCalls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/transactions/execute":
			// the first attempt may already have landed on chain
			if executeCalls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`{"digest":"D2"}`))
		case "/v1/transactions/build":
			if buildCalls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`{"tx_bytes":"AAEC"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	httpClient := adapter.NewHTTPClient(5*time.Second, adapter.RetryConfig{
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		MaxElapsedTime:  time.Second,
	})
	w := wallet.NewBridge(wallet.BridgeConfig{URL: server.URL, Address: "0x111"}, httpClient)

	resp, err := w.SignAndExecute(context.Background(), wallet.NewMoveCallTransaction("0xpkg::suitter::create_suit", "gm"))
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, int32(1), executeCalls.Load())

	// building is side-effect free and keeps its retries
	txBytes, err := w.Build(context.Background(), wallet.NewMoveCallTransaction("0xpkg::suitter::create_suit", "gm"))
	require.NoError(t, err)
	assert.Equal(t, "AAEC", txBytes)
	assert.Equal(t, int32(2), buildCalls.Load())
}
