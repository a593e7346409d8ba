package jetstream_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
	"github.com/suitter-labs/suitter-indexer/internal/mocks"
	"github.com/suitter-labs/suitter-indexer/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "suitter-index",
		StreamMaxAge:   24 * time.Hour,
		MaxReconnects:  10,
		ReconnectWait:  time.Second,
		ConnectionName: "test-publisher",
	}
}

func TestNewPublisher_EnsuresStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(conn, js, nil)
	js.EXPECT().
		EnsureStream(gomock.Any(), natsjs.StreamConfig{
			Name:     "suitter-index",
			Subjects: []string{"suitter.index.>"},
			MaxAge:   24 * time.Hour,
		}).
		Return(nil)
	conn.EXPECT().ConnectedUrl().Return("nats://localhost:4222")

	p, err := jetstream.NewPublisher(context.Background(), testConfig(), natsJS)
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestNewPublisher_StreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(assert.AnError)
	conn.EXPECT().Close()

	p, err := jetstream.NewPublisher(context.Background(), testConfig(), natsJS)
	assert.Nil(t, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ensure stream")
}

func TestNewPublisher_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, assert.AnError)

	_, err := jetstream.NewPublisher(context.Background(), testConfig(), natsJS)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestPublisher_PublishIndexEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(conn, js, nil)
	js.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(nil)
	conn.EXPECT().ConnectedUrl().Return("nats://localhost:4222")

	p, err := jetstream.NewPublisher(context.Background(), testConfig(), natsJS)
	require.NoError(t, err)

	event := domain.NewIndexEvent("instance-a", domain.IndexEventSuit, "0xAAA", "0x111", "D1", time.Now())

	js.EXPECT().
		Publish(gomock.Any(), "suitter.index.suit", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var got domain.IndexEvent
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, event.ID, got.ID)
			assert.Equal(t, domain.ObjectID("0xAAA"), got.ObjectID)
			assert.Equal(t, domain.ObjectID("0x111"), got.Scope)
			return &natsjs.PubAck{Stream: "suitter-index", Sequence: 1}, nil
		})

	require.NoError(t, p.PublishIndexEvent(context.Background(), event))

	js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
	require.Error(t, p.PublishIndexEvent(context.Background(), event))

	conn.EXPECT().Close()
	p.Close()
}
