package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/suitter-labs/suitter-indexer/internal/adapter"
	"github.com/suitter-labs/suitter-indexer/internal/domain"
	"github.com/suitter-labs/suitter-indexer/internal/index"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
	"github.com/suitter-labs/suitter-indexer/internal/messaging"
	jsprovider "github.com/suitter-labs/suitter-indexer/internal/providers/jetstream"
)

// Config holds the configuration for the index event bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int

	// Origin identifies this instance; events it published itself are skipped
	Origin string
}

// EPHEMERAL_INACTIVE_THRESHOLD is how long an unnamed consumer survives without a subscriber
const EPHEMERAL_INACTIVE_THRESHOLD = 5 * time.Minute

// Bridge applies index events published by other instances to the local index
type Bridge interface {
	// Run consumes events until ctx is cancelled
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	index  index.Index
	config Config
}

// NewBridge creates a new index event bridge
func NewBridge(cfg Config, natsJS adapter.NatsJetStream, idx index.Index) (Bridge, error) {
	nc, js, err := natsJS.Connect(cfg.URL, jsprovider.ConnectOptions(cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:     nc,
		js:     js,
		index:  idx,
		config: cfg,
	}, nil
}

// Run starts consuming index events
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting index event bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName),
		zap.String("origin", b.config.Origin))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: messaging.SUBJECT_ALL,
		DeliverPolicy: jetstream.DeliverAllPolicy,
	}
	if b.config.ConsumerName == "" {
		consumerConfig.InactiveThreshold = EPHEMERAL_INACTIVE_THRESHOLD
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming index events")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down index event bridge")
			return ctx.Err()
		case msg := <-msgChan:
			b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage applies a single index event.
// Unparseable events are terminated; index write failures are NAKed for redelivery.
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	var event domain.IndexEvent
	if err := json.Unmarshal(msg.Data(), &event); err != nil || !event.Kind.Valid() || event.ObjectID == "" {
		logger.WarnCtx(ctx, "Dropping malformed index event",
			zap.String("subject", msg.Subject()),
			zap.Error(err))
		if err := msg.Term(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	if event.Origin != "" && event.Origin == b.config.Origin {
		b.ack(ctx, msg)
		return
	}

	if err := Apply(ctx, b.index, &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to apply index event"), zap.String("eventID", event.ID))
		if err := msg.Nak(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	logger.InfoCtx(ctx, "Applied index event",
		zap.String("eventID", event.ID),
		zap.String("kind", string(event.Kind)),
		zap.String("objectID", event.ObjectID.String()),
		zap.String("origin", event.Origin))

	b.ack(ctx, msg)
}

func (b *bridge) ack(ctx context.Context, msg adapter.Message) {
	if err := msg.Ack(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ACK message"))
	}
}

// Apply writes an index event into idx using the same helpers as the local write path
func Apply(ctx context.Context, idx index.Index, event *domain.IndexEvent) error {
	switch event.Kind {
	case domain.IndexEventSuit:
		return idx.AddSuit(ctx, event.ObjectID, event.Scope)
	case domain.IndexEventLike:
		return idx.AddLike(ctx, event.ObjectID, event.Scope)
	case domain.IndexEventComment:
		return idx.AddComment(ctx, event.ObjectID, event.Scope)
	case domain.IndexEventProfile:
		return idx.AddProfile(ctx, event.ObjectID, event.Scope)
	default:
		return fmt.Errorf("unknown index event kind: %s", event.Kind)
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
