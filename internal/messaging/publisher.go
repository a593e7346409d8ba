package messaging

import (
	"context"
	"fmt"

	"github.com/suitter-labs/suitter-indexer/internal/domain"
)

// SUBJECT_PREFIX is the subject namespace of index events
const SUBJECT_PREFIX = "suitter.index"

// SUBJECT_ALL matches every index event subject
const SUBJECT_ALL = SUBJECT_PREFIX + ".>"

// Subject returns the subject an index event of kind is published on
func Subject(kind domain.IndexEventKind) string {
	return fmt.Sprintf("%s.%s", SUBJECT_PREFIX, kind)
}

// Publisher defines the interface for publishing index events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishIndexEvent announces an object added to the local index
	PublishIndexEvent(ctx context.Context, event *domain.IndexEvent) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event, used when no broker is configured
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishIndexEvent(context.Context, *domain.IndexEvent) error {
	return nil
}

func (noopPublisher) Close() {}
