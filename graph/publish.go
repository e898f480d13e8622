// Package graph provides utilities for publishing assembled page graphs to
// a JetStream stream so downstream consumers (indexers, validators) can
// pick up structured-data renders.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/placewise/localgraph/schema"
)

// Subject for page graph publishing.
const PageSubject = "schema.graph.page"

// StreamName is the JetStream stream holding published graphs.
const StreamName = "SCHEMA"

// PageMessage is the message format for a published page graph.
type PageMessage struct {
	RequestID   string          `json:"request_id"`
	Canonical   string          `json:"canonical"`
	Graph       json.RawMessage `json:"graph"`
	PublishedAt time.Time       `json:"published_at"`
}

// Publisher publishes page graphs to JetStream. A nil Publisher skips
// publishing, so callers without a NATS connection degrade gracefully.
type Publisher struct {
	js jetstream.JetStream
}

// NewPublisher creates a Publisher over a NATS connection and ensures the
// schema stream exists.
func NewPublisher(ctx context.Context, nc *nats.Conn) (*Publisher, error) {
	js, err := jetstream.New(nc)
	if err != nil {
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{"schema.graph.>"},
		MaxAge:   24 * time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("ensure stream: %w", err)
	}

	return &Publisher{js: js}, nil
}

// PublishPage publishes one assembled page graph.
func (p *Publisher) PublishPage(ctx context.Context, rctx *schema.Context, g *schema.Graph) error {
	if p == nil {
		return nil // Skip publishing if no NATS client (graceful degradation)
	}

	graphJSON, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal graph: %w", err)
	}

	msg := PageMessage{
		RequestID:   rctx.RequestID,
		Canonical:   rctx.Canonical,
		Graph:       graphJSON,
		PublishedAt: time.Now(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal page message: %w", err)
	}

	if _, err := p.js.Publish(ctx, PageSubject, data); err != nil {
		return fmt.Errorf("publish page graph: %w", err)
	}

	return nil
}
