// Package eventbus implements the event bus adapter.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/kestrel/internal/adapters/out/telemetry"
	"github.com/bnema/kestrel/internal/boundaries/out"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
)

const (
	defaultBufferSize = 256
	publishTimeout    = 5 * time.Second
	handlerTimeout    = 30 * time.Second
)

// ErrStopped is returned when publishing to a stopped bus.
var ErrStopped = errors.New("event bus is stopped")

// Ensure InMemory implements out.EventBus.
var _ out.EventBus = (*InMemory)(nil)

// InMemory is a buffered event bus delivering events to subscribers on a
// single worker goroutine, in publish order.
type InMemory struct {
	mu       sync.RWMutex
	handlers []out.EventHandler

	events  chan domain.Event
	done    chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
	metrics *telemetry.Metrics
	log     logging.Logger
}

// NewInMemory creates a bus holding up to bufferSize undelivered events.
// metrics may be nil.
func NewInMemory(bufferSize int, metrics *telemetry.Metrics, log logging.Logger) *InMemory {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &InMemory{
		events:  make(chan domain.Event, bufferSize),
		done:    make(chan struct{}),
		ctx:     ctx,
		cancel:  cancel,
		metrics: metrics,
		log:     log,
	}
}

// Publish queues an event. It waits a bounded time for buffer space.
func (bus *InMemory) Publish(eventType domain.EventType, payload any) error {
	event := newEvent(eventType, payload)

	select {
	case <-bus.ctx.Done():
		return ErrStopped
	default:
	}

	timer := time.NewTimer(publishTimeout)
	defer timer.Stop()

	select {
	case bus.events <- event:
		bus.log.Debug().
			Str(logging.FieldLayer, "adapter").
			Str(logging.FieldAdapter, "eventbus").
			Str("event_id", event.ID).
			Str(logging.FieldEvent, string(event.Type)).
			Str("repository", event.Repository).
			Msg("event published")
		return nil
	case <-bus.ctx.Done():
		return ErrStopped
	case <-timer.C:
		if bus.metrics != nil {
			bus.metrics.EventsDropped.WithLabelValues(string(event.Type)).Inc()
		}
		bus.log.Error().
			Str(logging.FieldLayer, "adapter").
			Str(logging.FieldAdapter, "eventbus").
			Str("event_id", event.ID).
			Str(logging.FieldEvent, string(event.Type)).
			Msg("event buffer full, event dropped")
		return fmt.Errorf("event buffer full, dropped %s event %s", event.Type, event.ID)
	}
}

// newEvent stamps payload and lifts the repository and reference out of the
// payloads that carry them.
func newEvent(eventType domain.EventType, payload any) domain.Event {
	event := domain.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      payload,
	}
	switch p := payload.(type) {
	case domain.ManifestPushedPayload:
		event.Repository, event.Reference = p.Name, p.Reference
	case domain.ManifestDeletedPayload:
		event.Repository, event.Reference = p.Name, p.Reference
	case domain.ProxyFetchedPayload:
		event.Repository, event.Reference = p.Repository, p.Reference
	case domain.BlobReclaimedPayload:
		event.Reference = p.Digest.String()
	}
	return event
}

// Subscribe adds a handler.
func (bus *InMemory) Subscribe(handler out.EventHandler) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers = append(bus.handlers, handler)
	return nil
}

// Unsubscribe removes a handler added by Subscribe.
func (bus *InMemory) Unsubscribe(handler out.EventHandler) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	for i, h := range bus.handlers {
		if h == handler {
			bus.handlers = append(bus.handlers[:i], bus.handlers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("handler %T not subscribed", handler)
}

// Start launches the delivery worker.
func (bus *InMemory) Start() error {
	bus.log.Info().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "eventbus").
		Int("buffer_size", cap(bus.events)).
		Msg("starting event bus")
	go bus.run()
	return nil
}

// Stop halts delivery. Events still buffered are discarded.
func (bus *InMemory) Stop() error {
	bus.cancel()
	select {
	case <-bus.done:
		return nil
	case <-time.After(publishTimeout):
		return fmt.Errorf("timeout waiting for event bus to stop")
	}
}

func (bus *InMemory) run() {
	defer close(bus.done)
	for {
		select {
		case event := <-bus.events:
			bus.deliver(event)
		case <-bus.ctx.Done():
			return
		}
	}
}

func (bus *InMemory) deliver(event domain.Event) {
	bus.mu.RLock()
	handlers := make([]out.EventHandler, len(bus.handlers))
	copy(handlers, bus.handlers)
	bus.mu.RUnlock()

	for _, h := range handlers {
		if !h.CanHandle(event.Type) {
			continue
		}
		ctx, cancel := context.WithTimeout(bus.ctx, handlerTimeout)
		err := h.Handle(ctx, event)
		cancel()
		if err != nil {
			bus.log.Error().
				Str(logging.FieldLayer, "adapter").
				Str(logging.FieldAdapter, "eventbus").
				Err(err).
				Str("event_id", event.ID).
				Str(logging.FieldEvent, string(event.Type)).
				Str(logging.FieldHandler, fmt.Sprintf("%T", h)).
				Msg("error handling event")
		}
	}

	if bus.metrics != nil {
		bus.metrics.EventsProcessed.WithLabelValues(string(event.Type)).Inc()
	}
}
