package scrape

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"meetlottery/internal/domain"
	"meetlottery/internal/eventbus"
)

// ErrFetchInProgress is returned when a request is made while another one
// has not returned yet
var ErrFetchInProgress = errors.New("participant request already in progress")

// Bridge is the single entry point for participant requests. It allows one
// outstanding request at a time and reports every failure as an empty
// response.
type Bridge struct {
	source Source
	bus    eventbus.EventBus

	mu       sync.Mutex
	inFlight bool
	wg       sync.WaitGroup
}

// NewBridge creates a bridge over source. bus may be nil.
func NewBridge(source Source, bus eventbus.EventBus) *Bridge {
	return &Bridge{source: source, bus: bus}
}

// Fetch requests the participant list and blocks until the source answers.
// The only error is ErrFetchInProgress; source failures yield an empty
// Response.
func (b *Bridge) Fetch(ctx context.Context) (Response, error) {
	if !b.acquire() {
		return Response{}, ErrFetchInProgress
	}
	defer b.release()
	return b.fetch(ctx), nil
}

// Request starts a fetch in the background. The returned channel receives
// exactly one Response and is then closed.
func (b *Bridge) Request(ctx context.Context) (<-chan Response, error) {
	if !b.acquire() {
		return nil, ErrFetchInProgress
	}

	reply := make(chan Response, 1)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer close(reply)
		defer b.release()
		reply <- b.fetch(ctx)
	}()
	return reply, nil
}

// InFlight reports whether a request is outstanding
func (b *Bridge) InFlight() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inFlight
}

// Wait blocks until background requests have returned
func (b *Bridge) Wait() {
	b.wg.Wait()
}

func (b *Bridge) acquire() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.inFlight {
		return false
	}
	b.inFlight = true
	return true
}

func (b *Bridge) release() {
	b.mu.Lock()
	b.inFlight = false
	b.mu.Unlock()
}

func (b *Bridge) fetch(ctx context.Context) Response {
	name := b.source.Name()
	b.publish(domain.ScrapeStartedEvent{Source: name})

	start := time.Now()
	resp, err := b.safeFetch(ctx)
	elapsed := time.Since(start)

	if err == nil && resp.Empty() {
		err = errors.New("no participants found")
	}
	if err != nil {
		unavailable := &domain.ScrapeUnavailableError{Source: name, Err: err}
		log.Printf("Scrape: %v", unavailable)
		b.publish(domain.ScrapeUnavailableEvent{Err: unavailable})
		resp = Response{}
	} else {
		log.Printf("Scrape: received %d participants from %s in %s", len(resp.Names), name, elapsed)
	}

	b.publish(domain.ScrapeCompletedEvent{Source: name, Members: resp.Members(), Duration: elapsed})
	return resp
}

// safeFetch calls the source, turning a panic into an error
func (b *Bridge) safeFetch(ctx context.Context) (resp Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = Response{}
			err = fmt.Errorf("source panicked: %v", r)
		}
	}()
	return b.source.Fetch(ctx)
}

func (b *Bridge) publish(event domain.DomainEvent) {
	if b.bus != nil {
		b.bus.Publish(event)
	}
}
