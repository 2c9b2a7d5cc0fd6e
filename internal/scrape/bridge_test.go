package scrape

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetlottery/internal/domain"
	"meetlottery/internal/eventbus"
)

type eventLog struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (l *eventLog) record(e eventbus.DomainEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) types() []eventbus.EventType {
	l.mu.Lock()
	defer l.mu.Unlock()
	types := make([]eventbus.EventType, len(l.events))
	for i, e := range l.events {
		types[i] = e.Type()
	}
	return types
}

func (l *eventLog) find(t eventbus.EventType) eventbus.DomainEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.events {
		if e.Type() == t {
			return e
		}
	}
	return nil
}

func watch(bus eventbus.EventBus) *eventLog {
	l := &eventLog{}
	for _, t := range []eventbus.EventType{
		eventbus.EventScrapeStarted,
		eventbus.EventScrapeUnavailable,
		eventbus.EventScrapeCompleted,
	} {
		bus.Subscribe(t, l.record)
	}
	return l
}

func TestBridgeFetchSuccess(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()
	log := watch(bus)

	b := NewBridge(&StaticSource{Names: []string{"A", "B"}, Images: []string{"a.png"}}, bus)

	resp, err := b.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, resp.Names)

	require.Eventually(t, func() bool { return len(log.types()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []eventbus.EventType{eventbus.EventScrapeStarted, eventbus.EventScrapeCompleted}, log.types())

	completed := log.find(eventbus.EventScrapeCompleted).(domain.ScrapeCompletedEvent)
	require.Len(t, completed.Members, 2)
	assert.Equal(t, "a.png", completed.Members[0].AvatarRef)
}

func TestBridgeFailureCollapsesToEmpty(t *testing.T) {
	failures := map[string]Source{
		"error": SourceFunc(func(context.Context) (Response, error) {
			return Response{Names: []string{"ignored"}}, errors.New("tab closed")
		}),
		"empty": &StaticSource{},
		"panic": SourceFunc(func(context.Context) (Response, error) {
			panic("content script missing")
		}),
	}

	for name, src := range failures {
		t.Run(name, func(t *testing.T) {
			bus := eventbus.New()
			defer bus.Close()
			log := watch(bus)

			resp, err := NewBridge(src, bus).Fetch(context.Background())
			require.NoError(t, err)
			assert.True(t, resp.Empty())

			require.Eventually(t, func() bool { return len(log.types()) == 3 }, time.Second, 5*time.Millisecond)
			unavailable := log.find(eventbus.EventScrapeUnavailable).(domain.ScrapeUnavailableEvent)
			assert.ErrorIs(t, unavailable.Err, domain.ErrScrapeUnavailable)
			assert.Equal(t, domain.ErrorIDScrapeUnavailable, domain.ErrorID(unavailable.Err))
		})
	}
}

func TestBridgeAllowsOneRequestAtATime(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	src := SourceFunc(func(context.Context) (Response, error) {
		close(entered)
		<-release
		return Response{Names: []string{"A"}}, nil
	})
	b := NewBridge(src, nil)

	reply, err := b.Request(context.Background())
	require.NoError(t, err)
	<-entered
	assert.True(t, b.InFlight())

	_, err = b.Request(context.Background())
	assert.ErrorIs(t, err, ErrFetchInProgress)
	_, err = b.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrFetchInProgress)

	close(release)
	resp, ok := <-reply
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, resp.Names)

	_, ok = <-reply
	assert.False(t, ok, "reply channel delivers exactly once")

	b.Wait()
	assert.False(t, b.InFlight())
}

func TestBridgeWaitReturnsOnceContextIsCancelled(t *testing.T) {
	entered := make(chan struct{})
	src := SourceFunc(func(ctx context.Context) (Response, error) {
		close(entered)
		<-ctx.Done()
		return Response{}, ctx.Err()
	})
	b := NewBridge(src, nil)

	ctx, cancel := context.WithCancel(context.Background())
	reply, err := b.Request(ctx)
	require.NoError(t, err)
	<-entered

	cancel()
	done := make(chan struct{})
	go func() {
		b.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancel")
	}
	assert.True(t, (<-reply).Empty())
	assert.False(t, b.InFlight())
}

func TestBridgeCancelledContextYieldsEmpty(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := NewBridge(DemoSource(), nil).Fetch(ctx)
	require.NoError(t, err)
	assert.True(t, resp.Empty())
}
