package lottery

import (
	"errors"
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"meetlottery/internal/domain"
	"meetlottery/internal/eventbus"
)

// ErrNoCandidates is returned when a draw is started without eligible members
var ErrNoCandidates = errors.New("no eligible members to draw from")

// EligibleLister provides the members a draw picks from
type EligibleLister interface {
	EligibleMembers() []domain.Member
}

// Draw describes a cycle that has just entered the thinking phase
type Draw struct {
	ID         string
	Candidates int
	Thinking   time.Duration
}

// Option configures an Engine
type Option func(*Engine)

// WithClock sets the clock used to schedule completions
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithRandom sets the random source used to pick winners
func WithRandom(r Random) Option {
	return func(e *Engine) { e.random = r }
}

// cycle is one pending draw. Its winner is fixed when the cycle starts.
type cycle struct {
	id     string
	winner domain.Member
	timer  Timer
}

// Engine runs single-winner draws with a thinking delay.
// At most one cycle is pending at any time.
type Engine struct {
	mu      sync.Mutex
	state   domain.SelectionState
	before  domain.SelectionState // state to restore when the pending cycle is cancelled
	pending *cycle
	draws   int

	clock  Clock
	random Random
	bus    eventbus.EventBus
}

// NewEngine creates an idle engine. bus may be nil.
func NewEngine(bus eventbus.EventBus, opts ...Option) *Engine {
	e := &Engine{
		state:  domain.SelectionState{Phase: domain.PhaseIdle},
		clock:  RealClock(),
		random: newDefaultRandom(),
		bus:    bus,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ThinkingDuration converts a user-supplied number of seconds into a delay.
// Negative, NaN and infinite values become zero.
func ThinkingDuration(seconds float64) time.Duration {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds * float64(time.Second))
}

// StartFromRoster starts a draw over the roster's eligible members
func (e *Engine) StartFromRoster(r EligibleLister, seconds float64) (Draw, error) {
	return e.Start(r.EligibleMembers(), ThinkingDuration(seconds))
}

// Start picks a winner uniformly among the eligible candidates and enters
// the thinking phase. The winner is published once thinking has elapsed.
// A pending cycle is superseded and will never complete.
func (e *Engine) Start(candidates []domain.Member, thinking time.Duration) (Draw, error) {
	eligible := make([]domain.Member, 0, len(candidates))
	for _, m := range candidates {
		if m.Eligible {
			eligible = append(eligible, m)
		}
	}
	if len(eligible) == 0 {
		return Draw{}, ErrNoCandidates
	}
	if thinking < 0 {
		thinking = 0
	}

	e.mu.Lock()
	winner := eligible[pickIndex(e.random.Float64(), len(eligible))].Clone()

	var superseded string
	if e.pending != nil {
		e.pending.timer.Stop()
		superseded = e.pending.id
	} else {
		e.before = e.state
	}

	c := &cycle{id: uuid.NewString(), winner: winner}
	e.pending = c
	e.state = domain.SelectionState{Phase: domain.PhaseInProgress, DrawID: c.id}
	c.timer = e.clock.AfterFunc(thinking, func() { e.complete(c) })
	e.mu.Unlock()

	if superseded != "" {
		log.Printf("Lottery: draw %s superseded by %s", superseded, c.id)
		e.publish(domain.SelectionCancelledEvent{DrawID: superseded})
	}
	log.Printf("Lottery: draw %s started with %d candidates, thinking %s", c.id, len(eligible), thinking)
	e.publish(domain.SelectionStartedEvent{DrawID: c.id, Candidates: len(eligible), Thinking: thinking})

	return Draw{ID: c.id, Candidates: len(eligible), Thinking: thinking}, nil
}

func (e *Engine) complete(c *cycle) {
	e.mu.Lock()
	if e.pending != c {
		// cancelled or superseded after the timer fired
		e.mu.Unlock()
		return
	}
	e.pending = nil
	e.state = domain.SelectionState{Phase: domain.PhaseCompleted, DrawID: c.id, Winner: c.winner}
	e.draws++
	e.mu.Unlock()

	log.Printf("Lottery: draw %s completed, winner %q", c.id, c.winner.Name)
	e.publish(domain.SelectionCompletedEvent{DrawID: c.id, Winner: c.winner.Clone()})
}

// CancelPending abandons the pending cycle and restores the state from
// before it started. It reports whether a cycle was pending.
func (e *Engine) CancelPending() bool {
	e.mu.Lock()
	c := e.pending
	if c == nil {
		e.mu.Unlock()
		return false
	}
	c.timer.Stop()
	e.pending = nil
	e.state = e.before
	e.mu.Unlock()

	log.Printf("Lottery: draw %s cancelled", c.id)
	e.publish(domain.SelectionCancelledEvent{DrawID: c.id})
	return true
}

// State returns a copy of the current selection state
func (e *Engine) State() domain.SelectionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.state
	s.Winner = s.Winner.Clone()
	return s
}

// Draws returns the number of completed cycles
func (e *Engine) Draws() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draws
}

func (e *Engine) publish(event domain.DomainEvent) {
	if e.bus != nil {
		e.bus.Publish(event)
	}
}
