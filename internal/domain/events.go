package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventScrapeStarted      EventType = "ScrapeStarted"
	EventScrapeCompleted    EventType = "ScrapeCompleted"
	EventScrapeUnavailable  EventType = "ScrapeUnavailable"
	EventRosterLoaded       EventType = "RosterLoaded"
	EventMemberAdded        EventType = "MemberAdded"
	EventEligibilityToggled EventType = "EligibilityToggled"
	EventSearchApplied      EventType = "SearchApplied"
	EventSelectionStarted   EventType = "SelectionStarted"
	EventSelectionCompleted EventType = "SelectionCompleted"
	EventSelectionCancelled EventType = "SelectionCancelled"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventConfigChanged      EventType = "ConfigChanged"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ScrapeStartedEvent is emitted when a participant request is sent to the source
type ScrapeStartedEvent struct {
	Source string
}

func (e ScrapeStartedEvent) Type() EventType { return EventScrapeStarted }

// ScrapeCompletedEvent is emitted with the (possibly empty) scrape result
type ScrapeCompletedEvent struct {
	Source   string
	Members  []RawMember
	Duration time.Duration
}

func (e ScrapeCompletedEvent) Type() EventType { return EventScrapeCompleted }

// ScrapeUnavailableEvent is emitted for diagnostics when a scrape failed.
// Consumers must still treat the outcome as an empty result.
type ScrapeUnavailableEvent struct {
	Err error
}

func (e ScrapeUnavailableEvent) Type() EventType { return EventScrapeUnavailable }

// RosterLoadedEvent is emitted after a full roster replace
type RosterLoadedEvent struct {
	Count int
}

func (e RosterLoadedEvent) Type() EventType { return EventRosterLoaded }

// MemberAddedEvent is emitted when a member is added manually
type MemberAddedEvent struct {
	Name string
}

func (e MemberAddedEvent) Type() EventType { return EventMemberAdded }

// EligibilityToggledEvent is emitted when a member is included or excluded
type EligibilityToggledEvent struct {
	Name     string
	Eligible bool
}

func (e EligibilityToggledEvent) Type() EventType { return EventEligibilityToggled }

// SearchAppliedEvent is emitted after visibility was recomputed for a query
type SearchAppliedEvent struct {
	Query   string
	Visible int
}

func (e SearchAppliedEvent) Type() EventType { return EventSearchApplied }

// SelectionStartedEvent is emitted when a draw enters the thinking phase
type SelectionStartedEvent struct {
	DrawID     string
	Candidates int
	Thinking   time.Duration
}

func (e SelectionStartedEvent) Type() EventType { return EventSelectionStarted }

// SelectionCompletedEvent is emitted when the thinking delay elapsed
type SelectionCompletedEvent struct {
	DrawID string
	Winner Member
}

func (e SelectionCompletedEvent) Type() EventType { return EventSelectionCompleted }

// SelectionCancelledEvent is emitted when a pending draw was cancelled
type SelectionCancelledEvent struct {
	DrawID string
}

func (e SelectionCancelledEvent) Type() EventType { return EventSelectionCancelled }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when a setting changed and needs to be saved
type ConfigChangedEvent struct {
	ThinkingSeconds float64
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
