package ui

import (
	"meetlottery/internal/eventbus"
	"meetlottery/internal/scrape"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// membersFetchedMsg carries the reply of a participant request
type membersFetchedMsg struct {
	resp scrape.Response
}

// clearStatusMsg clears the status line if it still shows message id
type clearStatusMsg struct {
	id int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
