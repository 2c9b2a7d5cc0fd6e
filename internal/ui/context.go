package ui

import "meetlottery/internal/ui/views"

// modelContext gives input modes read access to the model
type modelContext struct {
	m *Model
}

func (c *modelContext) CurrentIndex() int {
	return c.m.selectedIndex
}

func (c *modelContext) TotalItems() int {
	return len(c.m.roster.VisibleMembers())
}

func (c *modelContext) CurrentMemberName() string {
	return c.m.currentMember()
}

func (c *modelContext) SearchQuery() string {
	return c.m.roster.Query()
}

func (c *modelContext) ThinkingText() string {
	return views.FormatSeconds(c.m.config.ThinkingSeconds)
}

func (c *modelContext) HasEligible() bool {
	return c.m.roster.HasEligible()
}
