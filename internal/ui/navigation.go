package ui

// navigate moves the cursor over the visible members
func (m *Model) navigate(direction string) {
	maxIndex := len(m.roster.VisibleMembers()) - 1
	if maxIndex < 0 {
		m.selectedIndex = 0
		m.viewportOffset = 0
		return
	}

	pageSize := m.viewportHeight - 2 // Leave some overlap
	if pageSize < 1 {
		pageSize = 1
	}

	switch direction {
	case "up":
		m.selectedIndex--
	case "down":
		m.selectedIndex++
	case "pageup":
		m.selectedIndex -= pageSize
	case "pagedown":
		m.selectedIndex += pageSize
	case "home":
		m.selectedIndex = 0
	case "end":
		m.selectedIndex = maxIndex
	}

	m.clampSelection()
}

// clampSelection keeps the cursor on a visible member and in the viewport
func (m *Model) clampSelection() {
	maxIndex := len(m.roster.VisibleMembers()) - 1
	if m.selectedIndex > maxIndex {
		m.selectedIndex = maxIndex
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
	m.ensureSelectedVisible()
}

// ensureSelectedVisible ensures the selected item is visible in the viewport
func (m *Model) ensureSelectedVisible() {
	if m.viewportHeight <= 0 {
		m.viewportOffset = 0
		return
	}
	if m.selectedIndex < m.viewportOffset {
		m.viewportOffset = m.selectedIndex
	}
	if m.selectedIndex >= m.viewportOffset+m.viewportHeight {
		m.viewportOffset = m.selectedIndex - m.viewportHeight + 1
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
}

// updateViewportHeight sizes the member list to the terminal
func (m *Model) updateViewportHeight() {
	if m.height == 0 {
		// No WindowSizeMsg yet
		return
	}
	// padding, title, input, status and help footer
	reserved := 12
	if len(m.roster.ExcludedMembers()) > 0 {
		reserved += 4
	}
	m.viewportHeight = m.height - reserved
	if m.viewportHeight < 3 {
		m.viewportHeight = 3
	}
	m.ensureSelectedVisible()
}

// currentMember returns the name of the member under the cursor
func (m *Model) currentMember() string {
	visible := m.roster.VisibleMembers()
	if m.selectedIndex >= 0 && m.selectedIndex < len(visible) {
		return visible[m.selectedIndex].Name
	}
	return ""
}
