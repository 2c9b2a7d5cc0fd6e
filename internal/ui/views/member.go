package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"meetlottery/internal/domain"
	"meetlottery/internal/roster"
)

// MemberRenderer renders roster rows
type MemberRenderer struct {
	styles       *Styles
	showPresence bool
	showAvatars  bool
}

// NewMemberRenderer creates a new member renderer
func NewMemberRenderer(styles *Styles, showPresence, showAvatars bool) *MemberRenderer {
	return &MemberRenderer{
		styles:       styles,
		showPresence: showPresence,
		showAvatars:  showAvatars,
	}
}

// RenderMember renders one roster row
func (mr *MemberRenderer) RenderMember(m domain.Member, selected bool, terms []string, width int) string {
	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	check := "[x]"
	if !m.Eligible {
		check = "[ ]"
	}

	name := mr.highlight(m.Name, terms)
	if !m.Eligible {
		name = mr.styles.Excluded.Render(m.Name)
	}

	presence := ""
	if mr.showPresence && m.PresenceHint != nil {
		if m.Online() {
			presence = " " + mr.styles.Online.Render("●")
		} else {
			presence = " " + mr.styles.Offline.Render("○")
		}
	}

	line := fmt.Sprintf("%s%s %s%s", cursor, check, name, presence)

	if mr.showAvatars && m.AvatarRef != "" {
		avatar := mr.styles.Dim.Render(m.AvatarRef)
		if width <= 0 || lipgloss.Width(line)+2+lipgloss.Width(avatar) <= width {
			line += "  " + avatar
		}
	}

	if selected {
		return mr.styles.SelectionBg.Render(line)
	}
	return line
}

// highlight marks the first occurrence of any search term in name
func (mr *MemberRenderer) highlight(name string, terms []string) string {
	for _, term := range terms {
		if i := strings.Index(name, term); i >= 0 {
			return name[:i] + mr.styles.Highlight.Render(term) + name[i+len(term):]
		}
	}
	return name
}

// RenderExcluded renders the excluded members as a row of badges
func (mr *MemberRenderer) RenderExcluded(names []string, width int) string {
	if len(names) == 0 {
		return ""
	}

	var lines []string
	current := ""
	for _, name := range names {
		badge := mr.styles.Badge.Render(name)
		switch {
		case current == "":
			current = badge
		case width > 0 && lipgloss.Width(current)+1+lipgloss.Width(badge) > width:
			lines = append(lines, current)
			current = badge
		default:
			current += " " + badge
		}
	}
	lines = append(lines, current)
	return strings.Join(lines, "\n")
}

// searchTerms splits the query the same way the roster does
func searchTerms(query string) []string {
	return roster.ParseQuery(query)
}
