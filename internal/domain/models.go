package domain

// Member represents one lottery candidate on the roster
type Member struct {
	Name      string // unique key within a roster
	AvatarRef string // opaque avatar reference, may be empty
	Eligible  bool   // whether the member can be drawn
	Visible   bool   // whether the member matches the active search query

	// PresenceHint is informational only and never affects eligibility or visibility
	PresenceHint *bool
}

// NewMember creates a member with the default flags (eligible and visible)
func NewMember(name, avatarRef string) Member {
	return Member{
		Name:      name,
		AvatarRef: avatarRef,
		Eligible:  true,
		Visible:   true,
	}
}

// Online reports the presence hint, treating a missing hint as offline
func (m Member) Online() bool {
	return m.PresenceHint != nil && *m.PresenceHint
}

// Clone returns a copy that shares no pointers with m
func (m Member) Clone() Member {
	if m.PresenceHint != nil {
		online := *m.PresenceHint
		m.PresenceHint = &online
	}
	return m
}

// RawMember is a participant identity as delivered by a scrape
type RawMember struct {
	Name         string
	AvatarRef    string
	PresenceHint *bool
}

// SelectionPhase is the phase of the selection state machine
type SelectionPhase int

const (
	PhaseIdle SelectionPhase = iota
	PhaseInProgress
	PhaseCompleted
)

func (p SelectionPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInProgress:
		return "in-progress"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// SelectionState is the observable state of the selection engine.
// Winner is only meaningful when Phase is PhaseCompleted.
type SelectionState struct {
	Phase  SelectionPhase
	DrawID string // id of the cycle that produced this state ("" when idle)
	Winner Member
}

// Completed reports whether a winner is available
func (s SelectionState) Completed() bool {
	return s.Phase == PhaseCompleted
}

// InProgress reports whether a draw is pending
func (s SelectionState) InProgress() bool {
	return s.Phase == PhaseInProgress
}
