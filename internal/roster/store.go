package roster

import (
	"log"
	"strings"
	"sync"

	"meetlottery/internal/domain"
	"meetlottery/internal/eventbus"
)

// Store holds the ordered lottery roster and applies user mutations.
// Every mutation runs under the store lock and is all-or-nothing.
type Store struct {
	mu      sync.RWMutex
	members []domain.Member
	names   map[string]struct{}
	query   string
	terms   []string
	bus     eventbus.EventBus
}

// NewStore creates an empty roster. bus may be nil.
func NewStore(bus eventbus.EventBus) *Store {
	return &Store{
		names: make(map[string]struct{}),
		bus:   bus,
	}
}

// Load replaces the whole roster with one eligible member per raw record, in
// input order. Records with an empty name are skipped and a name seen earlier
// in the same input wins over later duplicates. Visibility follows the active
// search query.
func (s *Store) Load(raw []domain.RawMember) int {
	members := make([]domain.Member, 0, len(raw))
	names := make(map[string]struct{}, len(raw))
	skipped := 0
	for _, r := range raw {
		if r.Name == "" {
			skipped++
			continue
		}
		if _, exists := names[r.Name]; exists {
			skipped++
			continue
		}
		names[r.Name] = struct{}{}

		m := domain.NewMember(r.Name, r.AvatarRef)
		if r.PresenceHint != nil {
			online := *r.PresenceHint
			m.PresenceHint = &online
		}
		members = append(members, m)
	}

	s.mu.Lock()
	for i := range members {
		members[i].Visible = MatchesTerms(members[i].Name, s.terms)
	}
	s.members = members
	s.names = names
	s.mu.Unlock()

	if skipped > 0 {
		log.Printf("Roster: skipped %d empty or duplicate records on load", skipped)
	}
	log.Printf("Roster: loaded %d members", len(members))
	s.publish(domain.RosterLoadedEvent{Count: len(members)})
	return len(members)
}

// ToggleEligibility flips the eligible flag of the named member.
// Unknown names are ignored; it reports whether a member was changed.
func (s *Store) ToggleEligibility(name string) bool {
	s.mu.Lock()
	i := s.indexOf(name)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.members[i].Eligible = !s.members[i].Eligible
	eligible := s.members[i].Eligible
	s.mu.Unlock()

	s.publish(domain.EligibilityToggledEvent{Name: name, Eligible: eligible})
	return true
}

// AddMember prepends a manually entered member. The name is stored exactly
// as given; duplicates are detected by exact, case-sensitive comparison.
func (s *Store) AddMember(name string) error {
	if strings.TrimSpace(name) == "" {
		return &domain.EmptyInputError{}
	}

	s.mu.Lock()
	if _, exists := s.names[name]; exists {
		s.mu.Unlock()
		return &domain.DuplicateMemberError{Name: name}
	}
	members := make([]domain.Member, 0, len(s.members)+1)
	members = append(members, domain.NewMember(name, ""))
	s.members = append(members, s.members...)
	s.names[name] = struct{}{}
	s.mu.Unlock()

	log.Printf("Roster: added member %q", name)
	s.publish(domain.MemberAddedEvent{Name: name})
	return nil
}

// ApplySearch recomputes visibility of every member for query
func (s *Store) ApplySearch(query string) int {
	terms := ParseQuery(query)

	s.mu.Lock()
	s.query = query
	s.terms = terms
	visible := 0
	for i := range s.members {
		s.members[i].Visible = MatchesTerms(s.members[i].Name, terms)
		if s.members[i].Visible {
			visible++
		}
	}
	s.mu.Unlock()

	s.publish(domain.SearchAppliedEvent{Query: query, Visible: visible})
	return visible
}

// Query returns the raw text of the last applied search
func (s *Store) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Members returns a copy of the whole roster in order
func (s *Store) Members() []domain.Member {
	return s.project(func(domain.Member) bool { return true })
}

// EligibleMembers returns the members that can currently be drawn
func (s *Store) EligibleMembers() []domain.Member {
	return s.project(func(m domain.Member) bool { return m.Eligible })
}

// VisibleMembers returns the members matching the active search
func (s *Store) VisibleMembers() []domain.Member {
	return s.project(func(m domain.Member) bool { return m.Visible })
}

// ExcludedMembers returns the members excluded from the lottery
func (s *Store) ExcludedMembers() []domain.Member {
	return s.project(func(m domain.Member) bool { return !m.Eligible })
}

// Get returns a copy of the named member
func (s *Store) Get(name string) (domain.Member, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(name); i >= 0 {
		return s.members[i].Clone(), true
	}
	return domain.Member{}, false
}

// Len returns the roster size
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

// HasEligible reports whether at least one member can be drawn
func (s *Store) HasEligible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.Eligible {
			return true
		}
	}
	return false
}

func (s *Store) project(keep func(domain.Member) bool) []domain.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Member, 0, len(s.members))
	for _, m := range s.members {
		if keep(m) {
			result = append(result, m.Clone())
		}
	}
	return result
}

// indexOf must be called with the lock held
func (s *Store) indexOf(name string) int {
	for i, m := range s.members {
		if m.Name == name {
			return i
		}
	}
	return -1
}

func (s *Store) publish(event domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
