package scrape

import "meetlottery/internal/domain"

// RequestType identifies the participant request understood by every source
const RequestType = "GET_MEMBERS"

// Request is the message sent to a participant source
type Request struct {
	Type string `json:"type"`
}

// NewRequest returns the GET_MEMBERS request
func NewRequest() Request {
	return Request{Type: RequestType}
}

// Response is a participant reply. Names and Images are parallel sequences;
// Online is optional and may be shorter than Names.
type Response struct {
	Names  []string `json:"names"`
	Images []string `json:"images"`
	Online []bool   `json:"online,omitempty"`
}

// Empty reports whether the response carries no participants
func (r Response) Empty() bool {
	return len(r.Names) == 0
}

// Members pairs names with avatars and presence hints by index.
// Missing avatars become empty and missing presence entries become nil.
func (r Response) Members() []domain.RawMember {
	members := make([]domain.RawMember, len(r.Names))
	for i, name := range r.Names {
		members[i].Name = name
		if i < len(r.Images) {
			members[i].AvatarRef = r.Images[i]
		}
		if i < len(r.Online) {
			online := r.Online[i]
			members[i].PresenceHint = &online
		}
	}
	return members
}
