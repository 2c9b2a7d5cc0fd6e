package domain

import (
	"errors"
	"fmt"
)

// Stable error identifiers used by the presentation layer to key messages
const (
	ErrorIDEmptyInput        = "empty-additional-form"
	ErrorIDDuplicateMember   = "exist-additional-member-error"
	ErrorIDScrapeUnavailable = "scrape-unavailable"
)

var (
	// ErrEmptyInput matches any EmptyInputError via errors.Is
	ErrEmptyInput = errors.New("member name is empty")
	// ErrDuplicateMember matches any DuplicateMemberError via errors.Is
	ErrDuplicateMember = errors.New("member already exists")
	// ErrScrapeUnavailable matches any ScrapeUnavailableError via errors.Is
	ErrScrapeUnavailable = errors.New("participant scrape unavailable")
)

// IdentifiedError is an error carrying a stable identifier
type IdentifiedError interface {
	error
	ID() string
}

// EmptyInputError is returned when a blank name is added to the roster
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string        { return ErrEmptyInput.Error() }
func (e *EmptyInputError) ID() string           { return ErrorIDEmptyInput }
func (e *EmptyInputError) Is(target error) bool { return target == ErrEmptyInput }

// DuplicateMemberError is returned when a name already present is added again
type DuplicateMemberError struct {
	Name string
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("%s: %q", ErrDuplicateMember.Error(), e.Name)
}
func (e *DuplicateMemberError) ID() string           { return ErrorIDDuplicateMember }
func (e *DuplicateMemberError) Is(target error) bool { return target == ErrDuplicateMember }

// ScrapeUnavailableError describes why a scrape produced nothing.
// It never reaches the roster; the bridge collapses it into an empty result.
type ScrapeUnavailableError struct {
	Source string
	Err    error
}

func (e *ScrapeUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s (%s)", ErrScrapeUnavailable.Error(), e.Source)
	}
	return fmt.Sprintf("%s (%s): %v", ErrScrapeUnavailable.Error(), e.Source, e.Err)
}
func (e *ScrapeUnavailableError) ID() string           { return ErrorIDScrapeUnavailable }
func (e *ScrapeUnavailableError) Unwrap() error        { return e.Err }
func (e *ScrapeUnavailableError) Is(target error) bool { return target == ErrScrapeUnavailable }

// ErrorID returns the stable identifier of err, or "" if it has none
func ErrorID(err error) string {
	var identified IdentifiedError
	if errors.As(err, &identified) {
		return identified.ID()
	}
	return ""
}
