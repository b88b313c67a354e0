package model

import (
	"strings"
	"time"
	"unicode"
)

// Handle is the unique nickname a player is known by at the club.
// Handles compare case-insensitively; Key gives the canonical form.
type Handle string

const maxHandleLength = 32

// Key returns the canonical lookup form of the handle
func (h Handle) Key() Handle {
	return Handle(strings.ToLower(strings.TrimSpace(string(h))))
}

// ValidateHandle checks that a handle is usable as an identity key
func ValidateHandle(h Handle) error {
	trimmed := strings.TrimSpace(string(h))
	if trimmed == "" || len(trimmed) > maxHandleLength {
		return ErrInvalidHandle
	}
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			return ErrInvalidHandle
		}
	}
	return nil
}

// Player is a club member as known to the roster.
// CreatedAt doubles as the recency tiebreak in second-half selection:
// newer members are less entrenched and lose exact ties.
type Player struct {
	Handle      Handle
	DisplayName string
	SkillScore  int
	Active      bool
	CreatedAt   time.Time
}
