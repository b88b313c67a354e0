package model

import "time"

// Squad identifies one of the two balanced sub-teams within a half
type Squad string

const (
	SquadA Squad = "A"
	SquadB Squad = "B"
)

// LineupSlot is one position in a squad. An empty Handle marks an
// unfilled slot; all slots are always written so readers never have
// to guess the squad capacity.
type LineupSlot struct {
	Slot   int
	Handle Handle
}

// Filled reports whether the slot has a player assigned
func (s LineupSlot) Filled() bool {
	return s.Handle != ""
}

// Lineup is the computed pair of squads for one (date, half).
// It is replaced wholesale on every computation, never patched.
type Lineup struct {
	Date       MatchDate
	Half       Half
	SquadSize  int
	SquadA     []LineupSlot
	SquadB     []LineupSlot
	ComputedAt time.Time
}

// Contains reports whether the handle is assigned to either squad
func (l *Lineup) Contains(handle Handle) bool {
	key := handle.Key()
	for _, slot := range l.SquadA {
		if slot.Filled() && slot.Handle.Key() == key {
			return true
		}
	}
	for _, slot := range l.SquadB {
		if slot.Filled() && slot.Handle.Key() == key {
			return true
		}
	}
	return false
}

// Assigned returns every handle with a filled slot, squad A first
func (l *Lineup) Assigned() []Handle {
	var handles []Handle
	for _, slot := range l.SquadA {
		if slot.Filled() {
			handles = append(handles, slot.Handle)
		}
	}
	for _, slot := range l.SquadB {
		if slot.Filled() {
			handles = append(handles, slot.Handle)
		}
	}
	return handles
}
