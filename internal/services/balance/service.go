package balance

import (
	"sort"

	"github.com/tesouraclub/tesoura-go/internal/model"
)

// DefaultSquadSize is the standard number of slots per squad
const DefaultSquadSize = 10

// Split partitions admitted players into two squads of at most
// squadSize slots each, minimizing the skill-sum gap greedily:
// players are taken in skill order (handle breaking ties) and each
// goes to the squad with the lower running sum, with headcounts held
// within one of each other throughout. Once a squad fills,
// the other takes the remainder; if both are full, surplus players
// are left unassigned. Both squads are padded to exactly squadSize
// slots, empty handles marking the unfilled ones.
//
// The greedy pass does not guarantee the global minimum gap, but it
// is deterministic, O(n log n), and bounded by the largest single
// skill score.
func Split(admitted []model.Handle, skills map[model.Handle]int, squadSize int) (squadA, squadB []model.LineupSlot) {
	type entry struct {
		handle model.Handle
		skill  int
	}
	entries := make([]entry, 0, len(admitted))
	for _, handle := range admitted {
		entries = append(entries, entry{handle: handle, skill: skills[handle.Key()]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].skill != entries[j].skill {
			return entries[i].skill > entries[j].skill
		}
		return entries[i].handle.Key() < entries[j].handle.Key()
	})

	var a, b []model.Handle
	sumA, sumB := 0, 0
	for _, e := range entries {
		// A squad may take the next player only while it has room and
		// is not already ahead on headcount; that keeps the sizes
		// within one of each other at every step.
		canA := len(a) < squadSize && len(a) <= len(b)
		canB := len(b) < squadSize && len(b) <= len(a)

		switch {
		case !canA && !canB:
			// Both full; cannot happen while capacity = 2 * squadSize
		case !canA:
			b = append(b, e.handle)
			sumB += e.skill
		case !canB:
			a = append(a, e.handle)
			sumA += e.skill
		case sumB < sumA:
			b = append(b, e.handle)
			sumB += e.skill
		default:
			a = append(a, e.handle)
			sumA += e.skill
		}
	}

	return pad(a, squadSize), pad(b, squadSize)
}

// pad fills a squad out to exactly size slots
func pad(handles []model.Handle, size int) []model.LineupSlot {
	slots := make([]model.LineupSlot, size)
	for i := range slots {
		slots[i].Slot = i + 1
		if i < len(handles) {
			slots[i].Handle = handles[i]
		}
	}
	return slots
}
