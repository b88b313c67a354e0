package selection

import (
	"sort"
	"time"

	"github.com/tesouraclub/tesoura-go/internal/model"
)

// DefaultCapacity is how many players a half admits (two squads of ten)
const DefaultCapacity = 20

// Candidate is one eligible player with every signal admission
// considers. The selector is a pure function over candidates so the
// collaborators feeding it can be faked trivially in tests.
type Candidate struct {
	Handle model.Handle
	Seq    int // arrival order on the day

	LeftEarly                bool
	AttendedPrevious         bool
	PlayedBothHalvesPrevious bool
	MissedCount              int
	Overdue                  bool
	InFirstHalf              bool

	// CreatedAt is the roster join time; older members win exact ties
	CreatedAt time.Time
}

// Select admits up to capacity candidates for the given half.
// When the eligible count fits the capacity, selection is the
// identity. The returned slice preserves the selection ranking.
func Select(half model.Half, candidates []Candidate, capacity int, policy Policy) ([]Candidate, error) {
	switch half {
	case model.HalfFirst:
		return selectFirstHalf(candidates, capacity), nil
	case model.HalfSecond:
		return selectSecondHalf(candidates, capacity, policy), nil
	}
	return nil, model.ErrInvalidHalf
}

// rankRule is one tagged criterion in the first-half retention order.
// cmp returns negative when a should be retained ahead of b. Rules
// apply left to right; later rules only break earlier ties.
type rankRule struct {
	name string
	cmp  func(a, b Candidate) int
}

func keepIf(pick func(Candidate) bool) func(a, b Candidate) int {
	return func(a, b Candidate) int {
		av, bv := pick(a), pick(b)
		if av == bv {
			return 0
		}
		if av {
			return -1
		}
		return 1
	}
}

func keepLower(pick func(Candidate) int) func(a, b Candidate) int {
	return func(a, b Candidate) int {
		return pick(a) - pick(b)
	}
}

// First-half retention order. Players failing an earlier rule are cut
// before anyone failing only a later one; arrival sequence is the
// final deterministic tiebreak, earlier arrival winning retention.
var firstHalfRules = []rankRule{
	{name: "attended-previous", cmp: keepIf(func(c Candidate) bool { return c.AttendedPrevious })},
	{name: "payment-current", cmp: keepIf(func(c Candidate) bool { return !c.Overdue })},
	{name: "fewer-misses", cmp: keepLower(func(c Candidate) int { return c.MissedCount })},
	{name: "earlier-arrival", cmp: keepLower(func(c Candidate) int { return c.Seq })},
}

func selectFirstHalf(candidates []Candidate, capacity int) []Candidate {
	if len(candidates) <= capacity {
		return append([]Candidate(nil), candidates...)
	}

	ranked := append([]Candidate(nil), candidates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		for _, rule := range firstHalfRules {
			if v := rule.cmp(ranked[i], ranked[j]); v != 0 {
				return v < 0
			}
		}
		return false
	})
	return ranked[:capacity]
}

func selectSecondHalf(candidates []Candidate, capacity int, policy Policy) []Candidate {
	ranked := append([]Candidate(nil), candidates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := policy.Score(ranked[i]), policy.Score(ranked[j])
		if si != sj {
			return si > sj
		}
		// Exact score tie: longer-tenured member wins, then handle
		if !ranked[i].CreatedAt.Equal(ranked[j].CreatedAt) {
			return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
		}
		return ranked[i].Handle.Key() < ranked[j].Handle.Key()
	})
	if len(ranked) > capacity {
		ranked = ranked[:capacity]
	}
	return ranked
}
