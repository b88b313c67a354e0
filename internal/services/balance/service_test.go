package balance

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tesouraclub/tesoura-go/internal/model"
)

type SplitSuite struct {
	suite.Suite
}

func TestSplitSuite(t *testing.T) {
	suite.Run(t, new(SplitSuite))
}

func assigned(slots []model.LineupSlot) []model.Handle {
	var out []model.Handle
	for _, slot := range slots {
		if slot.Handle != "" {
			out = append(out, slot.Handle)
		}
	}
	return out
}

func skillSum(slots []model.LineupSlot, skills map[model.Handle]int) int {
	sum := 0
	for _, h := range assigned(slots) {
		sum += skills[h.Key()]
	}
	return sum
}

func (s *SplitSuite) TestSplitsEvenSkills() {
	skills := map[model.Handle]int{"alice": 5, "bob": 5, "carol": 5, "dave": 5}
	squadA, squadB := Split([]model.Handle{"alice", "bob", "carol", "dave"}, skills, 2)

	s.Len(assigned(squadA), 2)
	s.Len(assigned(squadB), 2)
	s.Equal(skillSum(squadA, skills), skillSum(squadB, skills))
}

func (s *SplitSuite) TestHeadcountStaysWithinOne() {
	// One star and five journeymen: without the headcount rule the
	// star's squad would take a single player and stop
	skills := map[model.Handle]int{"star": 5, "p1": 1, "p2": 1, "p3": 1, "p4": 1, "p5": 1}
	squadA, squadB := Split([]model.Handle{"star", "p1", "p2", "p3", "p4", "p5"}, skills, 3)

	s.Len(assigned(squadA), 3)
	s.Len(assigned(squadB), 3)
}

func (s *SplitSuite) TestGapBoundedByLargestSkill() {
	skills := map[model.Handle]int{"a": 9, "b": 8, "c": 7, "d": 4, "e": 3, "f": 1}
	squadA, squadB := Split([]model.Handle{"a", "b", "c", "d", "e", "f"}, skills, 3)

	diff := skillSum(squadA, skills) - skillSum(squadB, skills)
	if diff < 0 {
		diff = -diff
	}
	s.LessOrEqual(diff, 9)
}

func (s *SplitSuite) TestDeterministicForSameInput() {
	skills := map[model.Handle]int{"alice": 7, "bob": 7, "carol": 3, "dave": 3}
	admitted := []model.Handle{"dave", "carol", "bob", "alice"}

	a1, b1 := Split(admitted, skills, 2)
	a2, b2 := Split(admitted, skills, 2)
	s.Equal(a1, a2)
	s.Equal(b1, b2)
}

func (s *SplitSuite) TestAdmissionOrderDoesNotMatter() {
	skills := map[model.Handle]int{"alice": 7, "bob": 6, "carol": 3, "dave": 2}

	a1, b1 := Split([]model.Handle{"alice", "bob", "carol", "dave"}, skills, 2)
	a2, b2 := Split([]model.Handle{"dave", "bob", "alice", "carol"}, skills, 2)
	s.Equal(a1, a2)
	s.Equal(b1, b2)
}

func (s *SplitSuite) TestPadsShortSquadsToFullSize() {
	skills := map[model.Handle]int{"alice": 5, "bob": 4, "carol": 3}
	squadA, squadB := Split([]model.Handle{"alice", "bob", "carol"}, skills, 10)

	s.Require().Len(squadA, 10)
	s.Require().Len(squadB, 10)
	for i := range squadA {
		s.Equal(i+1, squadA[i].Slot)
		s.Equal(i+1, squadB[i].Slot)
	}
	s.Len(append(assigned(squadA), assigned(squadB)...), 3)
}

func (s *SplitSuite) TestEmptyAdmission() {
	squadA, squadB := Split(nil, nil, 10)

	s.Len(squadA, 10)
	s.Len(squadB, 10)
	s.Empty(assigned(squadA))
	s.Empty(assigned(squadB))
}

func (s *SplitSuite) TestNoPlayerAssignedTwice() {
	skills := map[model.Handle]int{}
	admitted := make([]model.Handle, 0, 20)
	for _, h := range []model.Handle{
		"a", "b", "c", "d", "e", "f", "g", "h", "i", "j",
		"k", "l", "m", "n", "o", "p", "q", "r", "s", "t",
	} {
		admitted = append(admitted, h)
		skills[h] = len(admitted) % 7
	}

	squadA, squadB := Split(admitted, skills, 10)
	seen := map[model.Handle]bool{}
	for _, h := range append(assigned(squadA), assigned(squadB)...) {
		s.False(seen[h], "player %s assigned twice", h)
		seen[h] = true
	}
	s.Len(seen, 20)
}
