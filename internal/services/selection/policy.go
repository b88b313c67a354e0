package selection

// Policy holds the second-half priority weights. The relative order
// of the factors is the contract (rotation beats everything, then
// leaving early, absence, double duty, payment standing, chronic
// misses); the exact magnitudes are tunable.
type Policy struct {
	NotInFirstHalf     int // bonus for players benched in the first half
	LeftEarly          int // penalty
	AbsentPrevious     int // penalty
	PlayedBothPrevious int // penalty
	Overdue            int // penalty
	PerMiss            int // penalty per missed lookback session
}

// DefaultPolicy returns the club's standard weights
func DefaultPolicy() Policy {
	return Policy{
		NotInFirstHalf:     1000,
		LeftEarly:          900,
		AbsentPrevious:     500,
		PlayedBothPrevious: 350,
		Overdue:            250,
		PerMiss:            20,
	}
}

// Score computes the second-half priority for a candidate;
// higher means more likely to play
func (p Policy) Score(c Candidate) int {
	score := 0
	if !c.InFirstHalf {
		score += p.NotInFirstHalf
	}
	if c.LeftEarly {
		score -= p.LeftEarly
	}
	if !c.AttendedPrevious {
		score -= p.AbsentPrevious
	}
	if c.PlayedBothHalvesPrevious {
		score -= p.PlayedBothPrevious
	}
	if c.Overdue {
		score -= p.Overdue
	}
	score -= p.PerMiss * c.MissedCount
	return score
}
