package response

import (
	"encoding/json"
	"time"

	"github.com/tesouraclub/tesoura-go/internal/model"
)

// Player represents a roster entry in API responses
type Player struct {
	Handle      string    `json:"handle"`
	DisplayName string    `json:"display_name"`
	SkillScore  int       `json:"skill_score"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		Handle:      string(p.Handle),
		DisplayName: p.DisplayName,
		SkillScore:  p.SkillScore,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}

// PlayersFromModel converts a list of players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// CheckIn represents an attendance record
type CheckIn struct {
	Handle    string `json:"handle"`
	Seq       int    `json:"seq"`
	ArrivedAt string `json:"arrived_at"`
	Note      string `json:"note,omitempty"`
	OptedOut  bool   `json:"opted_out"`
	LeftEarly bool   `json:"left_early"`
}

// CheckInFromModel converts a model.AttendanceRecord
func CheckInFromModel(r model.AttendanceRecord) CheckIn {
	return CheckIn{
		Handle:    string(r.Handle),
		Seq:       r.Seq,
		ArrivedAt: r.ArrivedAt,
		Note:      r.Note,
		OptedOut:  r.OptedOut,
		LeftEarly: r.LeftEarly,
	}
}

// Attendance represents a date's full check-in list
type Attendance struct {
	Date     string    `json:"date"`
	CheckIns []CheckIn `json:"check_ins"`
}

// AttendanceFromRecords builds an Attendance response
func AttendanceFromRecords(date model.MatchDate, records []model.AttendanceRecord) Attendance {
	checkIns := make([]CheckIn, len(records))
	for i, r := range records {
		checkIns[i] = CheckInFromModel(r)
	}
	return Attendance{
		Date:     string(date),
		CheckIns: checkIns,
	}
}

// LineupSlot represents one numbered squad slot; empty handle means
// the slot is unfilled
type LineupSlot struct {
	Slot   int    `json:"slot"`
	Handle string `json:"handle,omitempty"`
}

// Lineup represents a stored lineup in API responses
type Lineup struct {
	Date       string       `json:"date"`
	Half       string       `json:"half"`
	SquadSize  int          `json:"squad_size"`
	SquadA     []LineupSlot `json:"squad_a"`
	SquadB     []LineupSlot `json:"squad_b"`
	ComputedAt time.Time    `json:"computed_at"`
}

// LineupFromModel converts a model.Lineup
func LineupFromModel(l *model.Lineup) Lineup {
	return Lineup{
		Date:       string(l.Date),
		Half:       string(l.Half),
		SquadSize:  l.SquadSize,
		SquadA:     slotsFromModel(l.SquadA),
		SquadB:     slotsFromModel(l.SquadB),
		ComputedAt: l.ComputedAt,
	}
}

func slotsFromModel(slots []model.LineupSlot) []LineupSlot {
	out := make([]LineupSlot, len(slots))
	for i, s := range slots {
		out[i] = LineupSlot{Slot: s.Slot, Handle: string(s.Handle)}
	}
	return out
}

// Payment represents a recorded monthly payment
type Payment struct {
	Period string    `json:"period"`
	Handle string    `json:"handle"`
	Amount int       `json:"amount"`
	PaidAt time.Time `json:"paid_at"`
}

// PaymentFromModel converts a model.PaymentRecord
func PaymentFromModel(p *model.PaymentRecord) Payment {
	return Payment{
		Period: string(p.Period),
		Handle: string(p.Handle),
		Amount: p.Amount,
		PaidAt: p.PaidAt,
	}
}

// PaymentsFromModel converts a list of payment records
func PaymentsFromModel(payments []*model.PaymentRecord) []Payment {
	out := make([]Payment, len(payments))
	for i, p := range payments {
		out[i] = PaymentFromModel(p)
	}
	return out
}

// PaymentStatuses maps player handles to their payment status for a date
type PaymentStatuses struct {
	Date     string            `json:"date"`
	Period   string            `json:"period"`
	Statuses map[string]string `json:"statuses"`
}

// PaymentStatusesFromModel builds a PaymentStatuses response
func PaymentStatusesFromModel(date model.MatchDate, statuses map[model.Handle]model.PaymentStatus) PaymentStatuses {
	out := make(map[string]string, len(statuses))
	for handle, status := range statuses {
		out[string(handle)] = string(status)
	}
	return PaymentStatuses{
		Date:     string(date),
		Period:   string(model.PeriodOf(date)),
		Statuses: out,
	}
}

// Snapshot represents an archived panel snapshot without its payload
type Snapshot struct {
	Panel   string    `json:"panel"`
	Ref     string    `json:"ref"`
	SavedAt time.Time `json:"saved_at"`
}

// SnapshotFromModel converts a model.Snapshot to its metadata view
func SnapshotFromModel(s *model.Snapshot) Snapshot {
	return Snapshot{
		Panel:   s.Panel,
		Ref:     s.Ref,
		SavedAt: s.SavedAt,
	}
}

// SnapshotWithPayload includes the archived payload
type SnapshotWithPayload struct {
	Snapshot
	Payload json.RawMessage `json:"payload"`
}

// SnapshotWithPayloadFromModel converts a model.Snapshot including its payload
func SnapshotWithPayloadFromModel(s *model.Snapshot) SnapshotWithPayload {
	return SnapshotWithPayload{
		Snapshot: SnapshotFromModel(s),
		Payload:  s.Payload,
	}
}

// Session aggregates everything known about one match date
type Session struct {
	Date       string          `json:"date"`
	Attendance Attendance      `json:"attendance"`
	FirstHalf  *Lineup         `json:"first_half,omitempty"`
	SecondHalf *Lineup         `json:"second_half,omitempty"`
	Payments   PaymentStatuses `json:"payments"`
}
