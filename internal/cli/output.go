package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Attendance:
		o.printAttendance(v)
	case CheckIn:
		o.printCheckIn(v)
	case Lineup:
		o.printLineup(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	Handle      string    `json:"handle"`
	DisplayName string    `json:"display_name"`
	SkillScore  int       `json:"skill_score"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CheckIn response type
type CheckIn struct {
	Handle    string `json:"handle"`
	Seq       int    `json:"seq"`
	ArrivedAt string `json:"arrived_at"`
	Note      string `json:"note,omitempty"`
	OptedOut  bool   `json:"opted_out"`
	LeftEarly bool   `json:"left_early"`
}

// Attendance response type
type Attendance struct {
	Date     string    `json:"date"`
	CheckIns []CheckIn `json:"check_ins"`
}

// LineupSlot response type
type LineupSlot struct {
	Slot   int    `json:"slot"`
	Handle string `json:"handle,omitempty"`
}

// Lineup response type
type Lineup struct {
	Date       string       `json:"date"`
	Half       string       `json:"half"`
	SquadSize  int          `json:"squad_size"`
	SquadA     []LineupSlot `json:"squad_a"`
	SquadB     []LineupSlot `json:"squad_b"`
	ComputedAt time.Time    `json:"computed_at"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	activeStr := "yes"
	if !p.Active {
		activeStr = "no"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.Handle)
	fmt.Printf("Skill: %d\n", p.SkillScore)
	fmt.Printf("Active: %s\n", activeStr)
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		marker := ""
		if !p.Active {
			marker = " [inactive]"
		}
		fmt.Printf("  - %s (%s) skill %d%s\n", p.DisplayName, p.Handle, p.SkillScore, marker)
	}
}

func (o *Output) printAttendance(a Attendance) {
	fmt.Printf("Attendance for %s (%d checked in):\n", a.Date, len(a.CheckIns))
	for _, c := range a.CheckIns {
		o.printCheckInLine(c)
	}
}

func (o *Output) printCheckIn(c CheckIn) {
	fmt.Println("Checked in:")
	o.printCheckInLine(c)
}

func (o *Output) printCheckInLine(c CheckIn) {
	flags := ""
	if c.OptedOut {
		flags += " [opted out]"
	}
	if c.LeftEarly {
		flags += " [left early]"
	}
	fmt.Printf("  %2d. %s at %s%s\n", c.Seq, c.Handle, c.ArrivedAt, flags)
	if c.Note != "" {
		fmt.Printf("      note: %s\n", c.Note)
	}
}

func (o *Output) printLineup(l Lineup) {
	fmt.Printf("Lineup for %s (%s half):\n", l.Date, l.Half)
	fmt.Println("Squad A:")
	o.printSlots(l.SquadA)
	fmt.Println("Squad B:")
	o.printSlots(l.SquadB)
}

func (o *Output) printSlots(slots []LineupSlot) {
	for _, s := range slots {
		handle := s.Handle
		if handle == "" {
			handle = "-"
		}
		fmt.Printf("  %2d. %s\n", s.Slot, handle)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
