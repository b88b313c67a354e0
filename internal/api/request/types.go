package request

import "encoding/json"

// CreatePlayerRequest is the request body for registering a player
type CreatePlayerRequest struct {
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name,omitempty"`
	SkillScore  int    `json:"skill_score,omitempty"`
}

// UpdatePlayerRequest is the request body for updating a player.
// Absent fields are left unchanged.
type UpdatePlayerRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	SkillScore  *int    `json:"skill_score,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// CheckInRequest is the request body for checking a player in
type CheckInRequest struct {
	Handle    string `json:"handle"`
	ArrivedAt string `json:"arrived_at,omitempty"`
	Note      string `json:"note,omitempty"`
}

// UpdateCheckInRequest is the request body for toggling check-in flags.
// Absent fields are left unchanged.
type UpdateCheckInRequest struct {
	OptedOut  *bool `json:"opted_out,omitempty"`
	LeftEarly *bool `json:"left_early,omitempty"`
}

// RecordPaymentRequest is the request body for recording a payment
type RecordPaymentRequest struct {
	Handle string `json:"handle"`
	Amount int    `json:"amount"`
}

// SaveSnapshotRequest is the request body for archiving a panel snapshot
type SaveSnapshotRequest struct {
	Payload json.RawMessage `json:"payload"`
}
