package model

import (
	"encoding/json"
	"time"
)

// Panels that may be archived. Anything else is rejected up front.
var allowedPanels = map[string]bool{
	"jogadores":          true,
	"presenca_escalacao": true,
	"controle_geral":     true,
	"mensalidade":        true,
	"caixa":              true,
	"gols":               true,
}

// ValidPanel reports whether the panel name is on the allow-list
func ValidPanel(panel string) bool {
	return allowedPanels[panel]
}

// Snapshot is an archived copy of one panel's state at a point in time
type Snapshot struct {
	Panel   string
	Ref     string // opaque reference handed back to the caller
	SavedAt time.Time
	Payload json.RawMessage
}
