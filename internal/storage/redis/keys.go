package redis

import (
	"fmt"

	"github.com/tesouraclub/tesoura-go/internal/model"
)

// Key prefix for all club data
const keyPrefix = "tesoura"

// playerKey returns the Redis key for a Player
func playerKey(handle model.Handle) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, handle.Key())
}

// playersIndexKey returns the Redis key for the SET of all player handles
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// attendanceKey returns the Redis key for a date's attendance sheet
func attendanceKey(date model.MatchDate) string {
	return fmt.Sprintf("%s:attendance:%s", keyPrefix, date)
}

// attendanceDatesIndexKey returns the Redis key for the SET of sheet dates
func attendanceDatesIndexKey() string {
	return fmt.Sprintf("%s:idx:attendance_dates", keyPrefix)
}

// lineupKey returns the Redis key for a (date, half) lineup
func lineupKey(date model.MatchDate, half model.Half) string {
	return fmt.Sprintf("%s:lineup:%s:%s", keyPrefix, date, half)
}

// paymentKey returns the Redis key for a payment record
func paymentKey(period model.Period, handle model.Handle) string {
	return fmt.Sprintf("%s:payment:%s:%s", keyPrefix, period, handle.Key())
}

// paymentsIndexKey returns the Redis key for the SET of handles paid in a period
func paymentsIndexKey(period model.Period) string {
	return fmt.Sprintf("%s:idx:payments:%s", keyPrefix, period)
}

// snapshotKey returns the Redis key for a panel snapshot
func snapshotKey(panel, ref string) string {
	return fmt.Sprintf("%s:snapshot:%s:%s", keyPrefix, panel, ref)
}

// snapshotsIndexKey returns the Redis key for the SET of refs for a panel
func snapshotsIndexKey(panel string) string {
	return fmt.Sprintf("%s:idx:snapshots:%s", keyPrefix, panel)
}
