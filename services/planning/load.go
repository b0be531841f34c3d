package planning

import (
	"pawplan/models"
	"pawplan/utils"
)

// SlotLoad is the occupancy picture of one weekly slot instance.
type SlotLoad struct {
	SlotID             string           `json:"slotId"`
	GroupID            string           `json:"groupId"`
	Day                models.WorkDay   `json:"day"`
	Block              models.TimeBlock `json:"block"`
	CurrentCount       int              `json:"currentCount"`
	EffectiveCapacity  int              `json:"effectiveCapacity"`
	UtilizationPercent float64          `json:"utilizationPercent"`
	IsOverbooked       bool             `json:"isOverbooked"`
}

// AnalyzeWeeklyLoad computes per-slot occupancy for a week's slot instances.
// A slot is overbooked only when strictly above capacity; exactly full is not
// overbooked. Violations are reported, never silently corrected.
func AnalyzeWeeklyLoad(slots []models.WeeklySlotInstance) []SlotLoad {
	loads := make([]SlotLoad, 0, len(slots))
	for _, s := range slots {
		pct := 0.0
		if s.EffectiveCapacity > 0 {
			pct = utils.Round2(float64(s.CurrentCount) / float64(s.EffectiveCapacity) * 100)
		}
		loads = append(loads, SlotLoad{
			SlotID:             s.ID,
			GroupID:            s.GroupID,
			Day:                s.Day,
			Block:              s.Block,
			CurrentCount:       s.CurrentCount,
			EffectiveCapacity:  s.EffectiveCapacity,
			UtilizationPercent: pct,
			IsOverbooked:       s.CurrentCount > s.EffectiveCapacity,
		})
	}
	return loads
}
