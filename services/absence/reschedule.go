package absence

import (
	"time"

	"pawplan/models"
	"pawplan/services/planning"
	"pawplan/utils"
)

// SuggestRescheduleDates ranks replacement slots for a cancelled walk.
// Candidates are drawn only from the two full ISO weeks beginning the week
// after the cancellation's week; blocked and full slots are excluded. The
// scoring is the same preference weighting used for planning suggestions.
func SuggestRescheduleDates(
	originalDate time.Time,
	routine models.DogRoutine,
	slots []models.WeeklySlotInstance,
	maxSuggestions int,
) ([]planning.SlotSuggestion, error) {
	y0, w0 := utils.ISOWeekOf(originalDate)
	y1, w1 := utils.NextISOWeek(y0, w0)
	y2, w2 := utils.NextISOWeek(y1, w1)

	candidates := make([]models.WeeklySlotInstance, 0, len(slots))
	for _, s := range slots {
		if (s.Year == y1 && s.Week == w1) || (s.Year == y2 && s.Week == w2) {
			candidates = append(candidates, s)
		}
	}
	return planning.RankSlots(routine, candidates, maxSuggestions)
}
