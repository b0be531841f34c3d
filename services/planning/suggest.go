package planning

import (
	"sort"

	"pawplan/models"
)

// Scoring weights shared with the reschedule suggester.
const (
	scorePreferredDay   = 5
	scorePreferredBlock = 3
	scoreUnderHalfFull  = 2
)

// DefaultMaxSuggestions bounds ranked suggestion lists when the caller does
// not ask for a specific count.
const DefaultMaxSuggestions = 5

// SlotSuggestion is one ranked candidate slot.
type SlotSuggestion struct {
	Slot  models.WeeklySlotInstance `json:"slot"`
	Score int                       `json:"score"`
}

// ScoreSlot rates how well a slot matches a routine's preferences: +5 for a
// preferred weekday (unconditional when no preference is set), +3 for the
// preferred time block, +2 when the slot is under half-full.
func ScoreSlot(routine models.DogRoutine, slot models.WeeklySlotInstance) int {
	score := 0
	if len(routine.PreferredDays) == 0 {
		score += scorePreferredDay
	} else {
		for _, d := range routine.PreferredDays {
			if d == slot.Day {
				score += scorePreferredDay
				break
			}
		}
	}
	if routine.PreferredBlock != "" && routine.PreferredBlock == slot.Block {
		score += scorePreferredBlock
	}
	if slot.CurrentCount*2 < slot.EffectiveCapacity {
		score += scoreUnderHalfFull
	}
	return score
}

// RankSlots filters out blocked and full slots, scores the rest against the
// routine and sorts them: score descending, then lower occupancy, then
// ascending weekday index. The list is truncated to max entries.
func RankSlots(routine models.DogRoutine, slots []models.WeeklySlotInstance, max int) ([]SlotSuggestion, error) {
	if max <= 0 {
		max = DefaultMaxSuggestions
	}

	suggestions := make([]SlotSuggestion, 0, len(slots))
	dayIdx := make(map[string]int, len(slots))
	for _, s := range slots {
		if s.Blocked || s.CurrentCount >= s.EffectiveCapacity {
			continue
		}
		idx, err := s.Day.Index()
		if err != nil {
			return nil, err
		}
		dayIdx[s.ID] = idx
		suggestions = append(suggestions, SlotSuggestion{Slot: s, Score: ScoreSlot(routine, s)})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Slot.CurrentCount != b.Slot.CurrentCount {
			return a.Slot.CurrentCount < b.Slot.CurrentCount
		}
		return dayIdx[a.Slot.ID] < dayIdx[b.Slot.ID]
	})

	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions, nil
}

// SuggestOptimalSlots proposes the best open slots for an animal's routine.
func SuggestOptimalSlots(routine models.DogRoutine, available []models.WeeklySlotInstance, maxSuggestions int) ([]SlotSuggestion, error) {
	return RankSlots(routine, available, maxSuggestions)
}
