package planning

import (
	"testing"

	"pawplan/models"
)

func TestScoreSlot(t *testing.T) {
	routine := models.DogRoutine{
		PreferredDays:  []models.WorkDay{models.Monday, models.Thursday},
		PreferredBlock: models.Morning,
	}

	tests := []struct {
		name string
		slot models.WeeklySlotInstance
		want int
	}{
		{"preferred day, block and room", slot("a", models.Monday, 6, 1), 10},
		{"preferred day only, half full", models.WeeklySlotInstance{Day: models.Monday, Block: models.Afternoon, EffectiveCapacity: 6, CurrentCount: 3}, 5},
		{"wrong day, preferred block, room", slot("c", models.Tuesday, 6, 1), 5},
		{"nothing matches", models.WeeklySlotInstance{Day: models.Friday, Block: models.Afternoon, EffectiveCapacity: 4, CurrentCount: 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreSlot(routine, tt.slot); got != tt.want {
				t.Errorf("ScoreSlot = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreSlot_NoPreferredDaysMatchesAnyDay(t *testing.T) {
	routine := models.DogRoutine{PreferredBlock: models.Midday}
	s := slot("a", models.Friday, 6, 5)
	s.Block = models.Midday
	// Day points apply unconditionally, block matches, slot is over half full.
	if got := ScoreSlot(routine, s); got != 8 {
		t.Errorf("ScoreSlot = %d, want 8", got)
	}
}

func TestRankSlots_FiltersAndOrders(t *testing.T) {
	routine := models.DogRoutine{
		PreferredDays:  []models.WorkDay{models.Monday},
		PreferredBlock: models.Morning,
	}

	blocked := slot("blocked", models.Monday, 6, 0)
	blocked.Blocked = true
	slots := []models.WeeklySlotInstance{
		blocked,
		slot("full", models.Monday, 4, 4),
		slot("best", models.Monday, 6, 1),       // 5+3+2 = 10
		slot("tue-busy", models.Tuesday, 6, 4),  // 3
		slot("wed-quiet", models.Wednesday, 6, 1), // 3+2 = 5
	}

	ranked, err := RankSlots(routine, slots, 0)
	if err != nil {
		t.Fatalf("RankSlots failed: %v", err)
	}

	wantOrder := []string{"best", "wed-quiet", "tue-busy"}
	if len(ranked) != len(wantOrder) {
		t.Fatalf("got %d suggestions, want %d", len(ranked), len(wantOrder))
	}
	for i, want := range wantOrder {
		if ranked[i].Slot.ID != want {
			t.Errorf("rank %d = %s, want %s", i, ranked[i].Slot.ID, want)
		}
	}
}

func TestRankSlots_TieBreaks(t *testing.T) {
	// Identical scores: lower occupancy wins, then the earlier weekday.
	routine := models.DogRoutine{}

	a := slot("thu", models.Thursday, 10, 2)
	b := slot("tue", models.Tuesday, 10, 2)
	c := slot("wed-busier", models.Wednesday, 10, 3)
	for _, s := range []*models.WeeklySlotInstance{&a, &b, &c} {
		s.Block = models.Afternoon
	}

	ranked, err := RankSlots(routine, []models.WeeklySlotInstance{a, b, c}, 0)
	if err != nil {
		t.Fatalf("RankSlots failed: %v", err)
	}

	wantOrder := []string{"tue", "thu", "wed-busier"}
	for i, want := range wantOrder {
		if ranked[i].Slot.ID != want {
			t.Errorf("rank %d = %s, want %s", i, ranked[i].Slot.ID, want)
		}
	}
}

func TestRankSlots_Truncation(t *testing.T) {
	routine := models.DogRoutine{}
	var slots []models.WeeklySlotInstance
	days := []models.WorkDay{models.Monday, models.Tuesday, models.Wednesday, models.Thursday, models.Friday}
	for i := 0; i < 8; i++ {
		s := slot(string(days[i%5])+"-"+string(rune('a'+i)), days[i%5], 10, i)
		slots = append(slots, s)
	}

	ranked, err := RankSlots(routine, slots, 0)
	if err != nil {
		t.Fatalf("RankSlots failed: %v", err)
	}
	if len(ranked) != DefaultMaxSuggestions {
		t.Errorf("got %d suggestions, want the default cap of %d", len(ranked), DefaultMaxSuggestions)
	}

	ranked, err = RankSlots(routine, slots, 2)
	if err != nil {
		t.Fatalf("RankSlots failed: %v", err)
	}
	if len(ranked) != 2 {
		t.Errorf("got %d suggestions, want 2", len(ranked))
	}
}
