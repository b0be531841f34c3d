package planning

import (
	"testing"

	"pawplan/models"
)

func slot(id string, day models.WorkDay, capacity, count int) models.WeeklySlotInstance {
	return models.WeeklySlotInstance{
		ID:                id,
		Year:              2026,
		Week:              12,
		Day:               day,
		Block:             models.Morning,
		EffectiveCapacity: capacity,
		CurrentCount:      count,
	}
}

func TestValidateDogAssignment_OpenSlot(t *testing.T) {
	slots := []models.WeeklySlotInstance{slot("s1", models.Monday, 6, 2)}

	result, err := ValidateDogAssignment("dog-1", "s1", nil, slots, nil)
	if err != nil {
		t.Fatalf("ValidateDogAssignment failed: %v", err)
	}
	if !result.IsValid || len(result.Violations) != 0 {
		t.Errorf("got %+v, want valid with no violations", result)
	}
}

func TestValidateDogAssignment_BlockedSlot(t *testing.T) {
	blocked := slot("s1", models.Monday, 6, 0)
	blocked.Blocked = true
	blocked.BlockReason = "jour férié"

	result, err := ValidateDogAssignment("dog-1", "s1", nil, []models.WeeklySlotInstance{blocked}, nil)
	if err != nil {
		t.Fatalf("ValidateDogAssignment failed: %v", err)
	}
	if result.IsValid {
		t.Error("blocked slot validated as assignable")
	}
	if len(result.Violations) != 1 || result.Violations[0].Code != CodeSlotBlocked {
		t.Errorf("violations = %+v, want one SLOT_BLOCKED", result.Violations)
	}
}

func TestValidateDogAssignment_CapacityFull(t *testing.T) {
	slots := []models.WeeklySlotInstance{slot("s1", models.Monday, 4, 4)}

	result, err := ValidateDogAssignment("dog-1", "s1", nil, slots, nil)
	if err != nil {
		t.Fatalf("ValidateDogAssignment failed: %v", err)
	}
	if result.IsValid {
		t.Error("full slot validated as assignable")
	}
	if len(result.Violations) != 1 || result.Violations[0].Code != CodeCapacityFull {
		t.Errorf("violations = %+v, want one CAPACITY_FULL", result.Violations)
	}
}

func TestValidateDogAssignment_DoubleBookingSameDay(t *testing.T) {
	slots := []models.WeeklySlotInstance{slot("s1", models.Monday, 6, 2)}
	assignments := []models.Assignment{
		{AnimalID: "dog-1", SlotID: "other", Year: 2026, Week: 12, Day: models.Monday},
	}

	result, err := ValidateDogAssignment("dog-1", "s1", assignments, slots, nil)
	if err != nil {
		t.Fatalf("ValidateDogAssignment failed: %v", err)
	}
	if result.IsValid {
		t.Error("same-day double booking validated as assignable")
	}
	if len(result.Violations) != 1 || result.Violations[0].Code != CodeDoubleBooking {
		t.Errorf("violations = %+v, want one DOUBLE_BOOKING", result.Violations)
	}
}

func TestValidateDogAssignment_OtherDayIsFine(t *testing.T) {
	slots := []models.WeeklySlotInstance{slot("s1", models.Tuesday, 6, 2)}
	assignments := []models.Assignment{
		{AnimalID: "dog-1", SlotID: "other", Year: 2026, Week: 12, Day: models.Monday},
	}

	result, err := ValidateDogAssignment("dog-1", "s1", assignments, slots, nil)
	if err != nil {
		t.Fatalf("ValidateDogAssignment failed: %v", err)
	}
	if !result.IsValid {
		t.Errorf("assignment on a different day rejected: %+v", result.Violations)
	}
}

func TestValidateDogAssignment_RoutineExceededIsWarningOnly(t *testing.T) {
	slots := []models.WeeklySlotInstance{slot("s1", models.Wednesday, 6, 2)}
	assignments := []models.Assignment{
		{AnimalID: "dog-1", SlotID: "a", Year: 2026, Week: 12, Day: models.Monday},
		{AnimalID: "dog-1", SlotID: "b", Year: 2026, Week: 12, Day: models.Tuesday},
	}
	routine := &models.DogRoutine{AnimalID: "dog-1", Type: models.RoutineR2, Active: true}

	result, err := ValidateDogAssignment("dog-1", "s1", assignments, slots, routine)
	if err != nil {
		t.Fatalf("ValidateDogAssignment failed: %v", err)
	}
	if !result.IsValid {
		t.Error("routine overrun must not invalidate the assignment")
	}
	if len(result.Violations) != 1 || result.Violations[0].Code != CodeRoutineExceeded {
		t.Errorf("violations = %+v, want one ROUTINE_EXCEEDED warning", result.Violations)
	}
	if result.Violations[0].Severity != SeverityWarning {
		t.Errorf("severity = %s, want warning", result.Violations[0].Severity)
	}
}

func TestValidateDogAssignment_InactiveRoutineIgnored(t *testing.T) {
	slots := []models.WeeklySlotInstance{slot("s1", models.Wednesday, 6, 2)}
	assignments := []models.Assignment{
		{AnimalID: "dog-1", SlotID: "a", Year: 2026, Week: 12, Day: models.Monday},
	}
	routine := &models.DogRoutine{AnimalID: "dog-1", Type: models.RoutineR1, Active: false}

	result, err := ValidateDogAssignment("dog-1", "s1", assignments, slots, routine)
	if err != nil {
		t.Fatalf("ValidateDogAssignment failed: %v", err)
	}
	if len(result.Violations) != 0 {
		t.Errorf("inactive routine produced violations: %+v", result.Violations)
	}
}

func TestValidateDogAssignment_AllViolationsReported(t *testing.T) {
	full := slot("s1", models.Monday, 2, 2)
	full.Blocked = true
	assignments := []models.Assignment{
		{AnimalID: "dog-1", SlotID: "other", Year: 2026, Week: 12, Day: models.Monday},
	}

	result, err := ValidateDogAssignment("dog-1", "s1", assignments, []models.WeeklySlotInstance{full}, nil)
	if err != nil {
		t.Fatalf("ValidateDogAssignment failed: %v", err)
	}
	if len(result.Violations) != 3 {
		t.Errorf("got %d violations, want all 3 reported together", len(result.Violations))
	}
}

func TestValidateDogAssignment_UnknownSlotIsError(t *testing.T) {
	slots := []models.WeeklySlotInstance{slot("s1", models.Monday, 6, 0)}
	if _, err := ValidateDogAssignment("dog-1", "missing", nil, slots, nil); err == nil {
		t.Fatal("unknown target slot must return an error, not a violation")
	}
}
