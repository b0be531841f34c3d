package planning

import (
	"fmt"

	"pawplan/models"
)

// Severity distinguishes blocking violations from advisory ones.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Violation codes returned by ValidateDogAssignment.
const (
	CodeSlotBlocked     = "SLOT_BLOCKED"
	CodeCapacityFull    = "CAPACITY_FULL"
	CodeDoubleBooking   = "DOUBLE_BOOKING"
	CodeRoutineExceeded = "ROUTINE_EXCEEDED"
)

// Violation is one business-rule breach found during validation. Violations
// are data, never errors: expected, frequent, and meant to be displayed.
type Violation struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ValidationResult reports every violation found, not just the first.
// IsValid reflects error-severity violations only; callers decide whether
// warnings block the action.
type ValidationResult struct {
	IsValid    bool        `json:"isValid"`
	Violations []Violation `json:"violations"`
}

// ValidateDogAssignment checks whether an animal can be assigned to the target
// weekly slot: the slot must not be blocked, must have free capacity, the
// animal must not already be booked on the same day that week, and an active
// routine's weekly count must not be exceeded (soft check). A target slot that
// matches no instance is a contract violation and returns an error.
func ValidateDogAssignment(
	animalID string,
	targetSlotID string,
	assignments []models.Assignment,
	slots []models.WeeklySlotInstance,
	routine *models.DogRoutine,
) (ValidationResult, error) {
	var target *models.WeeklySlotInstance
	for i := range slots {
		if slots[i].ID == targetSlotID {
			target = &slots[i]
			break
		}
	}
	if target == nil {
		return ValidationResult{}, fmt.Errorf("slot %q matches no instance in the snapshot", targetSlotID)
	}

	var violations []Violation

	if target.Blocked {
		msg := "slot is blocked"
		if target.BlockReason != "" {
			msg = fmt.Sprintf("slot is blocked: %s", target.BlockReason)
		}
		violations = append(violations, Violation{Code: CodeSlotBlocked, Severity: SeverityError, Message: msg})
	}

	if target.CurrentCount >= target.EffectiveCapacity {
		violations = append(violations, Violation{
			Code:     CodeCapacityFull,
			Severity: SeverityError,
			Message:  fmt.Sprintf("slot is full (%d/%d)", target.CurrentCount, target.EffectiveCapacity),
		})
	}

	weeklyCount := 0
	for _, a := range assignments {
		if a.AnimalID != animalID {
			continue
		}
		if a.Year == target.Year && a.Week == target.Week {
			weeklyCount++
			if a.Day == target.Day {
				violations = append(violations, Violation{
					Code:     CodeDoubleBooking,
					Severity: SeverityError,
					Message:  fmt.Sprintf("animal already has a walk on %s of week %d", target.Day, target.Week),
				})
			}
		}
	}

	if routine != nil && routine.Active {
		expected, err := routine.Type.ExpectedWalksPerWeek()
		if err != nil {
			return ValidationResult{}, err
		}
		if weeklyCount+1 > expected {
			violations = append(violations, Violation{
				Code:     CodeRoutineExceeded,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("assignment would exceed routine %s (%d expected per week)", routine.Type, expected),
			})
		}
	}

	valid := true
	for _, v := range violations {
		if v.Severity == SeverityError {
			valid = false
			break
		}
	}
	return ValidationResult{IsValid: valid, Violations: violations}, nil
}
