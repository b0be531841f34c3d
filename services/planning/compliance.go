package planning

import "pawplan/models"

// Compliance compares an animal's actual weekly assignments against its
// routine commitment. Only under-assignment is flagged; walking a dog more
// often than promised is never a compliance problem.
type Compliance struct {
	Expected    int  `json:"expected"`
	Actual      int  `json:"actual"`
	IsCompliant bool `json:"isCompliant"`
}

// CheckRoutineCompliance counts the animal's assignments for the week and
// compares them to the routine's expected walk count.
func CheckRoutineCompliance(routine models.DogRoutine, weeklyAssignments []models.Assignment) (Compliance, error) {
	expected, err := routine.Type.ExpectedWalksPerWeek()
	if err != nil {
		return Compliance{}, err
	}
	actual := 0
	for _, a := range weeklyAssignments {
		if a.AnimalID == routine.AnimalID {
			actual++
		}
	}
	return Compliance{
		Expected:    expected,
		Actual:      actual,
		IsCompliant: actual >= expected,
	}, nil
}
