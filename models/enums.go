package models

import (
	"fmt"
	"time"
)

// WorkDay is a business weekday. The company does not walk dogs on weekends,
// so no weekend value exists anywhere in the model.
type WorkDay string

const (
	Monday    WorkDay = "LUNDI"
	Tuesday   WorkDay = "MARDI"
	Wednesday WorkDay = "MERCREDI"
	Thursday  WorkDay = "JEUDI"
	Friday    WorkDay = "VENDREDI"
)

// AllWorkDays lists the business weekdays in calendar order.
var AllWorkDays = []WorkDay{Monday, Tuesday, Wednesday, Thursday, Friday}

// Index returns the position of the weekday within the business week (0 = Monday).
func (d WorkDay) Index() (int, error) {
	switch d {
	case Monday:
		return 0, nil
	case Tuesday:
		return 1, nil
	case Wednesday:
		return 2, nil
	case Thursday:
		return 3, nil
	case Friday:
		return 4, nil
	}
	return 0, fmt.Errorf("unknown work day %q", string(d))
}

// WorkDayFromTime maps a calendar date to its business weekday.
// Saturday and Sunday map to nothing.
func WorkDayFromTime(t time.Time) (WorkDay, bool) {
	switch t.Weekday() {
	case time.Monday:
		return Monday, true
	case time.Tuesday:
		return Tuesday, true
	case time.Wednesday:
		return Wednesday, true
	case time.Thursday:
		return Thursday, true
	case time.Friday:
		return Friday, true
	}
	return "", false
}

// TimeBlock is one of the three daily walk windows.
type TimeBlock string

const (
	Morning   TimeBlock = "MATIN"
	Midday    TimeBlock = "MIDI"
	Afternoon TimeBlock = "APRES_MIDI"
)

// RoutineType encodes an animal's weekly walk-frequency commitment.
type RoutineType string

const (
	RoutineR1   RoutineType = "R1"           // 1 walk per week
	RoutineR2   RoutineType = "R2"           // 2 walks per week
	RoutineR3   RoutineType = "R3"           // 3 walks per week
	RoutinePlus RoutineType = "ROUTINE_PLUS" // 4+ walks per week
	Ponctuel    RoutineType = "PONCTUEL"     // occasional, no weekly expectation
)

// ExpectedWalksPerWeek returns the weekly walk count the routine commits to.
func (r RoutineType) ExpectedWalksPerWeek() (int, error) {
	switch r {
	case RoutineR1:
		return 1, nil
	case RoutineR2:
		return 2, nil
	case RoutineR3:
		return 3, nil
	case RoutinePlus:
		return 4, nil
	case Ponctuel:
		return 0, nil
	}
	return 0, fmt.Errorf("unknown routine type %q", string(r))
}

// WalkType is the service category of an activity.
type WalkType string

const (
	WalkCollective WalkType = "COLLECTIVE"
	WalkIndividual WalkType = "INDIVIDUELLE"
	WalkPuppy      WalkType = "CHIOT"
	WalkHike       WalkType = "CANIRANDO"
	WalkHomeVisit  WalkType = "VISITE_DOMICILE"
	WalkTraining   WalkType = "EDUCATION"
	WalkBoarding   WalkType = "PENSION"
)

// DefaultWalkPrice returns the standard per-unit price used when an activity
// carries no recorded price.
func DefaultWalkPrice(w WalkType) (float64, error) {
	switch w {
	case WalkCollective:
		return 30, nil
	case WalkIndividual:
		return 45, nil
	case WalkPuppy:
		return 35, nil
	case WalkHike:
		return 40, nil
	case WalkHomeVisit:
		return 25, nil
	case WalkTraining:
		return 50, nil
	case WalkBoarding:
		return 60, nil
	}
	return 0, fmt.Errorf("unknown walk type %q", string(w))
}

// AbsenceType categorises why a scheduled walk did not happen.
type AbsenceType string

const (
	AbsenceSickDog         AbsenceType = "CHIEN_MALADE"
	AbsenceVetAppointment  AbsenceType = "RENDEZ_VOUS_VETERINAIRE"
	AbsenceVacation        AbsenceType = "VACANCES"
	AbsenceClientCancelled AbsenceType = "ANNULATION_CLIENT"
	AbsenceWalkerAbsent    AbsenceType = "PROMENEUR_ABSENT"
	AbsenceExtremeWeather  AbsenceType = "METEO_EXTREME"
	AbsenceFamilyEmergency AbsenceType = "URGENCE_FAMILIALE"
	AbsenceOther           AbsenceType = "AUTRE"
)

// CancellationPolicy is the billing treatment assigned to an absence.
type CancellationPolicy string

const (
	PolicyFullRefund    CancellationPolicy = "FULL_REFUND"
	PolicyPartialCharge CancellationPolicy = "PARTIAL_CHARGE"
	PolicyFullCharge    CancellationPolicy = "FULL_CHARGE"
	PolicyRescheduled   CancellationPolicy = "RESCHEDULED"
	PolicyPackageCredit CancellationPolicy = "PACKAGE_CREDIT"
)

// ActivityStatus tracks an activity's lifecycle in the planning.
type ActivityStatus string

const (
	ActivityPlanned   ActivityStatus = "PLANIFIEE"
	ActivityCompleted ActivityStatus = "TERMINEE"
	ActivityCancelled ActivityStatus = "ANNULEE"
)

// InvoiceStatus tracks a persisted invoice's payment lifecycle.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "DRAFT"
	InvoiceSent    InvoiceStatus = "SENT"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)
