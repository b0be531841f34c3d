package models

import (
	"testing"
	"time"
)

func TestPackageFor(t *testing.T) {
	tests := []struct {
		routine      RoutineType
		monthly      float64
		perWalk      float64
		walksPerWeek int
	}{
		{RoutineR1, 120, 27.71, 1},
		{RoutineR2, 220, 25.40, 2},
		{RoutineR3, 300, 23.09, 3},
		{RoutinePlus, 380, 21.94, 4},
	}
	for _, tt := range tests {
		pkg, err := PackageFor(tt.routine)
		if err != nil {
			t.Fatalf("PackageFor(%s) failed: %v", tt.routine, err)
		}
		if pkg.MonthlyPrice != tt.monthly || pkg.PerWalkPrice != tt.perWalk || pkg.WalksPerWeek != tt.walksPerWeek {
			t.Errorf("PackageFor(%s) = %+v", tt.routine, pkg)
		}
	}
}

func TestPackageFor_PonctuelHasNoPackage(t *testing.T) {
	if _, err := PackageFor(Ponctuel); err == nil {
		t.Error("PONCTUEL must not map to a monthly package")
	}
}

func TestExpectedWalksPerWeek(t *testing.T) {
	got, err := Ponctuel.ExpectedWalksPerWeek()
	if err != nil || got != 0 {
		t.Errorf("PONCTUEL expects %d walks (err %v), want 0", got, err)
	}
	if _, err := RoutineType("R9").ExpectedWalksPerWeek(); err == nil {
		t.Error("unknown routine type must return an error")
	}
}

func TestWorkDayFromTime_WeekendMapsToNothing(t *testing.T) {
	if _, ok := WorkDayFromTime(time.Date(2026, 6, 6, 0, 0, 0, 0, time.UTC)); ok {
		t.Error("Saturday mapped to a business weekday")
	}
	day, ok := WorkDayFromTime(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	if !ok || day != Monday {
		t.Errorf("Monday June 1st 2026 mapped to %q (%v)", day, ok)
	}
}

func TestDefaultWalkPrice_UnknownTypeIsError(t *testing.T) {
	if _, err := DefaultWalkPrice(WalkType("TOILETTAGE")); err == nil {
		t.Error("unknown walk type must return an error")
	}
}
