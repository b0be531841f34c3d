package absence

import (
	"testing"
	"time"

	"pawplan/models"
)

func walkAt(hoursBefore float64) (walk, cancel time.Time) {
	walk = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	cancel = walk.Add(-time.Duration(hoursBefore * float64(time.Hour)))
	return walk, cancel
}

func TestDetermineCancellationPolicy_BusinessCausedAlwaysRefunds(t *testing.T) {
	for _, absType := range []models.AbsenceType{models.AbsenceWalkerAbsent, models.AbsenceExtremeWeather} {
		// Even a last-minute cancellation by a package client refunds fully.
		walk, cancel := walkAt(1)
		d := DetermineCancellationPolicy(PolicyInput{
			OriginalDate:     walk,
			CancellationTime: cancel,
			Type:             absType,
			IsPackageClient:  true,
		})
		if d.Policy != models.PolicyFullRefund || d.ChargePercent != 0 {
			t.Errorf("%s: got %s/%.0f%%, want FULL_REFUND/0%%", absType, d.Policy, d.ChargePercent)
		}
	}
}

func TestDetermineCancellationPolicy_MedicalBeatsPackage(t *testing.T) {
	for _, absType := range []models.AbsenceType{models.AbsenceSickDog, models.AbsenceVetAppointment} {
		walk, cancel := walkAt(2)
		d := DetermineCancellationPolicy(PolicyInput{
			OriginalDate:     walk,
			CancellationTime: cancel,
			Type:             absType,
			IsPackageClient:  true,
		})
		if d.Policy != models.PolicyRescheduled || d.ChargePercent != 0 {
			t.Errorf("%s: got %s/%.0f%%, want RESCHEDULED/0%%", absType, d.Policy, d.ChargePercent)
		}
	}
}

func TestDetermineCancellationPolicy_PackageClientGetsCredit(t *testing.T) {
	// Non-medical, non-excused type, cancelled 1 hour before: a package
	// client still gets the credit, never the hour scale.
	walk, cancel := walkAt(1)
	d := DetermineCancellationPolicy(PolicyInput{
		OriginalDate:     walk,
		CancellationTime: cancel,
		Type:             models.AbsenceClientCancelled,
		IsPackageClient:  true,
	})
	if d.Policy != models.PolicyPackageCredit || d.ChargePercent != 0 {
		t.Errorf("got %s/%.0f%%, want PACKAGE_CREDIT/0%%", d.Policy, d.ChargePercent)
	}
}

func TestDetermineCancellationPolicy_HourScale(t *testing.T) {
	tests := []struct {
		name        string
		hoursBefore float64
		wantPolicy  models.CancellationPolicy
		wantPercent float64
	}{
		{"30 hours before", 30, models.PolicyFullRefund, 0},
		{"exactly 24 hours", 24, models.PolicyFullRefund, 0},
		{"23.9 hours truncates to 23", 23.9, models.PolicyPartialCharge, 50},
		{"10 hours before", 10, models.PolicyPartialCharge, 50},
		{"exactly 6 hours", 6, models.PolicyPartialCharge, 50},
		{"5.9 hours truncates to 5", 5.9, models.PolicyFullCharge, 100},
		{"2 hours before", 2, models.PolicyFullCharge, 100},
		{"after the walk", -3, models.PolicyFullCharge, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			walk, cancel := walkAt(tt.hoursBefore)
			d := DetermineCancellationPolicy(PolicyInput{
				OriginalDate:     walk,
				CancellationTime: cancel,
				Type:             models.AbsenceOther,
				IsPackageClient:  false,
			})
			if d.Policy != tt.wantPolicy || d.ChargePercent != tt.wantPercent {
				t.Errorf("got %s/%.0f%%, want %s/%.0f%%", d.Policy, d.ChargePercent, tt.wantPolicy, tt.wantPercent)
			}
		})
	}
}

func TestDetermineCancellationPolicy_FractionalHoursTruncateTowardZero(t *testing.T) {
	// 24h minus one minute is 23 whole hours: partial charge bucket.
	walk, cancel := walkAt(0)
	cancel = walk.Add(-24*time.Hour + time.Minute)
	d := DetermineCancellationPolicy(PolicyInput{
		OriginalDate:     walk,
		CancellationTime: cancel,
		Type:             models.AbsenceOther,
	})
	if d.Policy != models.PolicyPartialCharge {
		t.Errorf("got %s, want PARTIAL_CHARGE", d.Policy)
	}
}

func TestCalculateCancellationCharge_SpecScenarios(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		want    float64
	}{
		{"full refund charges nothing", 0, 0},
		{"partial charge is half the base", 50, 15.00},
		{"full charge is the base exactly", 100, 30.00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCancellationCharge(ChargeInput{
				WalkType:      models.WalkCollective,
				ChargePercent: tt.percent,
			})
			if got != tt.want {
				t.Errorf("charge(%v%%) = %v, want %v", tt.percent, got, tt.want)
			}
		})
	}
}

func TestCalculateCancellationCharge_CustomPriceAndRounding(t *testing.T) {
	price := 45.50
	got := CalculateCancellationCharge(ChargeInput{CustomPrice: &price, ChargePercent: 50})
	if got != 22.75 {
		t.Errorf("charge = %v, want 22.75", got)
	}
}

func TestCalculateCancellationCharge_MonotonicInPercent(t *testing.T) {
	prev := -1.0
	for pct := 0.0; pct <= 100; pct += 5 {
		got := CalculateCancellationCharge(ChargeInput{ChargePercent: pct})
		if got < prev {
			t.Fatalf("charge decreased from %v to %v at %v%%", prev, got, pct)
		}
		prev = got
	}
}
