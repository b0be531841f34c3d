package invoicing

import (
	"testing"
	"time"

	"pawplan/models"
)

func testOptions() InvoiceOptions {
	return InvoiceOptions{
		ApplyPackageDiscount: true,
		TaxRatePercent:       20,
		PaymentDelayDays:     30,
		IssueDate:            time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func walkActivity(clientID, animalID string, day int) models.Activity {
	return models.Activity{
		ClientID: clientID,
		AnimalID: animalID,
		Type:     models.WalkCollective,
		Status:   models.ActivityCompleted,
		Date:     time.Date(2026, 6, day, 10, 0, 0, 0, time.UTC),
	}
}

func r2Routines(animalID string) map[string]models.DogRoutine {
	return map[string]models.DogRoutine{
		animalID: {
			AnimalID:       animalID,
			Type:           models.RoutineR2,
			PackageBilling: true,
			Active:         true,
		},
	}
}

func TestCalculateInvoice_PackageBelowFloorBillsPerWalk(t *testing.T) {
	// An R2 routine expects 2 x 4.33 walks a month; three actual walks sit
	// under the 75% floor, so they are billed at the package per-walk rate.
	acts := []models.Activity{
		walkActivity("c1", "dog-1", 1),
		walkActivity("c1", "dog-1", 8),
		walkActivity("c1", "dog-1", 15),
	}

	calc, err := CalculateInvoice("c1", acts, r2Routines("dog-1"), testOptions())
	if err != nil {
		t.Fatalf("CalculateInvoice failed: %v", err)
	}
	if len(calc.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(calc.Lines))
	}
	line := calc.Lines[0]
	if line.Package {
		t.Error("under-floor month must not bill the flat forfait")
	}
	if line.Quantity != 3 || line.UnitPrice != 25.40 || line.Total != 76.20 {
		t.Errorf("line = %+v, want 3 x 25.40 = 76.20", line)
	}
	if calc.Subtotal != 76.20 {
		t.Errorf("Subtotal = %v, want 76.20", calc.Subtotal)
	}
}

func TestCalculateInvoice_PackageAtFloorBillsForfait(t *testing.T) {
	// Eight walks exceed 75% of the expected 8.66: flat R2 forfait.
	var acts []models.Activity
	for day := 1; day <= 8; day++ {
		acts = append(acts, walkActivity("c1", "dog-1", day))
	}

	calc, err := CalculateInvoice("c1", acts, r2Routines("dog-1"), testOptions())
	if err != nil {
		t.Fatalf("CalculateInvoice failed: %v", err)
	}
	if len(calc.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(calc.Lines))
	}
	line := calc.Lines[0]
	if !line.Package || line.Total != 220 {
		t.Errorf("line = %+v, want flat forfait of 220", line)
	}
	if calc.Subtotal != 220 || calc.TaxAmount != 44 || calc.Total != 264 {
		t.Errorf("totals = %v/%v/%v, want 220/44/264", calc.Subtotal, calc.TaxAmount, calc.Total)
	}
}

func TestCalculateInvoice_PackageDisabledUsesListPrice(t *testing.T) {
	acts := []models.Activity{walkActivity("c1", "dog-1", 1), walkActivity("c1", "dog-1", 8)}
	opts := testOptions()
	opts.ApplyPackageDiscount = false

	calc, err := CalculateInvoice("c1", acts, r2Routines("dog-1"), opts)
	if err != nil {
		t.Fatalf("CalculateInvoice failed: %v", err)
	}
	if calc.Lines[0].UnitPrice != 30 || calc.Subtotal != 60 {
		t.Errorf("got unit %v subtotal %v, want list price 30 x 2 = 60", calc.Lines[0].UnitPrice, calc.Subtotal)
	}
}

func TestCalculateInvoice_NonCollectiveServiceNeverOnPackage(t *testing.T) {
	// A package client's individual walk is billed at its own list price.
	act := walkActivity("c1", "dog-1", 3)
	act.Type = models.WalkIndividual

	calc, err := CalculateInvoice("c1", []models.Activity{act}, r2Routines("dog-1"), testOptions())
	if err != nil {
		t.Fatalf("CalculateInvoice failed: %v", err)
	}
	line := calc.Lines[0]
	if line.Package || line.UnitPrice != 45 {
		t.Errorf("line = %+v, want non-package at 45", line)
	}
}

func TestCalculateInvoice_CustomUnitPriceWins(t *testing.T) {
	act := walkActivity("c1", "dog-2", 3)
	act.UnitPrice = 27.50

	calc, err := CalculateInvoice("c1", []models.Activity{act}, nil, testOptions())
	if err != nil {
		t.Fatalf("CalculateInvoice failed: %v", err)
	}
	if calc.Lines[0].UnitPrice != 27.50 {
		t.Errorf("unit = %v, want the activity's own price 27.50", calc.Lines[0].UnitPrice)
	}
}

func TestCalculateInvoice_GroupsByAnimalAndService(t *testing.T) {
	acts := []models.Activity{
		walkActivity("c1", "dog-a", 1),
		walkActivity("c1", "dog-b", 1),
		walkActivity("c1", "dog-a", 8),
	}
	training := walkActivity("c1", "dog-a", 10)
	training.Type = models.WalkTraining
	acts = append(acts, training)

	calc, err := CalculateInvoice("c1", acts, nil, testOptions())
	if err != nil {
		t.Fatalf("CalculateInvoice failed: %v", err)
	}
	if len(calc.Lines) != 3 {
		t.Fatalf("got %d lines, want 3 (dog-a collective, dog-b collective, dog-a training)", len(calc.Lines))
	}
	if calc.Lines[0].AnimalID != "dog-a" || calc.Lines[0].Quantity != 2 {
		t.Errorf("first line = %+v, want dog-a with quantity 2", calc.Lines[0])
	}
}

func TestCalculateInvoice_IgnoresNonCompletedActivities(t *testing.T) {
	cancelled := walkActivity("c1", "dog-1", 2)
	cancelled.Status = models.ActivityCancelled
	acts := []models.Activity{walkActivity("c1", "dog-1", 1), cancelled}

	calc, err := CalculateInvoice("c1", acts, nil, testOptions())
	if err != nil {
		t.Fatalf("CalculateInvoice failed: %v", err)
	}
	if len(calc.Lines) != 1 || calc.Lines[0].Quantity != 1 {
		t.Errorf("cancelled activity reached the invoice: %+v", calc.Lines)
	}
}

func TestCalculateInvoice_DueDateFollowsPaymentDelay(t *testing.T) {
	calc, err := CalculateInvoice("c1", []models.Activity{walkActivity("c1", "dog-1", 1)}, nil, testOptions())
	if err != nil {
		t.Fatalf("CalculateInvoice failed: %v", err)
	}
	want := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	if !calc.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", calc.DueDate, want)
	}
}

func TestGenerateMonthlyInvoices_SkipsClientsWithoutActivity(t *testing.T) {
	clients := []models.Client{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}
	acts := []models.Activity{
		walkActivity("c1", "dog-1", 5),
		// c2's walk falls in another month.
		{ClientID: "c2", AnimalID: "dog-2", Type: models.WalkCollective, Status: models.ActivityCompleted,
			Date: time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)},
	}

	invoices, err := GenerateMonthlyInvoices(clients, acts, nil, 2026, time.June, testOptions())
	if err != nil {
		t.Fatalf("GenerateMonthlyInvoices failed: %v", err)
	}
	if len(invoices) != 1 || invoices[0].ClientID != "c1" {
		t.Errorf("got %d invoices, want exactly one for c1", len(invoices))
	}
}
