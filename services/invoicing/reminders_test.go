package invoicing

import (
	"testing"
	"time"

	"pawplan/models"
)

var reminderNow = time.Date(2026, 7, 20, 9, 0, 0, 0, time.UTC)

func overdueInvoice(id string, daysOverdue int) models.Invoice {
	return models.Invoice{
		ID:       id,
		ClientID: "c1",
		Status:   models.InvoiceSent,
		Total:    264,
		DueDate:  reminderNow.AddDate(0, 0, -daysOverdue),
	}
}

func TestGeneratePaymentReminders_NotYetOverdue(t *testing.T) {
	invoices := []models.Invoice{
		{ID: "future", Status: models.InvoiceSent, DueDate: reminderNow.AddDate(0, 0, 3)},
		{ID: "due-today", Status: models.InvoiceSent, DueDate: reminderNow},
	}
	if got := GeneratePaymentReminders(invoices, reminderNow, 7); len(got) != 0 {
		t.Errorf("got %d reminders for invoices not past due, want 0", len(got))
	}
}

func TestGeneratePaymentReminders_PaidAndDraftSkipped(t *testing.T) {
	paid := overdueInvoice("paid", 20)
	paid.Status = models.InvoicePaid
	draft := overdueInvoice("draft", 20)
	draft.Status = models.InvoiceDraft

	if got := GeneratePaymentReminders([]models.Invoice{paid, draft}, reminderNow, 7); len(got) != 0 {
		t.Errorf("got %d reminders, want 0 for paid and draft invoices", len(got))
	}
}

func TestGeneratePaymentReminders_FirstReminderAfterInterval(t *testing.T) {
	invoices := []models.Invoice{overdueInvoice("inv-1", 8)}

	got := GeneratePaymentReminders(invoices, reminderNow, 7)
	if len(got) != 1 {
		t.Fatalf("got %d reminders, want 1", len(got))
	}
	r := got[0]
	if r.Level != models.ReminderFirst {
		t.Errorf("level = %s, want first", r.Level)
	}
	if r.DaysOverdue != 8 || r.Amount != 264 {
		t.Errorf("reminder = %+v, want 8 days overdue for 264", r)
	}
	if r.Message == "" {
		t.Error("reminder has no message")
	}
}

func TestGeneratePaymentReminders_SuppressedWithinInterval(t *testing.T) {
	// Reminded 3 days ago: nothing new until the 7-day gap has passed.
	inv := overdueInvoice("inv-1", 15)
	last := reminderNow.AddDate(0, 0, -3)
	inv.LastReminderAt = &last
	inv.ReminderCount = 1

	if got := GeneratePaymentReminders([]models.Invoice{inv}, reminderNow, 7); len(got) != 0 {
		t.Errorf("got %d reminders within the interval, want 0", len(got))
	}
}

func TestGeneratePaymentReminders_Escalation(t *testing.T) {
	tests := []struct {
		priorReminders int
		want           models.ReminderLevel
	}{
		{0, models.ReminderFirst},
		{1, models.ReminderSecond},
		{2, models.ReminderFinal},
		{5, models.ReminderFinal},
	}
	for _, tt := range tests {
		inv := overdueInvoice("inv-1", 40)
		inv.ReminderCount = tt.priorReminders
		if tt.priorReminders > 0 {
			last := reminderNow.AddDate(0, 0, -8)
			inv.LastReminderAt = &last
			inv.Status = models.InvoiceOverdue
		}

		got := GeneratePaymentReminders([]models.Invoice{inv}, reminderNow, 7)
		if len(got) != 1 {
			t.Fatalf("priorReminders=%d: got %d reminders, want 1", tt.priorReminders, len(got))
		}
		if got[0].Level != tt.want {
			t.Errorf("priorReminders=%d: level = %s, want %s", tt.priorReminders, got[0].Level, tt.want)
		}
	}
}

func TestGeneratePaymentReminders_DefaultInterval(t *testing.T) {
	inv := overdueInvoice("inv-1", 6)
	if got := GeneratePaymentReminders([]models.Invoice{inv}, reminderNow, 0); len(got) != 0 {
		t.Errorf("6 days overdue with the default 7-day interval produced %d reminders, want 0", len(got))
	}
	inv = overdueInvoice("inv-1", 7)
	if got := GeneratePaymentReminders([]models.Invoice{inv}, reminderNow, 0); len(got) != 1 {
		t.Errorf("7 days overdue with the default interval produced %d reminders, want 1", len(got))
	}
}
